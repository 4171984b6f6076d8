package models

// Account is the ledger account a statement journal posts its counterpart to.
type Account struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name,omitempty"`
	PartyRequired bool   `yaml:"party_required"`
}

// StatementJournal maps a preloaded card number to accounting parameters.
// GroupMovesByAccount switches the move construction from one move per
// statement line to one move per account and month.
type StatementJournal struct {
	Name                string  `yaml:"name"`
	CardNumber          string  `yaml:"card_number"`
	Currency            string  `yaml:"currency"`
	Journal             string  `yaml:"journal"`
	Account             Account `yaml:"account"`
	GroupMovesByAccount bool    `yaml:"group_moves_by_account"`
}
