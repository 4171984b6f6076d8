package models

// IdentifierTypePreloadedCard is the party identifier type assigned to
// preloaded card numbers.
const IdentifierTypePreloadedCard = "ar_tarjeta_precargada"

// Party is a counterpart of the accounting records.
type Party struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

// Identifier links an external identifier of a given type to a party.
type Identifier struct {
	Type  string `yaml:"type"`
	Code  string `yaml:"code"`
	Party Party  `yaml:"party"`
}
