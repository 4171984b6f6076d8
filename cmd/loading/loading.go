// Package loading handles the card loading workflow commands
package loading

import (
	"time"

	"github.com/spf13/cobra"

	"gcoop/precargadas-csv/cmd/root"
	"gcoop/precargadas-csv/internal/dateutils"
	"gcoop/precargadas-csv/internal/loading"
	"gcoop/precargadas-csv/internal/store"
)

var (
	loadingID     string
	loadingDate   string
	journalName   string
	creditAccount string
	debitAccount  string
)

// Cmd represents the loading command group
var Cmd = &cobra.Command{
	Use:   "loading",
	Short: "Manage preloaded-card loading documents",
	Long: `Manage preloaded-card loading documents: manually entered batches
that debit each card holder's account and credit the bank account.

Documents live in the configured loadings file and follow the
draft/posted/cancelled workflow.`,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a draft loading seeded from the preloaded-card roster",
	Run:   newFunc,
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post draft loadings, generating their ledger moves",
	Run:   postFunc,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel posted loadings, generating the reversing moves",
	Run:   cancelFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a draft loading",
	Run:   deleteFunc,
}

func init() {
	Cmd.PersistentFlags().StringVar(&loadingID, "id", "", "Loading document identifier")
	newCmd.Flags().StringVar(&loadingDate, "date", "", "Loading date (YYYY-MM-DD, default today)")
	newCmd.Flags().StringVarP(&journalName, "journal", "j", "", "Ledger journal")
	newCmd.Flags().StringVar(&creditAccount, "credit-account", "", "Bank accounting account")
	newCmd.Flags().StringVar(&debitAccount, "debit-account", "", "Party accounting account")

	Cmd.AddCommand(newCmd)
	Cmd.AddCommand(postCmd)
	Cmd.AddCommand(cancelCmd)
	Cmd.AddCommand(deleteCmd)
}

func newService() *loading.Service {
	moves := store.NewMoveStore(root.Cfg.Ledger.MovesFile)
	return loading.NewService(store.CalendarPeriods{}, moves, root.GetLogger())
}

func loadingStore() *store.LoadingStore {
	return store.NewLoadingStore(root.Cfg.Ledger.LoadingsFile)
}

func newFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if journalName == "" || creditAccount == "" || debitAccount == "" {
		logger.Fatal("Journal, credit account and debit account must be specified")
	}

	date := time.Now()
	if loadingDate != "" {
		parsed, err := time.Parse(dateutils.DateLayoutISO, loadingDate)
		if err != nil {
			logger.Fatalf("Invalid date %q: %v", loadingDate, err)
		}
		date = parsed
	}

	identifiers, err := store.NewIdentifierStore(root.Cfg.Import.IdentifiersFile).Load()
	if err != nil {
		logger.Fatalf("Error loading identifiers: %v", err)
	}

	doc := loading.New(date, journalName, creditAccount, debitAccount)
	doc.Lines = loading.SeedLines(identifiers)

	docs, err := loadingStore().Load()
	if err != nil {
		logger.Fatalf("Error loading documents: %v", err)
	}
	docs = append(docs, doc)
	if err := loadingStore().Save(docs); err != nil {
		logger.Fatalf("Error saving documents: %v", err)
	}

	root.Log.Infof("Created draft loading %s with %d line(s)", doc.ID, len(doc.Lines))
}

func postFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	docs, err := loadingStore().Load()
	if err != nil {
		logger.Fatalf("Error loading documents: %v", err)
	}
	selected := selectLoadings(docs, loading.StateDraft)
	if len(selected) == 0 {
		logger.Fatal("No matching draft loadings to post")
	}

	if err := newService().Post(selected); err != nil {
		logger.Fatalf("Error posting loadings: %v", err)
	}
	if err := loadingStore().Save(docs); err != nil {
		logger.Fatalf("Error saving documents: %v", err)
	}

	root.Log.Infof("Posted %d loading(s)", len(selected))
}

func cancelFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	docs, err := loadingStore().Load()
	if err != nil {
		logger.Fatalf("Error loading documents: %v", err)
	}
	selected := selectLoadings(docs, loading.StatePosted)
	if len(selected) == 0 {
		logger.Fatal("No matching posted loadings to cancel")
	}

	if err := newService().Cancel(selected); err != nil {
		logger.Fatalf("Error cancelling loadings: %v", err)
	}
	if err := loadingStore().Save(docs); err != nil {
		logger.Fatalf("Error saving documents: %v", err)
	}

	root.Log.Infof("Cancelled %d loading(s)", len(selected))
}

func deleteFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if loadingID == "" {
		logger.Fatal("A loading identifier must be specified")
	}

	docs, err := loadingStore().Load()
	if err != nil {
		logger.Fatalf("Error loading documents: %v", err)
	}

	var kept []*loading.CardLoading
	var removed []*loading.CardLoading
	for _, doc := range docs {
		if doc.ID == loadingID {
			removed = append(removed, doc)
		} else {
			kept = append(kept, doc)
		}
	}
	if len(removed) == 0 {
		logger.Fatalf("No loading with identifier %q", loadingID)
	}

	if err := newService().CheckDelete(removed); err != nil {
		logger.Fatalf("Cannot delete loading: %v", err)
	}
	if err := loadingStore().Save(kept); err != nil {
		logger.Fatalf("Error saving documents: %v", err)
	}

	root.Log.Infof("Deleted %d loading(s)", len(removed))
}

// selectLoadings picks the documents targeted by the command: the one named
// by --id, or every document currently in the given state.
func selectLoadings(docs []*loading.CardLoading, state loading.State) []*loading.CardLoading {
	var selected []*loading.CardLoading
	for _, doc := range docs {
		if loadingID != "" {
			if doc.ID == loadingID {
				selected = append(selected, doc)
			}
			continue
		}
		if doc.State == state {
			selected = append(selected, doc)
		}
	}
	return selected
}
