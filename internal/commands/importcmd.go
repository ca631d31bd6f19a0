package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/scan"
)

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import scanned statement data",
	}
	importCmd.AddCommand(newImportStatementCommand())
	return importCmd
}

func newImportStatementCommand() *cobra.Command {
	var date, description string

	cmd := &cobra.Command{
		Use:   "statement <csv-file>",
		Short: "Import scanner CSV output as draft transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			lines, err := scan.ParseStatement(f)
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if date == "" {
				date = model.FormatDate(time.Now())
			}

			// Inactive accounts are hidden from entry, imports included.
			resolver := scan.NewResolver(s.ledger.ActiveAccounts())
			var params []ledger.TransactionParams
			var blocked []string
			for i, candidate := range scan.Group(lines) {
				desc := fmt.Sprintf("%s (entry %d)", description, i+1)
				p, err := resolver.ToParams(candidate, date, desc)
				if err != nil {
					blocked = append(blocked, fmt.Sprintf("entry %d: %v", i+1, err))
					continue
				}
				params = append(params, p)
			}

			res, err := s.ledger.AddBulkTransactions(params)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d draft transaction(s)\n", len(res.Added))
			for _, txn := range res.Added {
				fmt.Printf("  %s %s\n", txn.TransactionNumber, txn.Description)
			}
			for _, msg := range append(blocked, res.Errors...) {
				fmt.Printf("  skipped: %s\n", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "Imported statement", "description prefix")
	return cmd
}
