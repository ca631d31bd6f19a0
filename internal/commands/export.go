package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/export"
	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/reports"
)

func newExportCommand() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections and reports as CSV",
	}
	exportCmd.PersistentFlags().StringP("out", "o", "", "output file (default stdout)")

	exportCmd.AddCommand(newExportAccountsCommand())
	exportCmd.AddCommand(newExportTransactionsCommand())
	exportCmd.AddCommand(newExportLedgerCommand())
	exportCmd.AddCommand(newExportBalanceSheetCommand())
	exportCmd.AddCommand(newExportIncomeCommand())
	exportCmd.AddCommand(newExportTrialBalanceCommand())
	return exportCmd
}

// withOutput runs fn against --out (or stdout) and reports the destination.
func withOutput(cmd *cobra.Command, fn func(io.Writer) error) error {
	path, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if path == "" {
		return fn(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func newExportAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Export the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			return withOutput(cmd, func(w io.Writer) error {
				return export.Accounts(w, s.ledger.Accounts())
			})
		},
	}
}

func newExportTransactionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Export the journal, one row per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			return withOutput(cmd, func(w io.Writer) error {
				return export.Transactions(w, s.ledger.Transactions(), s.ledger.Accounts())
			})
		},
	}
}

func newExportLedgerCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "ledger <account-code|id>",
		Short: "Export the general ledger for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			acct, err := s.findAccount(args[0])
			if err != nil {
				return err
			}
			gl := reports.ComputeGeneralLedger(acct, s.ledger.Transactions(), start, end)

			return withOutput(cmd, func(w io.Writer) error {
				return export.GeneralLedger(w, gl)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD")
	return cmd
}

func newExportBalanceSheetCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Export the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if asOf == "" {
				asOf = model.FormatDate(time.Now())
			}
			bs := reports.ComputeBalanceSheet(s.ledger.Accounts(), s.ledger.Transactions(), asOf)

			return withOutput(cmd, func(w io.Writer) error {
				return export.BalanceSheet(w, bs)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newExportTrialBalanceCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Export the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if asOf == "" {
				asOf = model.FormatDate(time.Now())
			}
			tb := reports.ComputeTrialBalance(s.ledger.Accounts(), s.ledger.Transactions(), asOf)

			return withOutput(cmd, func(w io.Writer) error {
				return export.TrialBalance(w, tb)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newExportIncomeCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Export the income statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			is := reports.ComputeIncomeStatement(s.ledger.Accounts(), s.ledger.Transactions(), start, end)

			return withOutput(cmd, func(w io.Writer) error {
				return export.IncomeStatement(w, is)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
