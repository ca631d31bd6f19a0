package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/reports"
)

// balanceTolerance is the allowed drift when checking the balance-sheet
// identity; the engine reports numbers, the CLI flags the break.
var balanceTolerance = decimal.New(1, -2)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derive financial reports",
	}
	reportCmd.AddCommand(newBalanceSheetCommand())
	reportCmd.AddCommand(newIncomeStatementCommand())
	reportCmd.AddCommand(newGeneralLedgerCommand())
	reportCmd.AddCommand(newTrialBalanceCommand())
	return reportCmd
}

func newBalanceSheetCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet as of a date",
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

			fmt.Printf("Balance Sheet as of %s\n\n", bs.AsOf)
			printSection("Assets", bs.Assets, bs.TotalAssets)
			printSection("Liabilities", bs.Liabilities, bs.TotalLiabilities)
			printSection("Equity (incl. retained earnings)", bs.Equity, bs.TotalEquity)

			diff := bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity)).Abs()
			if diff.GreaterThanOrEqual(balanceTolerance) {
				fmt.Printf("\nWARNING: assets do not equal liabilities + equity (off by %s)\n",
					model.FormatCurrency(diff))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newIncomeStatementCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			is := reports.ComputeIncomeStatement(s.ledger.Accounts(), s.ledger.Transactions(), start, end)

			fmt.Printf("Income Statement %s to %s\n\n", is.StartDate, is.EndDate)
			printSection("Revenue", is.Revenue, is.TotalRevenue)
			printSection("Expenses", is.Expenses, is.TotalExpenses)
			fmt.Printf("\nNet Income: %s\n", model.FormatCurrency(is.NetIncome))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newGeneralLedgerCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "ledger <account-code|id>",
		Short: "General ledger for one account",
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

			fmt.Printf("General Ledger - %s %s\n\n", gl.Account.Code, gl.Account.Name)
			for _, entry := range gl.Entries {
				fmt.Printf("%s  %s  %10s %10s %12s  %s\n",
					entry.TransactionDate, entry.TransactionNumber,
					entry.Debit.StringFixed(2), entry.Credit.StringFixed(2),
					entry.Balance.StringFixed(2), entry.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD")
	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Trial balance as of a date",
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

			fmt.Printf("Trial Balance as of %s\n\n", tb.AsOf)
			for _, row := range tb.Rows {
				fmt.Printf("%-6s %-30s %12s %12s\n",
					row.Account.Code, row.Account.Name,
					row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Printf("%-6s %-30s %12s %12s\n", "", "Totals",
				tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func printSection(name string, entries []reports.Entry, total decimal.Decimal) {
	fmt.Printf("%s\n", name)
	for _, entry := range entries {
		fmt.Printf("  %-6s %-30s %12s\n", entry.Account.Code, entry.Account.Name, entry.Balance.StringFixed(2))
	}
	fmt.Printf("  %-6s %-30s %12s\n", "", "Total "+name, total.StringFixed(2))
}
