package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/model"
)

func newTxnCommand() *cobra.Command {
	txnCmd := &cobra.Command{
		Use:   "txn",
		Short: "Record and manage transactions",
	}
	txnCmd.AddCommand(newTxnAddCommand())
	txnCmd.AddCommand(newTxnListCommand())
	txnCmd.AddCommand(newTxnShowCommand())
	txnCmd.AddCommand(newTxnPostCommand())
	txnCmd.AddCommand(newTxnVoidCommand())
	txnCmd.AddCommand(newTxnReverseCommand())
	return txnCmd
}

func newTxnAddCommand() *cobra.Command {
	var date, description, debitRef, creditRef, amountStr string
	var draft bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a double-entry transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			debitAcct, err := s.findAccount(debitRef)
			if err != nil {
				return err
			}
			creditAcct, err := s.findAccount(creditRef)
			if err != nil {
				return err
			}

			status := model.StatusPosted
			if draft || s.cfg.Defaults.TransactionStatus == string(model.StatusDraft) {
				status = model.StatusDraft
			}

			txn, err := s.ledger.AddTransaction(ledger.TransactionParams{
				TransactionDate: date,
				Description:     description,
				Lines: []model.JournalEntryLine{
					{AccountID: debitAcct.ID, Debit: amount, Description: description},
					{AccountID: creditAcct.ID, Credit: amount, Description: description},
				},
			}, &ledger.AddOptions{Status: status})
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s) %s\n", txn.TransactionNumber, txn.Status, model.FormatCurrency(amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().StringVar(&debitRef, "debit", "", "debit account code (required)")
	cmd.Flags().StringVar(&creditRef, "credit", "", "credit account code (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	cmd.Flags().BoolVar(&draft, "draft", false, "create as draft instead of posted")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newTxnListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, txn := range s.ledger.Transactions() {
				fmt.Printf("%s  %s  %-10s %s  %s\n",
					txn.TransactionNumber, txn.TransactionDate, txn.Status,
					model.FormatCurrency(txn.TotalDebits()), txn.Description)
			}
			return nil
		},
	}
}

func newTxnShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number|id>",
		Short: "Show one transaction in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			txn, err := s.findTransaction(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s  %s\n%s\n", txn.TransactionNumber, txn.TransactionDate, txn.Status, txn.Description)
			for _, line := range txn.Lines {
				acct, _ := s.ledger.Account(line.AccountID)
				fmt.Printf("  %-6s %-30s %12s %12s  %s\n",
					acct.Code, acct.Name,
					line.Debit.StringFixed(2), line.Credit.StringFixed(2), line.Description)
			}
			fmt.Printf("  totals: %s debit / %s credit\n",
				model.FormatCurrency(txn.TotalDebits()), model.FormatCurrency(txn.TotalCredits()))

			if txn.VoidedReason != "" {
				fmt.Printf("  voided: %s\n", txn.VoidedReason)
			}
			if txn.ReversedByTransactionID != "" {
				if rev, ok := s.ledger.Transaction(txn.ReversedByTransactionID); ok {
					fmt.Printf("  reversed by %s\n", rev.TransactionNumber)
				}
			}
			if txn.ReversesTransactionID != "" {
				if orig, ok := s.ledger.Transaction(txn.ReversesTransactionID); ok {
					fmt.Printf("  reverses %s\n", orig.TransactionNumber)
				}
			}
			return nil
		},
	}
}

func newTxnPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post <number|id>...",
		Short: "Post draft transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ids := make([]string, 0, len(args))
			for _, ref := range args {
				txn, err := s.findTransaction(ref)
				if err != nil {
					return err
				}
				ids = append(ids, txn.ID)
			}

			if len(ids) == 1 {
				txn, err := s.ledger.Post(ids[0])
				if err != nil {
					return err
				}
				fmt.Printf("Posted %s\n", txn.TransactionNumber)
				return nil
			}

			res, err := s.ledger.PostBulk(ids)
			if err != nil {
				return err
			}
			fmt.Printf("Posted %d transaction(s)\n", res.Succeeded)
			for _, msg := range res.Errors {
				fmt.Printf("  error: %s\n", msg)
			}
			return nil
		},
	}
}

func newTxnVoidCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "void <number|id>",
		Short: "Void a posted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			txn, err := s.findTransaction(args[0])
			if err != nil {
				return err
			}
			voided, err := s.ledger.Void(txn.ID, reason)
			if err != nil {
				return err
			}
			fmt.Printf("Voided %s: %s\n", voided.TransactionNumber, voided.VoidedReason)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "void reason (required)")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newTxnReverseCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reverse <number|id>",
		Short: "Reverse a posted transaction with an offsetting entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			txn, err := s.findTransaction(args[0])
			if err != nil {
				return err
			}
			rev, err := s.ledger.Reverse(txn.ID, reason)
			if err != nil {
				return err
			}
			fmt.Printf("Reversed %s with %s\n", txn.TransactionNumber, rev.TransactionNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reversal reason (required)")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}
