package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	accountCmd.AddCommand(newAccountListCommand())
	accountCmd.AddCommand(newAccountAddCommand())
	accountCmd.AddCommand(newAccountDeactivateCommand())
	accountCmd.AddCommand(newAccountDeleteCommand())
	return accountCmd
}

func newAccountListCommand() *cobra.Command {
	var includeInactive bool
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var accounts []model.Account
			switch {
			case typeFilter != "":
				at := model.AccountType(typeFilter)
				if !at.Valid() {
					return fmt.Errorf("invalid account type %q", typeFilter)
				}
				accounts = s.ledger.AccountsByType(at)
			case includeInactive:
				accounts = s.ledger.Accounts()
			default:
				accounts = s.ledger.ActiveAccounts()
			}

			for _, acct := range accounts {
				if !includeInactive && !acct.IsActive {
					continue
				}
				marker := ""
				if !acct.IsActive {
					marker = " (inactive)"
				}
				fmt.Printf("%-6s %-30s %s%s\n", acct.Code, acct.Name, acct.Type, marker)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeInactive, "all", false, "include inactive accounts")
	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by asset|liability|equity|revenue|expense")
	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var params ledger.AccountParams
	var accountType, subtype string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Type = model.AccountType(accountType)
			if !params.Type.Valid() {
				return fmt.Errorf("invalid account type %q", accountType)
			}
			params.Subtype = model.AccountSubtype(subtype)
			if err := validateSubtype(params.Type, params.Subtype); err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			acct, err := s.ledger.AddAccount(params)
			if err != nil {
				return err
			}
			fmt.Printf("Added account %s %s (%s)\n", acct.Code, acct.Name, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Code, "code", "", "account code (required)")
	cmd.Flags().StringVar(&params.Name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&accountType, "type", "", "asset|liability|equity|revenue|expense (required)")
	cmd.Flags().StringVar(&subtype, "subtype", "", "account subtype")
	cmd.Flags().StringVar(&params.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// validateSubtype checks an optional subtype against its account type.
func validateSubtype(t model.AccountType, st model.AccountSubtype) error {
	if st == "" {
		return nil
	}
	if !slices.Contains(model.SubtypesFor(t), st) {
		return fmt.Errorf("subtype %q does not belong to account type %s", st, t)
	}
	return nil
}

func newAccountDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <code|id>",
		Short: "Hide an account from transaction entry",
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
			if _, err := s.ledger.SetAccountActive(acct.ID, false); err != nil {
				return err
			}
			fmt.Printf("Deactivated %s %s\n", acct.Code, acct.Name)
			return nil
		},
	}
}

func newAccountDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code|id>",
		Short: "Delete an unreferenced account",
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
			if err := s.ledger.DeleteAccount(acct.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s %s\n", acct.Code, acct.Name)
			return nil
		},
	}
}
