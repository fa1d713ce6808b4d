package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optivus-protocol/portal/pkg/model"
)

func newWithdrawCmd() *cobra.Command {
	var req model.NewWithdrawal
	var pin string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Request a withdrawal",
		Long:  "Submit a withdrawal request for the given amount to your bank account. The transaction PIN is checked first; the request then enters the admin approval queue.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr.Initialize(cmd.Context())
			state := mgr.Current()
			if !state.Authenticated {
				return fmt.Errorf("not logged in; run 'optivus login'")
			}
			if req.Amount == "" || req.BankName == "" || req.AccountNumber == "" || req.AccountName == "" || pin == "" {
				return fmt.Errorf("--amount, --bank, --account-number, --account-name and --pin are required")
			}
			if !state.User.KycVerified {
				return fmt.Errorf("account not verified; complete identity verification before withdrawing")
			}

			if err := api.VerifyPin(cmd.Context(), state.User.Email, pin); err != nil {
				return fmt.Errorf("verify pin: %w", err)
			}

			receipt, err := api.CreateWithdrawal(cmd.Context(), state.AccessToken, req)
			if err != nil {
				return fmt.Errorf("request withdrawal: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal of $%s submitted (id %s), status: %s\n",
				req.Amount, receipt.ID, receipt.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Amount, "amount", "", "Amount to withdraw")
	cmd.Flags().StringVar(&req.BankName, "bank", "", "Bank name")
	cmd.Flags().StringVar(&req.AccountNumber, "account-number", "", "Bank account number")
	cmd.Flags().StringVar(&req.AccountName, "account-name", "", "Name on the bank account")
	cmd.Flags().StringVar(&pin, "pin", "", "Transaction PIN")
	return cmd
}
