package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Optivus backend",
		Long:  "Log in with your email and password. Tokens are stored in the credentials file for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			outcome, err := mgr.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if outcome.TwoFactorRequired {
				fmt.Fprint(cmd.OutOrStdout(), "Two-factor code: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read code: %w", err)
				}
				code := strings.TrimSpace(line)

				user, err := mgr.VerifyTwoFactor(cmd.Context(), outcome.UserID, code)
				if err != nil {
					return fmt.Errorf("verify code: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.DisplayName())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", outcome.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr.Initialize(cmd.Context())
			state := mgr.Current()
			if !state.Authenticated {
				return fmt.Errorf("not logged in; run 'optivus login'")
			}

			u := state.User
			fmt.Fprintf(cmd.OutOrStdout(), "Name:          %s\n", u.DisplayName())
			fmt.Fprintf(cmd.OutOrStdout(), "Email:         %s\n", u.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Referral code: %s\n", u.ReferralCode)
			fmt.Fprintf(cmd.OutOrStdout(), "Role:          %s\n", u.Role)
			if u.Balance != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Balance:       $%s\n", u.Balance)
			}
			kyc := "no"
			if u.KycVerified {
				kyc = "yes"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "KYC verified:  %s\n", kyc)
			return nil
		},
	}
}
