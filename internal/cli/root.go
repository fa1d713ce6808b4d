package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/optivus-protocol/portal/internal/config"
	"github.com/optivus-protocol/portal/internal/credstore"
	"github.com/optivus-protocol/portal/internal/logging"
	"github.com/optivus-protocol/portal/internal/session"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

var (
	flagBackend   string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagCredFile  string

	logger *slog.Logger
	api    *optivus.Client
	creds  credstore.Store
	mgr    *session.Manager
)

// defaultBackend returns the backend URL, checking OPTIVUS_BACKEND_URL first.
func defaultBackend() string {
	if s := os.Getenv("OPTIVUS_BACKEND_URL"); s != "" {
		return s
	}
	return config.DefaultBackendURL
}

// NewRootCmd creates the root cobra command for the optivus CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "optivus",
		Short: "Optivus — referral platform member CLI",
		Long:  "Optivus logs in to the Optivus Protocol backend and manages your account from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			api = optivus.New(optivus.DefaultConfig(flagBackend), logger)

			if flagCredFile != "" {
				creds = credstore.NewFile(flagCredFile)
			} else {
				file, err := credstore.DefaultFile()
				if err != nil {
					return err
				}
				creds = file
			}
			mgr = session.NewManager(api, creds, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagBackend, "backend", defaultBackend(), "Backend URL (or OPTIVUS_BACKEND_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVar(&flagCredFile, "credentials", "", "Credentials file (default ~/.optivus/credentials.json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newStatsCmd(),
		newTransactionsCmd(),
		newWithdrawCmd(),
	)

	return root
}

// accessToken returns the stored access token, after restoring the session.
// An empty result means the user must log in first.
func accessToken() string {
	return creds.Get(credstore.KeyAccessToken)
}
