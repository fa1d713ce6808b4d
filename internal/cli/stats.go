package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your referral performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := accessToken()
			if token == "" {
				return fmt.Errorf("not logged in; run 'optivus login'")
			}

			stats, err := api.DashboardStats(cmd.Context(), token)
			if err != nil {
				return fmt.Errorf("fetch stats: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total earnings:   $%s\n", humanize.FormatFloat("#,###.##", stats.TotalEarnings))
			fmt.Fprintf(cmd.OutOrStdout(), "Team size:        %s\n", humanize.Comma(int64(stats.TotalTeamSize)))
			fmt.Fprintf(cmd.OutOrStdout(), "Direct referrals: %s\n", humanize.Comma(int64(stats.DirectReferrals)))
			return nil
		},
	}
}
