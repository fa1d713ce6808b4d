package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newTransactionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx", "history"},
		Short:   "List your transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := accessToken()
			if token == "" {
				return fmt.Errorf("not logged in; run 'optivus login'")
			}

			txs, err := api.Transactions(cmd.Context(), token)
			if err != nil {
				return fmt.Errorf("fetch transactions: %w", err)
			}
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions")
				return nil
			}
			if limit > 0 && len(txs) > limit {
				txs = txs[:limit]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tSTATUS\tREFERENCE")
			for _, tx := range txs {
				sign := ""
				if tx.IsDebit() {
					sign = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s$%s\t%s\t%s\n",
					humanize.Time(tx.CreatedAt), tx.Type, sign, tx.Amount, tx.Status, tx.Reference)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries (0 = all)")
	return cmd
}
