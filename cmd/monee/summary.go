package main

import (
	"fmt"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/spf13/cobra"
)

func summaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show savings, credit, spending and points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, _ := cmd.Flags().GetString("as-of")
			ref, err := parseDay(asOf)
			if err != nil {
				return err
			}

			state, err := a.view(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(state.User(), ref))
			return nil
		},
	}

	cmd.Flags().String("as-of", "", "month to summarize, as any day in it (YYYY-MM-DD, default today)")
	return cmd
}
