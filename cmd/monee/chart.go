package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/monee/internal/charts"
	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/config"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/spf13/cobra"
)

func chartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a PNG chart of spending or challenge savings",
		Long: `Render a PNG chart.

Examples:
  # Spending by category for January 2024
  monee chart --as-of 2024-01-15 --out january.png

  # Amount saved per challenge
  monee chart --kind challenges --out challenges.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outPath, _ := cmd.Flags().GetString("out")
			asOf, _ := cmd.Flags().GetString("as-of")
			kind, _ := cmd.Flags().GetString("kind")

			ref, err := parseDay(asOf)
			if err != nil {
				return err
			}
			state, err := a.view(cmd.Context())
			if err != nil {
				return err
			}
			user := state.User()

			var png []byte
			switch kind {
			case "spending":
				png, err = charts.RenderSpending(summary.SpendingByCategory(user, ref),
					"Spending in "+ref.Format("January 2006"))
			case "challenges":
				png, err = charts.RenderChallenges(user.Challenges, "Challenge savings")
			default:
				return fmt.Errorf("%w: chart kind must be spending or challenges", common.ErrInvalidInput)
			}
			if errors.Is(err, charts.ErrNoData) {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Nothing to chart for that period"))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to render chart: %w", err)
			}

			outPath = config.ExpandPath(outPath)
			if err := os.WriteFile(outPath, png, 0o600); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Chart written to "+outPath))
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "monee-chart.png", "output PNG path")
	cmd.Flags().String("as-of", "", "month to chart, as any day in it (YYYY-MM-DD, default today)")
	cmd.Flags().String("kind", "spending", "chart kind (spending, challenges)")
	return cmd
}
