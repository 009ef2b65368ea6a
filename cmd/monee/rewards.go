package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/spf13/cobra"
)

func rewardsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Spend points on rewards",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the rewards catalog and your balance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				state, err := a.view(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.RenderRewards(model.Catalog(), state.User().TotalPoints))
				return nil
			},
		},
		&cobra.Command{
			Use:   "redeem <reward-id>",
			Short: "Redeem a reward",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var redemption model.Redemption
				next, err := a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
					n, r, err := session.RedeemReward(s, args[0], time.Now())
					redemption = r
					return n, err
				})
				if err != nil {
					return err
				}

				reward, _ := model.FindReward(redemption.RewardID)
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s Redeemed %s for %d points. Balance: %d",
					cli.GiftIcon, reward.Title, redemption.Points, next.User().TotalPoints)))
				return nil
			},
		},
	)
	return cmd
}
