package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/spf13/cobra"
)

func challengesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Manage savings challenges",
		Long: `Manage savings challenges. Completing a challenge (100% progress) credits
its points once; completed and failed challenges can no longer change.`,
	}

	cmd.AddCommand(
		challengesListCmd(a),
		challengesCreateCmd(a),
		challengesProgressCmd(a),
		challengesFailCmd(a),
		challengesRemoveCmd(a),
	)
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q is not a valid id", common.ErrInvalidInput, arg)
	}
	return id, nil
}

func challengesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.view(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderChallenges(state.User().Challenges))
			return nil
		},
	}
}

func challengesCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			amount, _ := cmd.Flags().GetInt64("amount")
			points, _ := cmd.Flags().GetInt("points")

			var created model.Challenge
			_, err := a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
				next, c, err := session.CreateChallenge(s, session.ChallengeDraft{
					Title:        args[0],
					Description:  description,
					AmountNeeded: amount,
					Points:       points,
				})
				created = c
				return next, err
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Created challenge #%d: %s (%s)",
				created.ID, created.Title, cli.FormatPoints(created.Points))))
			return nil
		},
	}

	cmd.Flags().String("description", "", "what the challenge is about")
	cmd.Flags().Int64("amount", 0, "amount to save, in whole dollars")
	cmd.Flags().Int("points", 100, "points awarded on completion")
	return cmd
}

func challengesProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set a challenge's progress (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: progress %q is not a number", common.ErrInvalidInput, args[1])
			}

			next, err := a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
				return session.SetChallengeProgress(s, id, percent)
			})
			if err != nil {
				return err
			}

			user := next.User()
			c := user.Challenges[user.FindChallenge(id)]
			out := cmd.OutOrStdout()
			if c.Status == model.ChallengeCompleted {
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s %s complete! +%d points (balance %d)",
					cli.TrophyIcon, c.Title, c.Points, user.TotalPoints)))
				return nil
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s is now at %d%%", c.Title, c.Progress)))
			return nil
		},
	}
}

func challengesFailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fail <id>",
		Short: "Give up on a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
				return session.FailChallenge(s, id)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("Challenge #%d marked as failed", id)))
			return nil
		},
	}
}

func challengesRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a challenge",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
				return session.RemoveChallenge(s, id)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed challenge #%d", id)))
			return nil
		},
	}
}
