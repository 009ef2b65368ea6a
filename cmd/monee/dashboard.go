package main

import (
	"fmt"

	"github.com/Veraticus/monee/internal/tui"
	"github.com/Veraticus/monee/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noAlt, _ := cmd.Flags().GetBool("no-alt-screen")

			state, store, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithTheme(themes.GetTheme(a.settings.Theme)),
				tui.WithResponder(a.responder()),
				tui.WithTiming(a.settings.SplashDelay, a.settings.TickInterval),
				tui.WithAltScreen(!noAlt),
			}
			if store != nil {
				opts = append(opts, tui.WithSaver(store))
			}

			// Run returns after the last change is saved, so the store can
			// be closed afterwards.
			_, err = tui.Run(cmd.Context(), tui.NewConfig(opts...), state)
			if store != nil {
				if closeErr := store.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close snapshot: %w", closeErr)
				}
			}
			return err
		},
	}

	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of in the alternate screen")
	return cmd
}
