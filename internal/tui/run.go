package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/monee/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits. It returns the
// session as it was when the program exited, after its last change has been
// saved.
func Run(ctx context.Context, cfg Config, state session.State) (session.State, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(state, cfg), opts...)
	final, err := p.Run()
	if err != nil {
		err = fmt.Errorf("dashboard: %w", err)
	}
	if m, ok := final.(Model); ok {
		state = m.State()
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
		defer cancel()
		if saveErr := m.flush(saveCtx); saveErr != nil {
			err = errors.Join(err, fmt.Errorf("save dashboard changes: %w", saveErr))
		}
	}
	return state, err
}
