package tui

import (
	"context"
	"time"

	"github.com/Veraticus/monee/internal/chat"
	"github.com/Veraticus/monee/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const saveTimeout = 5 * time.Second

func splashCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return splashDoneMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

func counterTickCmd(interval time.Duration, generation int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return counterTickMsg{generation: generation}
	})
}

// askCmd sends message to Moneebot off the update loop.
func askCmd(responder chat.Responder, message string) tea.Cmd {
	return func() tea.Msg {
		reply, ok := chat.Reply(context.Background(), responder, message)
		return chatReplyMsg{reply: reply, ok: ok}
	}
}

// saveCmd writes user as change seq. Commands may finish in any order;
// the writer keeps the newest.
func saveCmd(w *snapshotWriter, seq int, user model.User) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{err: w.save(ctx, seq, user)}
	}
}
