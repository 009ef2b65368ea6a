package tui

import (
	"context"
	"sync"

	"github.com/Veraticus/monee/internal/model"
)

// snapshotWriter serializes saves issued from concurrent commands. Each save
// carries the sequence number of the change that produced it; a save older
// than the last one written is dropped, so the stored user never moves back.
type snapshotWriter struct {
	saver Saver
	mu    sync.Mutex
	saved int
}

func newSnapshotWriter(saver Saver) *snapshotWriter {
	if saver == nil {
		return nil
	}
	return &snapshotWriter{saver: saver}
}

func (w *snapshotWriter) save(ctx context.Context, seq int, user model.User) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.saved {
		return nil
	}
	if err := w.saver.SaveUser(ctx, user); err != nil {
		return err
	}
	w.saved = seq
	return nil
}
