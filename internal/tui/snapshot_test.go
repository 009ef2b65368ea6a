package tui

import (
	"context"
	"testing"

	"github.com/Veraticus/monee/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWriter_DropsStaleSave(t *testing.T) {
	saver := &recordingSaver{}
	w := newSnapshotWriter(saver)

	newer := model.SeedUser()
	newer.TotalPoints = 2000
	older := model.SeedUser()

	require.NoError(t, w.save(context.Background(), 2, newer))
	require.NoError(t, w.save(context.Background(), 1, older))

	require.Len(t, saver.users, 1)
	assert.Equal(t, 2000, saver.users[0].TotalPoints)
}

func TestNewSnapshotWriter_NilSaver(t *testing.T) {
	assert.Nil(t, newSnapshotWriter(nil))

	m := ready(t)
	m, _ = update(t, m, runes("2"))
	_, cmd := update(t, m, runes("+"))
	assert.Nil(t, cmd)
}

func TestModel_OutOfOrderSavesKeepNewest(t *testing.T) {
	saver := &recordingSaver{}
	m := ready(t, WithSaver(saver))
	m, _ = update(t, m, runes("2"))

	m, first := update(t, m, runes("+"))
	m, second := update(t, m, runes("+"))
	require.NotNil(t, first)
	require.NotNil(t, second)
	want := m.State().User().Challenges[0].Progress

	// The later change finishes first; the earlier one must not overwrite it.
	collect(second)
	collect(first)

	require.Len(t, saver.users, 1)
	assert.Equal(t, want, saver.users[0].Challenges[0].Progress)
}

func TestModel_FlushSavesLatestChange(t *testing.T) {
	saver := &recordingSaver{}
	m := ready(t, WithSaver(saver))
	m, _ = update(t, m, runes("5"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// The save command never ran, as when the program quits first.
	require.NoError(t, m.flush(context.Background()))
	require.Len(t, saver.users, 1)
	assert.Equal(t, 950, saver.users[0].TotalPoints)

	// Flushing again writes nothing new.
	require.NoError(t, m.flush(context.Background()))
	assert.Len(t, saver.users, 1)
}

func TestModel_FlushWithoutChanges(t *testing.T) {
	saver := &recordingSaver{}
	m := ready(t, WithSaver(saver))

	require.NoError(t, m.flush(context.Background()))
	assert.Empty(t, saver.users)
}
