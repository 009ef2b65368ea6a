package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/Veraticus/monee/internal/storage"
)

// openSession starts from the saved snapshot when a database is configured
// and from the sample user otherwise. The returned store is nil without a
// database.
func (a *app) openSession(ctx context.Context) (session.State, *storage.SQLiteStorage, error) {
	if a.settings.StoragePath == "" {
		return session.New(model.SeedUser()), nil, nil
	}

	store, err := storage.NewSQLiteStorage(a.settings.StoragePath)
	if err != nil {
		return session.State{}, nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return session.State{}, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	user, err := store.LoadUser(ctx)
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.LogInfo("No snapshot yet, starting from sample data", common.Fields{"path": store.Path()})
		user = model.SeedUser()
	case err != nil:
		_ = store.Close()
		return session.State{}, nil, err
	}
	return session.New(user), store, nil
}

// mutate loads the session, applies fn and saves the result when fn reports
// a change and a snapshot database is configured.
func (a *app) mutate(ctx context.Context, fn func(session.State) (session.State, error)) (session.State, error) {
	state, store, err := a.openSession(ctx)
	if err != nil {
		return session.State{}, err
	}
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	next, err := fn(state)
	if err != nil {
		return state, err
	}
	if store != nil {
		if err := store.SaveUser(ctx, next.User()); err != nil {
			return next, fmt.Errorf("failed to save snapshot: %w", err)
		}
	}
	return next, nil
}

// view loads the session read-only.
func (a *app) view(ctx context.Context) (session.State, error) {
	state, store, err := a.openSession(ctx)
	if store != nil {
		_ = store.Close()
	}
	return state, err
}

func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", common.ErrInvalidInput, value)
	}
	return d, nil
}
