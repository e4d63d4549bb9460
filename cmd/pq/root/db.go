package root

import (
	"context"
	"database/sql"
	"time"

	"pixelquest/internal/engine"
	"pixelquest/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the database and bootstraps the session: default
// categories, profile row, and the once-per-day task reset.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)
	if err := svc.Bootstrap(ctx, engine.Today(time.Now())); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
