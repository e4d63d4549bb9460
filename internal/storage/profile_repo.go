package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainProfileKey = "main_user"

// DefaultProfileName is used when the profile row is created on first run.
const DefaultProfileName = "Pixel Hero"

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, name, total_points, streak, last_active_date
		FROM profile
		WHERE key = ?
	`, key)

	var p Profile
	if err := row.Scan(&p.Key, &p.Name, &p.TotalPoints, &p.Streak, &p.LastActiveDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	return &p, nil
}

// GetOrCreateMain returns the single local profile, creating it with defaults
// on first run. The created row's last_active_date is set to today so the
// daily reset does not fire on a fresh database.
func (r *ProfileRepo) GetOrCreateMain(ctx context.Context, today string) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (key, name, last_active_date) VALUES (?, ?, ?)
	`, MainProfileKey, DefaultProfileName, today); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET name = ?, total_points = ?, streak = ?, last_active_date = ?
		WHERE key = ?
	`, p.Name, p.TotalPoints, p.Streak, p.LastActiveDate, p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
