package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			total_points INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			last_active_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			color TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			points INTEGER NOT NULL,
			completed INTEGER DEFAULT 0,
			period TEXT DEFAULT 'daily',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(category_id) REFERENCES categories(id)
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			rarity TEXT NOT NULL,
			seed TEXT NOT NULL,
			hp INTEGER NOT NULL,
			atk INTEGER NOT NULL,
			star_level INTEGER DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_category_id ON tasks(category_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_period ON tasks(period);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_rarity ON cards(rarity);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
