package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CardRepo struct {
	db *sql.DB
}

func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db}
}

type CardInsert struct {
	Name      string
	Rarity    string
	Seed      string
	HP        int
	ATK       int
	StarLevel int
}

func (r *CardRepo) Insert(ctx context.Context, in CardInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO cards (name, rarity, seed, hp, atk, star_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.Name, in.Rarity, in.Seed, in.HP, in.ATK, in.StarLevel)
	if err != nil {
		return 0, fmt.Errorf("card insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("card last insert id: %w", err)
	}
	return id, nil
}

func (r *CardRepo) Get(ctx context.Context, id int64) (*Card, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, rarity, seed, hp, atk, star_level, created_at
		FROM cards
		WHERE id = ?
	`, id)

	var c Card
	if err := row.Scan(&c.ID, &c.Name, &c.Rarity, &c.Seed, &c.HP, &c.ATK, &c.StarLevel, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("card get: %w", err)
	}
	return &c, nil
}

// ListAll returns the inventory newest first (draws and merges prepend).
func (r *CardRepo) ListAll(ctx context.Context) ([]Card, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, rarity, seed, hp, atk, star_level, created_at
		FROM cards
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("card list: %w", err)
	}
	defer rows.Close()

	var out []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Rarity, &c.Seed, &c.HP, &c.ATK, &c.StarLevel, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("card scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("card rows: %w", err)
	}
	return out, nil
}

func (r *CardRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("card count: %w", err)
	}
	return n, nil
}

// ReplaceForMerge removes the consumed cards and inserts the upgraded one in
// a single transaction, so a merge can never half-apply.
func (r *CardRepo) ReplaceForMerge(ctx context.Context, consumedIDs []int64, in CardInsert) (int64, error) {
	var newID int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, id := range consumedIDs {
			res, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
			if err != nil {
				return fmt.Errorf("card delete %d: %w", id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("card delete rows affected: %w", err)
			}
			if n != 1 {
				return fmt.Errorf("card %d vanished during merge", id)
			}
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO cards (name, rarity, seed, hp, atk, star_level)
			VALUES (?, ?, ?, ?, ?, ?)
		`, in.Name, in.Rarity, in.Seed, in.HP, in.ATK, in.StarLevel)
		if err != nil {
			return fmt.Errorf("merged card insert: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("merged card last insert id: %w", err)
		}
		newID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}
