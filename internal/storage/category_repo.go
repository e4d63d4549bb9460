package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// DefaultCategories seed a fresh database so the first task has somewhere to go.
var DefaultCategories = []Category{
	{Name: "Study", Color: "yellow"},
	{Name: "Work", Color: "blue"},
	{Name: "Home", Color: "green"},
	{Name: "Play", Color: "red"},
	{Name: "Inbox", Color: "gray"},
}

// EnsureDefaults inserts the default categories if the table is empty.
func (r *CategoryRepo) EnsureDefaults(ctx context.Context) error {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`)
	var n int
	if err := row.Scan(&n); err != nil {
		return fmt.Errorf("category count: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, c := range DefaultCategories {
		if _, err := r.Insert(ctx, c.Name, c.Color); err != nil {
			return err
		}
	}
	return nil
}

func (r *CategoryRepo) Insert(ctx context.Context, name, color string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO categories (name, color) VALUES (?, ?)`, name, color)
	if err != nil {
		return 0, fmt.Errorf("category insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("category last insert id: %w", err)
	}
	return id, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id int64) (*Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, color FROM categories WHERE id = ?`, id)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("category get: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, color FROM categories WHERE name = ? COLLATE NOCASE`, name)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("category get by name: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("category list: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("category scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category rows: %w", err)
	}
	return out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `UPDATE categories SET name = ?, color = ? WHERE id = ?`, c.Name, c.Color, c.ID)
	if err != nil {
		return fmt.Errorf("category update: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("category delete: %w", err)
	}
	return nil
}
