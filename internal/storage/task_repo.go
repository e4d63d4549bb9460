package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	CategoryID int64
	Title      string
	Difficulty int
	Points     int
	Period     string
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (category_id, title, difficulty, points, completed, period)
		VALUES (?, ?, ?, ?, 0, ?)
	`, in.CategoryID, in.Title, in.Difficulty, in.Points, in.Period)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, category_id, title, difficulty, points, completed, period, created_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

// ListAll returns tasks newest first, matching the dashboard's prepend order.
func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, title, difficulty, points, completed, period, created_at
		FROM tasks
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, completed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

// ClearDailyCompleted flips every completed daily task back to pending.
// One statement so a partial reset cannot be observed.
func (r *TaskRepo) ClearDailyCompleted(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 0 WHERE period = 'daily' AND completed = 1`)
	if err != nil {
		return fmt.Errorf("task clear daily: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func (r *TaskRepo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE category_id = ?`, categoryID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count by category: %w", err)
	}
	return n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var t Task
	var completed int
	if err := row.Scan(&t.ID, &t.CategoryID, &t.Title, &t.Difficulty, &t.Points, &completed, &t.Period, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.Completed = completed != 0
	return &t, nil
}
