package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/xyz-asif/todoapi/pkg/errors"
)

// Store is the storage contract the handler depends on. The SQL-backed
// Repository implements it in production; tests inject in-memory doubles.
type Store interface {
	GetAll(ctx context.Context) ([]Todo, error)
	GetByID(ctx context.Context, id int64) (*Todo, error)
	GetByExpiryRange(ctx context.Context, start, end time.Time) ([]Todo, error)
	Insert(ctx context.Context, todo *Todo) error
	Update(ctx context.Context, todo *Todo) error
	UpdatePercent(ctx context.Context, id int64, percent int) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) (*Repository, error) {
	// Bootstrap the table so a fresh database is usable without external tooling
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS todos (
			id               BIGSERIAL PRIMARY KEY,
			title            TEXT        NOT NULL,
			description      TEXT        NOT NULL DEFAULT '',
			expiry           TIMESTAMPTZ NOT NULL,
			percent_complete INT         NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create todos table: %w", err)
	}

	return &Repository{db: db}, nil
}

// GetAll returns every stored todo in natural storage order
func (r *Repository) GetAll(ctx context.Context) ([]Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, expiry, percent_complete
		FROM todos
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTodos(rows)
}

// GetByID returns the todo with the given id, or ErrNotFound
func (r *Repository) GetByID(ctx context.Context, id int64) (*Todo, error) {
	var t Todo
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, expiry, percent_complete
		FROM todos
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.Expiry, &t.PercentComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByExpiryRange returns todos whose expiry falls on a UTC calendar date
// within [start, end], both inclusive. Time-of-day is ignored.
func (r *Repository) GetByExpiryRange(ctx context.Context, start, end time.Time) ([]Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, expiry, percent_complete
		FROM todos
		WHERE (expiry AT TIME ZONE 'UTC')::date >= $1::date
		  AND (expiry AT TIME ZONE 'UTC')::date <= $2::date
	`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTodos(rows)
}

// Insert persists a new todo and fills in the assigned id
func (r *Repository) Insert(ctx context.Context, todo *Todo) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO todos (title, description, expiry, percent_complete)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, todo.Title, todo.Description, todo.Expiry.UTC(), todo.PercentComplete).Scan(&todo.ID)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// Update replaces the full record identified by todo.ID.
//
// If the write races with a concurrent transaction, the row is re-checked:
// a vanished row reports ErrNotFound, a still-present row reports
// ErrConflict rather than an opaque storage error.
func (r *Repository) Update(ctx context.Context, todo *Todo) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = $1, description = $2, expiry = $3, percent_complete = $4
		WHERE id = $5
	`, todo.Title, todo.Description, todo.Expiry.UTC(), todo.PercentComplete, todo.ID)
	if err != nil {
		if isConcurrencyFailure(err) {
			return r.reclassifyConflict(ctx, todo.ID)
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePercent mutates only the completion percentage. Range checking is
// the caller's responsibility.
func (r *Repository) UpdatePercent(ctx context.Context, id int64, percent int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET percent_complete = $1
		WHERE id = $2
	`, percent, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes the todo with the given id, or reports ErrNotFound
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM todos
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanTodos(rows *sql.Rows) ([]Todo, error) {
	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Expiry, &t.PercentComplete); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

// isConcurrencyFailure reports whether err is a Postgres serialization
// failure or deadlock, the two SQLSTATEs a lost-update race surfaces as
func isConcurrencyFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// reclassifyConflict distinguishes "row vanished" from a genuine
// conflicting concurrent write
func (r *Repository) reclassifyConflict(ctx context.Context, id int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM todos WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}
