package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*Token, error) {
	var value string
	var expiresAt sql.NullInt64

	err := r.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM tokens WHERE name = ?`, name).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token[%s]: %w", name, err)
	}

	t := &Token{Name: name, Value: value}
	if expiresAt.Valid {
		t.ExpiresAt = time.Unix(expiresAt.Int64, 0)
	}
	if t.Expired(time.Now()) {
		return nil, nil
	}
	return t, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, token Token) error {
	var expiresAt sql.NullInt64
	if !token.ExpiresAt.IsZero() {
		expiresAt = sql.NullInt64{Int64: token.ExpiresAt.Unix(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (name, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, token.Name, token.Value, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set token[%s]: %w", token.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete token[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens`)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}
