package comparisons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepository is the Postgres-backed Repository.
type PGRepository struct {
	db *sql.DB
}

func NewPGRepository(db *sql.DB) *PGRepository {
	return &PGRepository{db: db}
}

func (r *PGRepository) Create(ctx context.Context, cmp *Comparison) error {
	const query = `
		INSERT INTO comparisons (id, user_id, job_description, resume_chars, source, match_score, result, provider, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		cmp.ID,
		cmp.UserID,
		cmp.JobDescription,
		cmp.ResumeChars,
		cmp.Source,
		cmp.MatchScore,
		[]byte(cmp.Result),
		cmp.Provider,
		cmp.Model,
		cmp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comparison: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, userID, id string) (*Comparison, error) {
	const query = `
		SELECT id, user_id, job_description, resume_chars, source, match_score, result, provider, model, created_at
		FROM comparisons
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	cmp, err := scanComparison(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select comparison: %w", err)
	}
	return cmp, nil
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	const query = `
		SELECT id, user_id, job_description, resume_chars, source, match_score, result, provider, model, created_at
		FROM comparisons
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	defer rows.Close()

	var out []Comparison
	for rows.Next() {
		cmp, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		out = append(out, *cmp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComparison(row rowScanner) (*Comparison, error) {
	var cmp Comparison
	var result []byte
	if err := row.Scan(
		&cmp.ID,
		&cmp.UserID,
		&cmp.JobDescription,
		&cmp.ResumeChars,
		&cmp.Source,
		&cmp.MatchScore,
		&result,
		&cmp.Provider,
		&cmp.Model,
		&cmp.CreatedAt,
	); err != nil {
		return nil, err
	}
	cmp.Result = result
	return &cmp, nil
}

var _ Repository = (*PGRepository)(nil)
