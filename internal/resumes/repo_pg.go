package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepository is the Postgres-backed Repository. Structured resume data is
// stored as a JSONB document.
type PGRepository struct {
	db *sql.DB
}

func NewPGRepository(db *sql.DB) *PGRepository {
	return &PGRepository{db: db}
}

func (r *PGRepository) Create(ctx context.Context, resume *Resume) error {
	data, err := json.Marshal(resume.Data)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}
	const query = `
		INSERT INTO resumes (id, user_id, title, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		resume.ID, resume.UserID, resume.Title, data, resume.CreatedAt, resume.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, userID, id string) (*Resume, error) {
	const query = `
		SELECT id, user_id, title, data, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2`
	resume, err := scanResume(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select resume: %w", err)
	}
	return resume, nil
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
		SELECT id, user_id, title, data, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		out = append(out, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resumes: %w", err)
	}
	return out, nil
}

func (r *PGRepository) Update(ctx context.Context, resume *Resume) error {
	data, err := json.Marshal(resume.Data)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}
	const query = `
		UPDATE resumes
		SET title = $1, data = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.ExecContext(ctx, query,
		resume.Title, data, resume.UpdatedAt, resume.ID, resume.UserID,
	)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*Resume, error) {
	var resume Resume
	var data []byte
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&data,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &resume.Data); err != nil {
		return nil, fmt.Errorf("unmarshal resume data: %w", err)
	}
	return &resume, nil
}

var _ Repository = (*PGRepository)(nil)
