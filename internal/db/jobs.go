package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJob creates a job posting and returns its ID
func (db *DB) CreateJob(ctx context.Context, recruiterID uuid.UUID, title, description string, requirements []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, description, requirements)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		recruiterID, title, description, StringArray(requirements),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job posting by ID, or nil if not found
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, title, description, requirements, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// ListJobs retrieves all job postings, newest first
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, recruiter_id, title, description, requirements, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		err := rows.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}
	return jobs, nil
}

// UpdateJob replaces a job posting's text fields
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, title, description string, requirements []string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, description = $2, requirements = $3, updated_at = NOW()
		 WHERE id = $4`,
		title, description, StringArray(requirements), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// DeleteJob deletes a job posting and its match results (cascading)
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}
