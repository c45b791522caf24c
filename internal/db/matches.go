package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertMatchResult stores a match outcome keyed by (job_id, resume_id).
// Re-running a match with identical inputs overwrites the previous score,
// evidence, and missing lists without creating duplicate rows, so the
// operation is idempotent. Concurrent match runs for the same job resolve
// last-writer-wins, which is acceptable because match results are derived,
// recomputable data.
func (db *DB) UpsertMatchResult(ctx context.Context, m *MatchResult) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO match_results (job_id, resume_id, match_score, evidence_snippets, missing_requirements)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, resume_id) DO UPDATE
		 SET match_score = $3, evidence_snippets = $4, missing_requirements = $5, updated_at = NOW()`,
		m.JobID, m.ResumeID, m.MatchScore, m.EvidenceSnippets, m.MissingRequirements,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match result: %w", err)
	}
	return nil
}

// ListMatchResultsByJob retrieves persisted match results for a job, highest
// score first
func (db *DB) ListMatchResultsByJob(ctx context.Context, jobID uuid.UUID) ([]MatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, resume_id, match_score, evidence_snippets, missing_requirements,
		        created_at, updated_at
		 FROM match_results WHERE job_id = $1 ORDER BY match_score DESC, created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	results := make([]MatchResult, 0)
	for rows.Next() {
		var m MatchResult
		err := rows.Scan(&m.ID, &m.JobID, &m.ResumeID, &m.MatchScore,
			&m.EvidenceSnippets, &m.MissingRequirements, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match result row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match result rows: %w", err)
	}
	return results, nil
}

// DeleteMatchResultsByJob removes all persisted results for a job
func (db *DB) DeleteMatchResultsByJob(ctx context.Context, jobID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM match_results WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete match results: %w", err)
	}
	return nil
}
