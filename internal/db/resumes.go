package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/types"
)

// CreateResume stores a resume with its precomputed embedding and returns
// its ID
func (db *DB) CreateResume(ctx context.Context, r *Resume) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, candidate_name, candidate_email,
		                      content_hash, raw_text, redacted_text, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		r.UserID, r.Filename, r.CandidateName, r.CandidateEmail,
		r.ContentHash, r.RawText, r.RedactedText, r.Embedding,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID, or nil if not found
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, candidate_name, candidate_email,
		        content_hash, raw_text, redacted_text, embedding, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.Filename, &r.CandidateName, &r.CandidateEmail,
		&r.ContentHash, &r.RawText, &r.RedactedText, &r.Embedding, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// GetResumeByContentHash retrieves an owner's resume by content hash, or nil
// if not found. Used by the upload path for idempotency: re-uploading
// identical bytes returns the existing record.
func (db *DB) GetResumeByContentHash(ctx context.Context, userID uuid.UUID, hash string) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, candidate_name, candidate_email,
		        content_hash, raw_text, redacted_text, embedding, created_at, updated_at
		 FROM resumes WHERE user_id = $1 AND content_hash = $2`,
		userID, hash,
	).Scan(&r.ID, &r.UserID, &r.Filename, &r.CandidateName, &r.CandidateEmail,
		&r.ContentHash, &r.RawText, &r.RedactedText, &r.Embedding, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume by content hash: %w", err)
	}
	return &r, nil
}

// ListResumesByUser retrieves all resumes owned by a user, newest first
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, candidate_name, candidate_email,
		        content_hash, raw_text, redacted_text, embedding, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	return scanResumes(rows)
}

// ListResumes retrieves all resumes, newest first. Callers are responsible
// for role checks; candidates must go through ListResumesByUser.
func (db *DB) ListResumes(ctx context.Context) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, candidate_name, candidate_email,
		        content_hash, raw_text, redacted_text, embedding, created_at, updated_at
		 FROM resumes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	return scanResumes(rows)
}

// VisibleCorpus returns the resume corpus visible to a user as matching
// corpus entries, ready for retrieval and matching. Candidates see only
// their own resumes; recruiters and admins see all. Ordering is stable
// (creation order) so ranked results tie-break reproducibly.
func (db *DB) VisibleCorpus(ctx context.Context, userID uuid.UUID, role string) ([]matching.CorpusEntry, error) {
	query := `SELECT id, user_id, filename, candidate_name, candidate_email,
	                 content_hash, raw_text, redacted_text, embedding, created_at, updated_at
	          FROM resumes ORDER BY created_at ASC, id ASC`
	args := []any{}
	if role == types.RoleCandidate {
		query = `SELECT id, user_id, filename, candidate_name, candidate_email,
		                content_hash, raw_text, redacted_text, embedding, created_at, updated_at
		         FROM resumes WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
		args = append(args, userID)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume corpus: %w", err)
	}
	defer rows.Close()

	resumes, err := scanResumes(rows)
	if err != nil {
		return nil, err
	}

	corpus := make([]matching.CorpusEntry, 0, len(resumes))
	for _, r := range resumes {
		corpus = append(corpus, matching.CorpusEntry{
			ID:        r.ID.String(),
			Name:      r.CandidateName,
			Email:     r.CandidateEmail,
			Filename:  r.Filename,
			Text:      r.RawText,
			Embedding: r.Embedding,
		})
	}
	return corpus, nil
}

// DeleteResume deletes a resume by ID
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// scanResumes collects resume rows
func scanResumes(rows pgx.Rows) ([]Resume, error) {
	resumes := make([]Resume, 0)
	for rows.Next() {
		var r Resume
		err := rows.Scan(&r.ID, &r.UserID, &r.Filename, &r.CandidateName, &r.CandidateEmail,
			&r.ContentHash, &r.RawText, &r.RedactedText, &r.Embedding, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume rows: %w", err)
	}
	return resumes, nil
}
