package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume represents a stored resume document. RawText is the extracted plain
// text; RedactedText has emails and phone numbers replaced with placeholders
// and is what non-owners see. Embedding is computed once at upload.
type Resume struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Filename       string    `json:"filename"`
	CandidateName  string    `json:"candidate_name,omitempty"`
	CandidateEmail string    `json:"candidate_email,omitempty"`
	ContentHash    string    `json:"content_hash"`
	RawText        string    `json:"-"`
	RedactedText   string    `json:"-"`
	Embedding      []float64 `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Job represents a job posting
type Job struct {
	ID           uuid.UUID   `json:"id"`
	RecruiterID  uuid.UUID   `json:"recruiter_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Requirements StringArray `json:"requirements"` // JSONB array
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// MatchResult represents a persisted match between a job and a resume. Rows
// are keyed by (job_id, resume_id): re-running a match for the same pair
// overwrites score, evidence, and missing lists instead of creating
// duplicates.
type MatchResult struct {
	ID                  uuid.UUID   `json:"id"`
	JobID               uuid.UUID   `json:"job_id"`
	ResumeID            uuid.UUID   `json:"resume_id"`
	MatchScore          float64     `json:"match_score"`
	EvidenceSnippets    StringArray `json:"evidence_snippets"`    // JSONB array
	MissingRequirements StringArray `json:"missing_requirements"` // JSONB array
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("unsupported source type for StringArray")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
