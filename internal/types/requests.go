package types

import "github.com/go-playground/validator/v10"

// UploadResumeRequest represents a resume upload. Content is the document
// body: plain text, or HTML when ContentType says so (the server extracts the
// text). Multi-document archives are split by the caller before upload, one
// document per entry.
type UploadResumeRequest struct {
	Filename       string `json:"filename" validate:"required,min=1"`
	ContentType    string `json:"content_type" validate:"omitempty,oneof=text/plain text/html"`
	Content        string `json:"content" validate:"required,min=1"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
}

// BatchUploadRequest uploads several documents in one request, e.g. the
// contents of an archive that was already split into individual documents.
type BatchUploadRequest struct {
	Documents []UploadResumeRequest `json:"documents" validate:"required,min=1,max=50,dive"`
}

// CreateJobRequest represents a job posting creation or update.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description" validate:"required,min=1"`
	Requirements []string `json:"requirements" validate:"required"`
}

// SearchRequest is a natural-language query over the visible resume corpus.
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	K     int    `json:"k" validate:"omitempty,min=1,max=100"`
}

// MatchRequest asks for the top-N candidates for a job posting.
type MatchRequest struct {
	TopN int `json:"top_n" validate:"omitempty,min=1,max=100"`
}

// Validate validates the UploadResumeRequest using the validator.
func (r *UploadResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchUploadRequest using the validator.
func (r *BatchUploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
