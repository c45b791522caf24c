package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/priya/resume-matcher/internal/db"
	"github.com/priya/resume-matcher/internal/ingestion"
	"github.com/priya/resume-matcher/internal/metrics"
	"github.com/priya/resume-matcher/internal/server/middleware"
	"github.com/priya/resume-matcher/internal/types"
)

// ResumeResponse is the API shape of a stored resume. Text is the raw
// extracted text for the owner and the redacted text for everyone else.
type ResumeResponse struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	CandidateName  string    `json:"candidate_name,omitempty"`
	CandidateEmail string    `json:"candidate_email,omitempty"`
	ContentHash    string    `json:"content_hash"`
	Text           string    `json:"text,omitempty"`
	Duplicate      bool      `json:"duplicate,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// resumeResponse renders a resume for the given viewer. Owners get the raw
// text; recruiters and admins get the redacted text.
func resumeResponse(r *db.Resume, viewerID uuid.UUID, includeText bool) ResumeResponse {
	resp := ResumeResponse{
		ID:             r.ID,
		Filename:       r.Filename,
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		ContentHash:    r.ContentHash,
		CreatedAt:      r.CreatedAt,
	}
	if includeText {
		if r.UserID == viewerID {
			resp.Text = r.RawText
		} else {
			resp.Text = r.RedactedText
		}
	}
	return resp
}

// contentHash is the upload idempotency key: the hex SHA-256 of the raw
// uploaded content, computed before extraction or cleaning so byte-identical
// uploads collide regardless of content type.
func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// handleUploadResume stores a single resume document. Re-uploading identical
// content returns the existing record instead of creating a duplicate.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume, duplicate, err := s.storeResume(r, userID, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	resp := resumeResponse(resume, userID, false)
	resp.Duplicate = duplicate
	s.jsonResponse(w, status, resp)
}

// storeResume runs the ingestion pipeline and persists the result, short
// circuiting on duplicate content. The LRU cache answers repeat uploads
// without a database round trip; the (user_id, content_hash) unique
// constraint backs it up on eviction.
func (s *Server) storeResume(r *http.Request, userID uuid.UUID, req types.UploadResumeRequest) (*db.Resume, bool, error) {
	hash := contentHash(req.Content)
	cacheKey := userID.String() + ":" + hash

	if idStr, ok := s.uploadCache.Get(cacheKey); ok {
		metrics.UploadCacheTotal.WithLabelValues("hit").Inc()
		if id, err := uuid.Parse(idStr); err == nil {
			existing, err := s.db.GetResume(r.Context(), id)
			if err == nil && existing != nil {
				return existing, true, nil
			}
		}
	}
	metrics.UploadCacheTotal.WithLabelValues("miss").Inc()

	existing, err := s.db.GetResumeByContentHash(r.Context(), userID, hash)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		s.uploadCache.Add(cacheKey, existing.ID.String())
		return existing, true, nil
	}

	start := time.Now()
	processed, err := ingestion.Process(ingestion.Document{
		Filename:       req.Filename,
		ContentType:    req.ContentType,
		Content:        req.Content,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
	})
	if err != nil {
		return nil, false, &ErrValidation{Field: "content", Message: err.Error()}
	}
	metrics.EmbeddingDuration.Observe(time.Since(start).Seconds())
	metrics.EmbeddingsComputedTotal.Inc()
	metrics.PIIRedactionsTotal.WithLabelValues("email").Add(float64(len(processed.PII.Emails)))
	metrics.PIIRedactionsTotal.WithLabelValues("phone").Add(float64(len(processed.PII.Phones)))

	resume := &db.Resume{
		UserID:         userID,
		Filename:       processed.Filename,
		CandidateName:  processed.CandidateName,
		CandidateEmail: processed.CandidateEmail,
		ContentHash:    hash,
		RawText:        processed.RawText,
		RedactedText:   processed.RedactedText,
		Embedding:      processed.Embedding,
	}

	id, err := s.db.CreateResume(r.Context(), resume)
	if err != nil {
		return nil, false, err
	}
	resume.ID = id
	s.uploadCache.Add(cacheKey, id.String())

	s.logger.Info("resume stored",
		zap.String("resume_id", id.String()),
		zap.String("filename", resume.Filename),
		zap.Int("pii_emails", len(processed.PII.Emails)),
		zap.Int("pii_phones", len(processed.PII.Phones)),
	)
	return resume, false, nil
}

// BatchUploadResult is the per-document outcome of a batch upload.
type BatchUploadResult struct {
	Filename  string    `json:"filename"`
	ResumeID  uuid.UUID `json:"resume_id,omitempty"`
	Duplicate bool      `json:"duplicate,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// handleBatchUpload stores up to 50 documents in one request. Documents fail
// independently; the response reports each outcome in input order.
func (s *Server) handleBatchUpload(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.BatchUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	results := make([]BatchUploadResult, 0, len(req.Documents))
	stored := 0
	for _, doc := range req.Documents {
		result := BatchUploadResult{Filename: doc.Filename}
		resume, duplicate, err := s.storeResume(r, userID, doc)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.ResumeID = resume.ID
			result.Duplicate = duplicate
			stored++
		}
		results = append(results, result)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"stored":  stored,
		"total":   len(req.Documents),
	})
}

// handleListResumes lists resumes visible to the caller: candidates see only
// their own uploads, recruiters and admins see all.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var resumes []db.Resume
	if role == types.RoleCandidate {
		resumes, err = s.db.ListResumesByUser(r.Context(), userID)
	} else {
		resumes, err = s.db.ListResumes(r.Context())
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	responses := make([]ResumeResponse, 0, len(resumes))
	for i := range resumes {
		responses = append(responses, resumeResponse(&resumes[i], userID, false))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": responses,
		"count":   len(responses),
	})
}

// handleGetResume retrieves a single resume with its text. Owners get raw
// text; recruiters and admins get the redacted text; candidates cannot see
// other users' resumes at all.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	// Candidates get the same response for "missing" and "not yours" so
	// resume IDs can't be probed.
	if resume == nil || (role == types.RoleCandidate && resume.UserID != userID) {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resumeResponse(resume, userID, true))
}

// handleDeleteResume deletes a resume. Only the owner or an admin may delete.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	if resume.UserID != userID && role != types.RoleAdmin {
		s.errorResponse(w, http.StatusForbidden, "Only the owner or an admin can delete a resume")
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}
