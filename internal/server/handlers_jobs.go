package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/priya/resume-matcher/internal/db"
	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/metrics"
	"github.com/priya/resume-matcher/internal/server/middleware"
	"github.com/priya/resume-matcher/internal/types"
)

const defaultMatchTopN = 10

// requireRecruiter checks that the caller is a recruiter or admin, writing a
// 403 response and returning false otherwise.
func (s *Server) requireRecruiter(w http.ResponseWriter, r *http.Request) bool {
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	if role != types.RoleRecruiter && role != types.RoleAdmin {
		s.errorResponse(w, http.StatusForbidden, "Recruiter role required")
		return false
	}
	return true
}

// handleCreateJob creates a job posting. Recruiters and admins only.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireRecruiter(w, r) {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	id, err := s.db.CreateJob(r.Context(), userID, req.Title, req.Description, req.Requirements)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleImportJobs bulk-creates job postings from a JSON document validated
// against the job import schema. Recruiters and admins only.
func (s *Server) handleImportJobs(w http.ResponseWriter, r *http.Request) {
	if !s.requireRecruiter(w, r) {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	jobs, err := s.jobImport.Validate(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	created := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		id, err := s.db.CreateJob(r.Context(), userID, j.Title, j.Description, j.Requirements)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		created = append(created, id)
	}

	s.logger.Info("jobs imported", zap.Int("count", len(created)))
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"job_ids": created,
		"count":   len(created),
	})
}

// handleListJobs lists all job postings. Any authenticated user may browse.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleGetJob retrieves a job posting by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces a job posting's fields. Only the posting recruiter
// or an admin may update.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadOwnedJob(w, r)
	if !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.db.UpdateJob(r.Context(), job.ID, req.Title, req.Description, req.Requirements); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	updated, err := s.db.GetJob(r.Context(), job.ID)
	if err != nil || updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated job")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteJob deletes a job posting and its match results
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadOwnedJob(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteJob(r.Context(), job.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}

// loadOwnedJob parses the job ID path parameter, loads the job, and checks
// that the caller owns it or is an admin. Writes the error response and
// returns ok=false on failure.
func (s *Server) loadOwnedJob(w http.ResponseWriter, r *http.Request) (*db.Job, bool) {
	if !s.requireRecruiter(w, r) {
		return nil, false
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	role, _ := middleware.GetRole(r)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return nil, false
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return nil, false
	}
	if job.RecruiterID != userID && role != types.RoleAdmin {
		s.errorResponse(w, http.StatusForbidden, "Only the posting recruiter or an admin can modify a job")
		return nil, false
	}
	return job, true
}

// handleMatchJob ranks the resume corpus against a job posting and persists
// the results. Recruiters and admins only. Re-running a match overwrites the
// previous results for the same (job, resume) pairs.
func (s *Server) handleMatchJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireRecruiter(w, r) {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	role, _ := middleware.GetRole(r)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	req := types.MatchRequest{TopN: defaultMatchTopN}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.TopN == 0 {
			req.TopN = defaultMatchTopN
		}
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	corpus, err := s.db.VisibleCorpus(r.Context(), userID, role)
	if err != nil {
		metrics.MatchRunsTotal.WithLabelValues("error").Inc()
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	start := time.Now()
	candidates := matching.Match(matching.Job{
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
	}, corpus, req.TopN)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.MatchCorpusSize.Observe(float64(len(corpus)))

	// Each run replaces the job's result set, so candidates that dropped out
	// of the ranking don't linger from earlier runs.
	if err := s.db.DeleteMatchResultsByJob(r.Context(), job.ID); err != nil {
		metrics.MatchRunsTotal.WithLabelValues("error").Inc()
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	for _, c := range candidates {
		resumeID, err := uuid.Parse(c.ResumeID)
		if err != nil {
			continue
		}
		result := &db.MatchResult{
			JobID:               job.ID,
			ResumeID:            resumeID,
			MatchScore:          c.MatchScore,
			EvidenceSnippets:    db.StringArray(c.EvidenceSnippets),
			MissingRequirements: db.StringArray(c.MissingRequirements),
		}
		if err := s.db.UpsertMatchResult(r.Context(), result); err != nil {
			metrics.MatchRunsTotal.WithLabelValues("error").Inc()
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}
	metrics.MatchRunsTotal.WithLabelValues("ok").Inc()

	s.logger.Info("match run completed",
		zap.String("job_id", job.ID.String()),
		zap.Int("corpus_size", len(corpus)),
		zap.Int("candidates", len(candidates)),
	)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     job.ID,
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleListMatches returns the persisted match results for a job, highest
// score first. Recruiters and admins only.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	if !s.requireRecruiter(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	results, err := s.db.ListMatchResultsByJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  id,
		"results": results,
		"count":   len(results),
	})
}
