package server

import (
	"encoding/json"
	"net/http"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/metrics"
	"github.com/priya/resume-matcher/internal/server/middleware"
	"github.com/priya/resume-matcher/internal/types"
)

const defaultSearchK = 5

// handleSearch runs a semantic query over the resume corpus visible to the
// caller. Candidates search only their own resumes; recruiters and admins
// search everything.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
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

	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.K == 0 {
		req.K = defaultSearchK
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	corpus, err := s.db.VisibleCorpus(r.Context(), userID, role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	hits := matching.Retrieve(req.Query, corpus, req.K)
	metrics.SearchRequestsTotal.Inc()

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query": req.Query,
		"hits":  hits,
		"count": len(hits),
	})
}
