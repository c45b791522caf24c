package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/priya/resume-matcher/internal/schemas"
	"github.com/priya/resume-matcher/internal/server/middleware"
	"github.com/priya/resume-matcher/internal/types"
)

// newTestServer builds a server without a database for exercising the
// validation and authorization paths that return before any query runs.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cache, err := lru.New[string, string](16)
	require.NoError(t, err)

	jobImport, err := schemas.NewJobImportValidator()
	require.NoError(t, err)

	return &Server{
		logger:      zap.NewNop(),
		uploadCache: cache,
		jobImport:   jobImport,
	}
}

// asUser attaches an authenticated identity to the request context.
func asUser(r *http.Request, role string) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), uuid.New(), role))
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleUploadResume_Unauthenticated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/resumes", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleUploadResume_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/resumes", strings.NewReader(`{not json`)), types.RoleCandidate)
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUploadResume_MissingFields(t *testing.T) {
	s := newTestServer(t)

	body := `{"filename": "", "content": ""}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/resumes", strings.NewReader(body)), types.RoleCandidate)
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "validation error")
}

func TestHandleUploadResume_BadContentType(t *testing.T) {
	s := newTestServer(t)

	body := `{"filename": "cv.pdf", "content_type": "application/pdf", "content": "binary"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/resumes", strings.NewReader(body)), types.RoleCandidate)
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetResume_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodGet, "/resumes/not-a-uuid", nil), types.RoleCandidate)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid resume ID")
}

func TestHandleCreateJob_CandidateForbidden(t *testing.T) {
	s := newTestServer(t)

	body := `{"title": "Engineer", "description": "Build things", "requirements": ["Go"]}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body)), types.RoleCandidate)
	w := httptest.NewRecorder()

	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleMatchJob_CandidateForbidden(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/jobs/x/match", nil), types.RoleCandidate)
	req.SetPathValue("id", uuid.NewString())
	w := httptest.NewRecorder()

	s.handleMatchJob(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleMatchJob_InvalidJobID(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/jobs/nope/match", nil), types.RoleRecruiter)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	s.handleMatchJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleImportJobs_CandidateForbidden(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/jobs/import", strings.NewReader(`{}`)), types.RoleCandidate)
	w := httptest.NewRecorder()

	s.handleImportJobs(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleDeleteJob_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/jobs/nope", nil), types.RoleRecruiter)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	s.handleDeleteJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{broken`)), types.RoleRecruiter)
	w := httptest.NewRecorder()

	s.handleSearch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	s := newTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query": ""}`)), types.RoleRecruiter)
	w := httptest.NewRecorder()

	s.handleSearch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHash(t *testing.T) {
	// Stable, distinct, hex-encoded
	h1 := contentHash("some resume text")
	h2 := contentHash("some resume text")
	h3 := contentHash("different text")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}
