package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClaims implements ClaimsAccessor for tests.
type fakeClaims struct {
	userID uuid.UUID
	role   string
}

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }
func (c *fakeClaims) GetRole() string      { return c.role }

// fakeValidator accepts exactly one token string.
type fakeValidator struct {
	token  string
	claims *fakeClaims
}

func (v *fakeValidator) ValidateToken(tokenString string) (ClaimsAccessor, error) {
	if tokenString != v.token {
		return nil, errors.New("invalid token")
	}
	return v.claims, nil
}

func newAuthTestHandler(t *testing.T, validator TokenValidator) (http.Handler, *bool) {
	t.Helper()
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, err := GetUserID(r)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, userID)
		role, err := GetRole(r)
		require.NoError(t, err)
		assert.NotEmpty(t, role)
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(validator)(inner), &called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := &fakeValidator{
		token:  "good-token",
		claims: &fakeClaims{userID: uuid.New(), role: "candidate"},
	}
	handler, called := newAuthTestHandler(t, validator)

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := &fakeValidator{
		token:  "good-token",
		claims: &fakeClaims{userID: uuid.New(), role: "recruiter"},
	}
	handler, called := newAuthTestHandler(t, validator)

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "bearer good-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	validator := &fakeValidator{
		token:  "good-token",
		claims: &fakeClaims{userID: uuid.New(), role: "candidate"},
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good-token"},
		{"no token", "Bearer"},
		{"invalid token", "Bearer bad-token"},
		{"extra parts", "Bearer one two"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, called := newAuthTestHandler(t, validator)

			req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *called)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)

	_, err = GetRole(req)
	assert.Error(t, err)
}

func TestWithIdentity(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), userID, "admin"))

	gotID, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotRole, err := GetRole(req)
	require.NoError(t, err)
	assert.Equal(t, "admin", gotRole)
}
