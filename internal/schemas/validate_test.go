package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *JobImportValidator {
	t.Helper()
	v, err := NewJobImportValidator()
	require.NoError(t, err)
	return v
}

func TestJobImportValidator_ValidDocument(t *testing.T) {
	v := newValidator(t)

	doc := `{
		"jobs": [
			{
				"title": "Backend Engineer",
				"description": "Build Go services",
				"requirements": ["Go", "PostgreSQL", "Docker"]
			},
			{
				"title": "Frontend Engineer",
				"description": "Build the recruiter dashboard",
				"requirements": []
			}
		]
	}`

	jobs, err := v.Validate([]byte(doc))
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, jobs[0].Requirements)
	assert.Empty(t, jobs[1].Requirements)
}

func TestJobImportValidator_MissingRequiredField(t *testing.T) {
	v := newValidator(t)

	doc := `{"jobs": [{"title": "No description", "requirements": []}]}`

	_, err := v.Validate([]byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestJobImportValidator_EmptyJobsArray(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate([]byte(`{"jobs": []}`))
	assert.Error(t, err)
}

func TestJobImportValidator_UnknownTopLevelField(t *testing.T) {
	v := newValidator(t)

	doc := `{"jobs": [{"title": "t", "description": "d", "requirements": []}], "extra": true}`

	_, err := v.Validate([]byte(doc))
	assert.Error(t, err)
}

func TestJobImportValidator_MalformedJSON(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate([]byte(`{"jobs": [`))
	assert.Error(t, err)
}

func TestJobImportValidator_EmptyTitleRejected(t *testing.T) {
	v := newValidator(t)

	doc := `{"jobs": [{"title": "", "description": "d", "requirements": ["Go"]}]}`

	_, err := v.Validate([]byte(doc))
	require.Error(t, err)
}
