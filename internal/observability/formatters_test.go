package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/pii"
)

func TestPrintMatchCandidates(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintMatchCandidates("Backend Engineer", []matching.MatchCandidate{
		{
			CandidateName:       "Jane Smith",
			MatchScore:          72.5,
			MissingRequirements: []string{"kubernetes"},
		},
		{
			ResumeFilename: "anon.txt",
			MatchScore:     41.0,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "kubernetes")
	// Nameless candidates fall back to the filename
	assert.Contains(t, out, "anon.txt")
}

func TestPrintMatchCandidates_Empty(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintMatchCandidates("Backend Engineer", nil)

	assert.Contains(t, buf.String(), "No candidates matched")
}

func TestPrintMatchCandidates_TruncatesLongLists(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	candidates := make([]matching.MatchCandidate, 8)
	for i := range candidates {
		candidates[i] = matching.MatchCandidate{CandidateName: "Candidate Person", MatchScore: float64(80 - i)}
	}
	p.PrintMatchCandidates("Backend Engineer", candidates)

	assert.Contains(t, buf.String(), "and 3 more candidates")
}

func TestPrintRetrievalHits(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRetrievalHits("go engineer", []matching.RetrievalHit{
		{ResumeID: "a", Snippet: "Senior Go engineer\nwith Kubernetes", Score: 0.812},
	})

	out := buf.String()
	assert.Contains(t, out, "go engineer")
	assert.Contains(t, out, "0.812")
	// Newlines in snippets are flattened for box output
	assert.Contains(t, out, "Senior Go engineer with Kubernetes")
}

func TestPrintRetrievalHits_Empty(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRetrievalHits("nothing", nil)

	assert.Contains(t, buf.String(), "No results for: nothing")
}

func TestPrintPIIRecord(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintPIIRecord("resume.txt", pii.Record{
		Emails: []string{"jane@example.com"},
		Phones: []string{"555-123-4567"},
		Names:  []string{"Jane Smith"},
	})

	out := buf.String()
	assert.Contains(t, out, "resume.txt")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "555-123-4567")
	assert.Contains(t, out, "Jane Smith")
}

func TestPrintPIIRecord_Clean(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintPIIRecord("clean.txt", pii.Record{})

	assert.Contains(t, buf.String(), "No PII detected in clean.txt")
}
