package ingestion

import (
	"strings"

	"github.com/priya/resume-matcher/internal/pii"
)

// headerLines is how much of the document the metadata guesser reads.
// Resume contact blocks live at the top; scanning further mostly picks up
// references and noise.
const headerLines = 10

// CandidateMetadata is the best-effort name and email inferred from a
// document when the uploader did not supply them.
type CandidateMetadata struct {
	Name  string
	Email string
}

// InferCandidateMetadata guesses the candidate's name and email from the
// document header using the PII scanner. The first detected email wins; the
// first name-like match wins. Empty fields mean no confident guess; callers
// should prefer explicitly supplied values over these.
func InferCandidateMetadata(text string) CandidateMetadata {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	rec := pii.Extract(strings.Join(lines, "\n"))

	meta := CandidateMetadata{}
	if len(rec.Emails) > 0 {
		meta.Email = rec.Emails[0]
	}
	if len(rec.Names) > 0 {
		meta.Name = rec.Names[0]
	}
	return meta
}
