package ingestion

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/pii"
)

// maxConcurrentDocuments bounds parallel document processing in a batch
const maxConcurrentDocuments = 8

// Document is one raw upload in a batch.
type Document struct {
	Filename       string
	ContentType    string
	Content        string
	CandidateName  string
	CandidateEmail string
}

// ProcessedDocument is a document after extraction, cleaning, redaction, and
// embedding. RawText keeps the original PII for owner views; RedactedText is
// what non-owners see.
type ProcessedDocument struct {
	Filename       string
	CandidateName  string
	CandidateEmail string
	RawText        string
	RedactedText   string
	PII            pii.Record
	Embedding      []float64
}

// Process runs the full ingestion pipeline on a single document: HTML
// extraction when needed, text cleaning, metadata inference for missing
// fields, PII redaction, and embedding.
func Process(doc Document) (*ProcessedDocument, error) {
	text := doc.Content
	if doc.ContentType == "text/html" {
		extracted, err := ExtractHTMLText(text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", doc.Filename, err)
		}
		text = extracted
	} else {
		text = CleanText(text)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document %s has no extractable text", doc.Filename)
	}

	name, email := doc.CandidateName, doc.CandidateEmail
	if name == "" || email == "" {
		meta := InferCandidateMetadata(text)
		if name == "" {
			name = meta.Name
		}
		if email == "" {
			email = meta.Email
		}
	}

	rec := pii.Extract(text)

	return &ProcessedDocument{
		Filename:       doc.Filename,
		CandidateName:  name,
		CandidateEmail: email,
		RawText:        text,
		RedactedText:   pii.Redact(text, rec),
		PII:            rec,
		Embedding:      matching.Embed(text),
	}, nil
}

// BatchResult pairs a processed document with the error that stopped it, so
// one bad document does not sink the rest of the batch.
type BatchResult struct {
	Document *ProcessedDocument
	Err      error
}

// ProcessBatch processes documents concurrently, preserving input order in
// the results. A cancelled context aborts documents not yet started.
func ProcessBatch(ctx context.Context, docs []Document) []BatchResult {
	results := make([]BatchResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDocuments)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{Err: err}
				return nil
			}
			processed, err := Process(doc)
			results[i] = BatchResult{Document: processed, Err: err}
			return nil
		})
	}

	// Workers never return errors; per-document failures live in results
	_ = g.Wait()
	return results
}
