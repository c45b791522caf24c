package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/resume-matcher/internal/matching"
)

func TestProcess(t *testing.T) {
	t.Run("plain text document", func(t *testing.T) {
		doc := Document{
			Filename:       "resume.txt",
			ContentType:    "text/plain",
			Content:        "Jane Smith\nContact: jane@example.com\nGo engineer",
			CandidateName:  "Jane Smith",
			CandidateEmail: "jane@example.com",
		}

		processed, err := Process(doc)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", processed.CandidateName)
		assert.Contains(t, processed.RawText, "jane@example.com")
		assert.Contains(t, processed.RedactedText, "[EMAIL REDACTED]")
		assert.NotContains(t, processed.RedactedText, "jane@example.com")
		assert.Len(t, processed.Embedding, matching.Dimension)
	})

	t.Run("html document is extracted", func(t *testing.T) {
		doc := Document{
			Filename:    "resume.html",
			ContentType: "text/html",
			Content:     "<html><body><p>Go engineer with Kubernetes</p></body></html>",
		}

		processed, err := Process(doc)
		require.NoError(t, err)
		assert.Contains(t, processed.RawText, "Go engineer with Kubernetes")
		assert.NotContains(t, processed.RawText, "<p>")
	})

	t.Run("missing metadata is inferred from header", func(t *testing.T) {
		doc := Document{
			Filename:    "resume.txt",
			ContentType: "text/plain",
			Content:     "Jane Smith\njane@example.com\nGo engineer",
		}

		processed, err := Process(doc)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", processed.CandidateName)
		assert.Equal(t, "jane@example.com", processed.CandidateEmail)
	})

	t.Run("supplied metadata wins over inference", func(t *testing.T) {
		doc := Document{
			Filename:       "resume.txt",
			ContentType:    "text/plain",
			Content:        "Jane Smith\njane@example.com\nGo engineer",
			CandidateName:  "Preferred Name",
			CandidateEmail: "preferred@example.com",
		}

		processed, err := Process(doc)
		require.NoError(t, err)
		assert.Equal(t, "Preferred Name", processed.CandidateName)
		assert.Equal(t, "preferred@example.com", processed.CandidateEmail)
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		_, err := Process(Document{Filename: "empty.txt", ContentType: "text/plain", Content: "   \n  "})
		assert.Error(t, err)
	})
}

func TestProcessBatch(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		docs := []Document{
			{Filename: "a.txt", ContentType: "text/plain", Content: "first document"},
			{Filename: "b.txt", ContentType: "text/plain", Content: "second document"},
			{Filename: "c.txt", ContentType: "text/plain", Content: "third document"},
		}

		results := ProcessBatch(context.Background(), docs)
		require.Len(t, results, 3)
		for i, r := range results {
			require.NoError(t, r.Err)
			assert.Equal(t, docs[i].Filename, r.Document.Filename)
		}
	})

	t.Run("one bad document does not sink the batch", func(t *testing.T) {
		docs := []Document{
			{Filename: "good.txt", ContentType: "text/plain", Content: "valid content"},
			{Filename: "bad.txt", ContentType: "text/plain", Content: ""},
		}

		results := ProcessBatch(context.Background(), docs)
		require.Len(t, results, 2)
		assert.NoError(t, results[0].Err)
		assert.Error(t, results[1].Err)
		assert.Nil(t, results[1].Document)
	})

	t.Run("empty batch", func(t *testing.T) {
		results := ProcessBatch(context.Background(), nil)
		assert.Empty(t, results)
	})
}
