package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/priya/resume-matcher/internal/ingestion"
	"github.com/priya/resume-matcher/internal/matching"
)

// loadResumeDocuments reads every .txt and .html file in dir into ingestion
// documents. Subdirectories are not descended into.
func loadResumeDocuments(dir string) ([]ingestion.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var docs []ingestion.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		contentType := ""
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt":
			contentType = "text/plain"
		case ".html", ".htm":
			contentType = "text/html"
		default:
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		docs = append(docs, ingestion.Document{
			Filename:    entry.Name(),
			ContentType: contentType,
			Content:     string(content),
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no .txt or .html files found in %s", dir)
	}
	return docs, nil
}

// buildCorpus processes documents and converts the successes into corpus
// entries, using the filename as the entry ID. Failed documents are reported
// on stderr and skipped.
func buildCorpus(ctx context.Context, docs []ingestion.Document) []matching.CorpusEntry {
	results := ingestion.ProcessBatch(ctx, docs)

	corpus := make([]matching.CorpusEntry, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", docs[i].Filename, res.Err)
			continue
		}
		corpus = append(corpus, matching.CorpusEntry{
			ID:        res.Document.Filename,
			Name:      res.Document.CandidateName,
			Email:     res.Document.CandidateEmail,
			Filename:  res.Document.Filename,
			Text:      res.Document.RawText,
			Embedding: res.Document.Embedding,
		})
	}
	return corpus
}
