package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/resume-matcher/internal/ingestion"
)

func TestLoadResumeDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Go engineer"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.html"), []byte("<html><body><p>React developer</p></body></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.pdf"), []byte("binary"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	docs, err := loadResumeDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "a.txt", docs[0].Filename)
	assert.Equal(t, "text/plain", docs[0].ContentType)
	assert.Equal(t, "b.html", docs[1].Filename)
	assert.Equal(t, "text/html", docs[1].ContentType)
}

func TestLoadResumeDocuments_NoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.pdf"), []byte("binary"), 0644))

	_, err := loadResumeDocuments(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt or .html files")
}

func TestLoadResumeDocuments_MissingDirectory(t *testing.T) {
	_, err := loadResumeDocuments("/nonexistent/resumes")
	assert.Error(t, err)
}

func TestBuildCorpus_SkipsFailedDocuments(t *testing.T) {
	docs := []ingestion.Document{
		{Filename: "good.txt", ContentType: "text/plain", Content: "Senior Go engineer\njane@example.com"},
		{Filename: "empty.txt", ContentType: "text/plain", Content: "   \n  "},
	}

	corpus := buildCorpus(context.Background(), docs)
	require.Len(t, corpus, 1)
	assert.Equal(t, "good.txt", corpus[0].ID)
	assert.Equal(t, "good.txt", corpus[0].Filename)
	assert.Equal(t, "jane@example.com", corpus[0].Email)
	assert.NotEmpty(t, corpus[0].Embedding)
}
