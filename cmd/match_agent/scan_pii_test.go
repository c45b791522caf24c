package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScanPII_Success(t *testing.T) {
	file := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Smith\njane@example.com\n555-123-4567\nGo engineer"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	scanInputFile = file
	scanJSON = true

	assert.NoError(t, runScanPII(nil, nil))
}

func TestRunScanPII_HTMLInput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "resume.html")
	content := "<html><body><p>Jane Smith</p><p>jane@example.com</p></body></html>"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	scanInputFile = file
	scanJSON = true

	assert.NoError(t, runScanPII(nil, nil))
}

func TestRunScanPII_MissingFile(t *testing.T) {
	scanInputFile = "/nonexistent/resume.txt"

	err := runScanPII(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestRunScanPII_EmptyDocument(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(file, []byte("   \n  "), 0644))

	scanInputFile = file

	err := runScanPII(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process document")
}
