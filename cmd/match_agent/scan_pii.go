package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priya/resume-matcher/internal/ingestion"
	"github.com/priya/resume-matcher/internal/observability"
)

var scanPIICmd = &cobra.Command{
	Use:   "scan-pii",
	Short: "Report the PII detected in a resume file",
	Long:  "Extract text from a resume file and report the emails, phone numbers, and names it contains, without storing anything.",
	RunE:  runScanPII,
}

var (
	scanInputFile string
	scanJSON      bool
)

func init() {
	scanPIICmd.Flags().StringVarP(&scanInputFile, "in", "i", "", "Path to resume file, .txt or .html (required)")
	scanPIICmd.Flags().BoolVar(&scanJSON, "json", false, "Emit the record as JSON instead of formatted output")
	_ = scanPIICmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scanPIICmd)
}

func runScanPII(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(scanInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	contentType := "text/plain"
	switch strings.ToLower(filepath.Ext(scanInputFile)) {
	case ".html", ".htm":
		contentType = "text/html"
	}

	doc, err := ingestion.Process(ingestion.Document{
		Filename:    filepath.Base(scanInputFile),
		ContentType: contentType,
		Content:     string(content),
	})
	if err != nil {
		return fmt.Errorf("failed to process document: %w", err)
	}

	if scanJSON {
		out, err := json.MarshalIndent(doc.PII, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintPIIRecord(doc.Filename, doc.PII)
	return nil
}
