package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/observability"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a semantic query over a directory of resumes",
	Long:  "Embed a free-text query and rank resumes in a directory by cosine similarity. Low-signal results are filtered out.",
	RunE:  runSearch,
}

var (
	searchQuery     string
	searchResumeDir string
	searchK         int
	searchJSON      bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Query text (required)")
	searchCmd.Flags().StringVarP(&searchResumeDir, "resumes", "r", "", "Directory of resume files, .txt or .html (required)")
	searchCmd.Flags().IntVar(&searchK, "k", 5, "Maximum number of hits to return")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Emit results as JSON instead of formatted output")
	_ = searchCmd.MarkFlagRequired("query")
	_ = searchCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	docs, err := loadResumeDocuments(searchResumeDir)
	if err != nil {
		return err
	}

	corpus := buildCorpus(context.Background(), docs)
	if len(corpus) == 0 {
		return fmt.Errorf("no resumes could be processed from %s", searchResumeDir)
	}

	hits := matching.Retrieve(searchQuery, corpus, searchK)

	if searchJSON {
		out, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRetrievalHits(searchQuery, hits)
	return nil
}
