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

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a directory of resumes against a job posting",
	Long:  "Rank resumes in a directory against a job posting JSON file. Scores blend embedding similarity with literal requirement coverage.",
	RunE:  runMatch,
}

var (
	matchJobFile   string
	matchResumeDir string
	matchTopN      int
	matchJSON      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	matchCmd.Flags().StringVarP(&matchResumeDir, "resumes", "r", "", "Directory of resume files, .txt or .html (required)")
	matchCmd.Flags().IntVar(&matchTopN, "top-n", 10, "Maximum number of candidates to return")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit results as JSON instead of formatted output")
	_ = matchCmd.MarkFlagRequired("job")
	_ = matchCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	jobBytes, err := os.ReadFile(matchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	var job matching.Job
	if err := json.Unmarshal(jobBytes, &job); err != nil {
		return fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.Title == "" {
		return fmt.Errorf("job file must have a title")
	}

	docs, err := loadResumeDocuments(matchResumeDir)
	if err != nil {
		return err
	}

	corpus := buildCorpus(context.Background(), docs)
	if len(corpus) == 0 {
		return fmt.Errorf("no resumes could be processed from %s", matchResumeDir)
	}

	candidates := matching.Match(job, corpus, matchTopN)

	if matchJSON {
		out, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMatchCandidates(job.Title, candidates)
	return nil
}
