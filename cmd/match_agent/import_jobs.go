package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/priya/resume-matcher/internal/db"
	"github.com/priya/resume-matcher/internal/schemas"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Validate and import a batch of job postings",
	Long:  "Validate a job import JSON file against the job import schema and insert the postings into the database under the given recruiter.",
	RunE:  runImportJobs,
}

var (
	importInputFile   string
	importRecruiterID string
	importDatabaseURL string
)

func init() {
	importJobsCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to job import JSON file (required)")
	importJobsCmd.Flags().StringVar(&importRecruiterID, "recruiter-id", "", "Recruiter user ID to own the imported jobs (required)")
	importJobsCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL env var)")
	_ = importJobsCmd.MarkFlagRequired("in")
	_ = importJobsCmd.MarkFlagRequired("recruiter-id")

	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(_ *cobra.Command, _ []string) error {
	recruiterID, err := uuid.Parse(importRecruiterID)
	if err != nil {
		return fmt.Errorf("invalid recruiter-id: %w", err)
	}

	data, err := os.ReadFile(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	validator, err := schemas.NewJobImportValidator()
	if err != nil {
		return fmt.Errorf("failed to load job import schema: %w", err)
	}

	jobs, err := validator.Validate(data)
	if err != nil {
		return fmt.Errorf("import file is invalid: %w", err)
	}

	if importDatabaseURL == "" {
		importDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if importDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, importDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for _, job := range jobs {
		id, err := database.CreateJob(ctx, recruiterID, job.Title, job.Description, job.Requirements)
		if err != nil {
			return fmt.Errorf("failed to create job %q: %w", job.Title, err)
		}
		fmt.Fprintf(os.Stdout, "Created job %s (%s)\n", job.Title, id)
	}

	fmt.Fprintf(os.Stdout, "Imported %d jobs\n", len(jobs))
	return nil
}
