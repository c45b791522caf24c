// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/priya/resume-matcher/internal/matching"
	"github.com/priya/resume-matcher/internal/pii"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchCandidates outputs the ranked candidates for a job with their
// scores, evidence, and missing requirements.
func (p *Printer) PrintMatchCandidates(jobTitle string, candidates []matching.MatchCandidate) {
	if len(candidates) == 0 {
		p.printBox("MATCH RESULTS", "No candidates matched "+jobTitle)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job: %s\n", jobTitle))
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		name := c.CandidateName
		if name == "" {
			name = c.ResumeFilename
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f\n", c.MatchScore))
		if len(c.MissingRequirements) > 0 {
			missing := strings.Join(c.MissingRequirements, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("MATCH RESULTS", sb.String())
}

// PrintRetrievalHits outputs the ranked hits for a semantic query.
func (p *Printer) PrintRetrievalHits(query string, hits []matching.RetrievalHit) {
	if len(hits) == 0 {
		p.printBox("SEARCH RESULTS", "No results for: "+query)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query: %s\n\n", query))

	count := min(len(hits), maxItemsToShow)
	for i := 0; i < count; i++ {
		hit := hits[i]
		snippet := strings.ReplaceAll(hit.Snippet, "\n", " ")
		if len(snippet) > 45 {
			snippet = snippet[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  score %.3f\n", i+1, hit.Score))
		sb.WriteString(fmt.Sprintf("    %s\n", snippet))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(hits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more hits", len(hits)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", sb.String())
}

// PrintPIIRecord outputs the PII detected in a document.
func (p *Printer) PrintPIIRecord(filename string, rec pii.Record) {
	if len(rec.Emails) == 0 && len(rec.Phones) == 0 && len(rec.Names) == 0 {
		p.printBox("PII SCAN", "No PII detected in "+filename)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n\n", filename))
	writePIIList(&sb, "Emails", rec.Emails)
	writePIIList(&sb, "Phones", rec.Phones)
	writePIIList(&sb, "Names", rec.Names)

	p.printBox("PII SCAN", strings.TrimSuffix(sb.String(), "\n"))
}

func writePIIList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
