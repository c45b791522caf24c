package matching

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// Blend weights: literal keyword coverage dominates, semantic similarity
	// nudges the ordering.
	similarityWeight = 0.3
	keywordWeight    = 0.7

	// evidenceWindow is the number of characters captured on each side of a
	// keyword match position.
	evidenceWindow = 100

	// minSubPhraseLength: sub-phrases must be longer than this to count as
	// keyword evidence, so stray "C" or "Go" fragments after splitting don't
	// match everything.
	minSubPhraseLength = 2

	maxEvidenceSnippets    = 3
	maxMissingRequirements = 5
)

var subPhraseSeparators = regexp.MustCompile(`[,;:]`)

// Job holds the text fields of a job posting that participate in matching.
type Job struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// MatchCandidate is one ranked resume with its blended score and the evidence
// behind it. Candidate metadata passes through from the corpus entry; this
// engine derives only the score, evidence, and missing-requirement lists.
type MatchCandidate struct {
	ResumeID            string   `json:"resume_id"`
	CandidateName       string   `json:"candidate_name"`
	CandidateEmail      string   `json:"candidate_email"`
	ResumeFilename      string   `json:"resume_filename"`
	MatchScore          float64  `json:"match_score"`
	EvidenceSnippets    []string `json:"evidence_snippets"`
	MissingRequirements []string `json:"missing_requirements"`
}

// Match ranks resumes against a job posting. The job's title, description,
// and requirements are joined and embedded once; every resume is scored by
// blending cosine similarity against its stored embedding with literal
// keyword coverage of the requirements, clamped into [0, 100]. Candidates are
// sorted descending by score (stable, input order breaks ties) and truncated
// to topN.
func Match(job Job, resumes []CorpusEntry, topN int) []MatchCandidate {
	jobText := job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " ")
	jobVec := Embed(jobText)

	candidates := make([]MatchCandidate, 0, len(resumes))
	for _, resume := range resumes {
		similarity := Cosine(jobVec, resume.Embedding)
		evidence, missing := scanRequirements(resume.Text, job.Requirements)

		// Division-by-zero guard: a job with no requirements contributes no
		// keyword signal rather than an undefined score.
		keywordScore := 0.0
		if len(job.Requirements) > 0 {
			matched := len(job.Requirements) - len(missing)
			keywordScore = 100 * float64(matched) / float64(len(job.Requirements))
		}

		score := similarity*100*similarityWeight + keywordScore*keywordWeight
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		if len(evidence) > maxEvidenceSnippets {
			evidence = evidence[:maxEvidenceSnippets]
		}
		if len(missing) > maxMissingRequirements {
			missing = missing[:maxMissingRequirements]
		}

		candidates = append(candidates, MatchCandidate{
			ResumeID:            resume.ID,
			CandidateName:       resume.Name,
			CandidateEmail:      resume.Email,
			ResumeFilename:      resume.Filename,
			MatchScore:          score,
			EvidenceSnippets:    evidence,
			MissingRequirements: missing,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	if topN < 0 {
		topN = 0
	}
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// scanRequirements checks each requirement for literal evidence in the resume
// text. Requirements are lower-cased and split into sub-phrases on commas,
// semicolons, and colons; the first sub-phrase found in the text records a
// context window and satisfies the requirement. Requirements with no matching
// sub-phrase are reported as missing (lower-cased, in input order).
func scanRequirements(resumeText string, requirements []string) (evidence, missing []string) {
	lowered := strings.ToLower(resumeText)

	evidence = make([]string, 0, len(requirements))
	missing = make([]string, 0, len(requirements))
	for _, requirement := range requirements {
		req := strings.ToLower(requirement)
		if window, ok := findEvidence(lowered, req); ok {
			evidence = append(evidence, window)
		} else {
			missing = append(missing, req)
		}
	}
	return evidence, missing
}

// findEvidence looks for the first sub-phrase of requirement contained in the
// lower-cased resume text and returns the surrounding context window, clipped
// to the text bounds.
func findEvidence(lowered, requirement string) (string, bool) {
	for _, phrase := range subPhraseSeparators.Split(requirement, -1) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) <= minSubPhraseLength {
			continue
		}

		idx := strings.Index(lowered, phrase)
		if idx < 0 {
			continue
		}

		start := idx - evidenceWindow
		if start < 0 {
			start = 0
		}
		end := idx + evidenceWindow
		if end > len(lowered) {
			end = len(lowered)
		}
		return lowered[start:end], true
	}
	return "", false
}
