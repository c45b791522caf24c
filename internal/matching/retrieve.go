package matching

import "sort"

const (
	// snippetLength is the number of leading characters of the source text
	// returned with each retrieval hit.
	snippetLength = 500
	// scoreThreshold filters out hits with no meaningful similarity signal.
	scoreThreshold = 0.1
)

// CorpusEntry is one searchable document: a resume's identifier, display
// metadata, raw text, and its embedding as persisted at ingestion time.
// Embeddings are computed once when the text is stored and never recomputed
// during retrieval or matching.
type CorpusEntry struct {
	ID        string
	Name      string
	Email     string
	Filename  string
	Text      string
	Embedding []float64
}

// RetrievalHit is a single ranked result from a semantic query.
type RetrievalHit struct {
	ResumeID string  `json:"resume_id"`
	Snippet  string  `json:"text"`
	Score    float64 `json:"score"`
}

// Retrieve embeds the query and ranks the corpus by cosine similarity against
// each entry's stored embedding. Results are sorted descending by score with
// ties broken by corpus order (the sort is stable), entries scoring at or
// below the threshold are dropped, and the list is truncated to k after
// filtering. An empty corpus or no entry above the threshold yields an empty
// slice, not an error.
func Retrieve(query string, corpus []CorpusEntry, k int) []RetrievalHit {
	queryVec := Embed(query)

	hits := make([]RetrievalHit, 0, len(corpus))
	for _, entry := range corpus {
		hits = append(hits, RetrievalHit{
			ResumeID: entry.ID,
			Snippet:  leadingSnippet(entry.Text),
			Score:    Cosine(queryVec, entry.Embedding),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	filtered := hits[:0]
	for _, hit := range hits {
		if hit.Score > scoreThreshold {
			filtered = append(filtered, hit)
		}
	}

	if k < 0 {
		k = 0
	}
	if len(filtered) > k {
		filtered = filtered[:k]
	}
	return filtered
}

// leadingSnippet returns the first snippetLength characters of text.
func leadingSnippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength])
}
