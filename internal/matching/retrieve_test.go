package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixWithNoise returns a unit-direction blend of base with mass added in a
// bucket base does not occupy, producing a vector whose cosine against base
// is 1/sqrt(1+noise^2). Lets tests construct corpus entries with exact,
// predictable scores without depending on hash bucket layout.
func mixWithNoise(t *testing.T, base []float64, noise float64) []float64 {
	t.Helper()
	vec := make([]float64, len(base))
	copy(vec, base)
	for i, v := range base {
		if v == 0 {
			vec[i] = noise
			return vec
		}
	}
	t.Fatal("base vector has no empty bucket")
	return nil
}

func TestRetrieve_ExactMatchScoresOne(t *testing.T) {
	query := "React developer"
	corpus := []CorpusEntry{
		{ID: "a", Text: "React developer with five years of experience", Embedding: Embed(query)},
	}

	hits := Retrieve(query, corpus, 5)
	require.Len(t, hits, 1)
	assert.Equal(t, "a", hits[0].ResumeID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
}

func TestRetrieve_ThresholdFiltersWeakHits(t *testing.T) {
	query := "platform engineer"
	queryVec := Embed(query)
	corpus := []CorpusEntry{
		{ID: "strong", Text: "platform engineer", Embedding: queryVec},
		// cosine = 1/sqrt(1+100) ~ 0.0995, just under the 0.1 threshold
		{ID: "weak", Text: "pastry chef", Embedding: mixWithNoise(t, queryVec, 10)},
		{ID: "zero", Text: "empty signal", Embedding: make([]float64, Dimension)},
		{ID: "baddim", Text: "wrong dimensionality", Embedding: []float64{1, 2, 3}},
	}

	hits := Retrieve(query, corpus, 10)
	require.Len(t, hits, 1)
	assert.Equal(t, "strong", hits[0].ResumeID)
	for _, hit := range hits {
		assert.Greater(t, hit.Score, 0.1)
	}
}

func TestRetrieve_SortedDescendingWithStableTies(t *testing.T) {
	query := "database administrator"
	queryVec := Embed(query)
	corpus := []CorpusEntry{
		// cosine = 1/sqrt(2) ~ 0.707
		{ID: "mid", Text: "dba", Embedding: mixWithNoise(t, queryVec, 1)},
		{ID: "top-first", Text: "database administrator", Embedding: queryVec},
		{ID: "top-second", Text: "database administrator copy", Embedding: queryVec},
	}

	hits := Retrieve(query, corpus, 10)
	require.Len(t, hits, 3)
	assert.Equal(t, "top-first", hits[0].ResumeID)
	assert.Equal(t, "top-second", hits[1].ResumeID)
	assert.Equal(t, "mid", hits[2].ResumeID)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
	}
}

func TestRetrieve_TruncatesToK(t *testing.T) {
	query := "site reliability engineer"
	queryVec := Embed(query)
	corpus := make([]CorpusEntry, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		corpus = append(corpus, CorpusEntry{ID: id, Text: id, Embedding: queryVec})
	}

	assert.Len(t, Retrieve(query, corpus, 2), 2)
	assert.Len(t, Retrieve(query, corpus, 0), 0)
	assert.Len(t, Retrieve(query, corpus, -1), 0)
	assert.Len(t, Retrieve(query, corpus, 100), 5)
}

func TestRetrieve_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Retrieve("anything", nil, 5))
	assert.Empty(t, Retrieve("anything", []CorpusEntry{}, 5))
}

func TestRetrieve_SnippetIsLeading500Characters(t *testing.T) {
	longText := strings.Repeat("x", 600)
	query := "query"
	corpus := []CorpusEntry{
		{ID: "long", Text: longText, Embedding: Embed(query)},
		{ID: "short", Text: "short text", Embedding: Embed(query)},
	}

	hits := Retrieve(query, corpus, 5)
	require.Len(t, hits, 2)
	assert.Equal(t, longText[:500], hits[0].Snippet)
	assert.Equal(t, "short text", hits[1].Snippet)
}
