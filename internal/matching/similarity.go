package matching

import "math"

// Cosine computes the cosine similarity between two equal-length vectors in a
// single pass. Mismatched lengths return 0 rather than an error; the engine is
// designed to degrade numerically instead of failing. A zero magnitude on
// either side also returns 0 so that degenerate (all-zero) embeddings read as
// "no signal" instead of propagating NaN.
//
// The output is not clamped: for arbitrary vectors it ranges over [-1, 1], and
// callers that need a [0, 100] scale rescale explicitly.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
