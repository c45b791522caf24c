package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimension is the fixed length of every embedding vector produced by Embed.
// Two vectors are only comparable when they share this dimensionality.
const Dimension = 384

// valueModulus spreads hash values into the [0, 1) range for accumulation.
const valueModulus = 1000

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Embed maps arbitrary text to a Dimension-length unit vector using feature
// hashing. Each whitespace-delimited token is hashed together with its
// position, the hash picks a bucket, and a small hash-derived value is
// accumulated into that bucket (collisions sum). The result is L2-normalized.
//
// Splitting follows split-on-whitespace-runs semantics where empty text yields
// a single empty token, so even "" produces a well-defined, deterministic
// vector. If the accumulated magnitude is exactly zero the unnormalized
// all-zero vector is returned instead of dividing by zero; callers treat a
// zero vector as "no similarity signal".
func Embed(text string) []float64 {
	tokens := whitespaceRuns.Split(strings.ToLower(text), -1)

	vec := make([]float64, Dimension)
	for i, token := range tokens {
		h := Hash(token + strconv.Itoa(i))
		bucket := h % Dimension
		vec[bucket] += float64(h%valueModulus) / valueModulus
	}

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return vec
	}

	for i := range vec {
		vec[i] /= magnitude
	}
	return vec
}
