package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_SelfSimilarity(t *testing.T) {
	vec := Embed("distributed systems engineer")
	assert.InDelta(t, 1.0, Cosine(vec, vec), 1e-9)
}

func TestCosine_Symmetry(t *testing.T) {
	a := Embed("frontend developer react typescript")
	b := Embed("data engineer spark airflow")
	assert.Equal(t, Cosine(a, b), Cosine(b, a))
}

func TestCosine_LengthMismatchReturnsZero(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{1, 0}
	assert.Zero(t, Cosine(a, b))
	assert.Zero(t, Cosine(nil, b))
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	a := []float64{1, 0, 0, 0}
	b := []float64{0, 1, 0, 0}
	assert.Zero(t, Cosine(a, b))
}

func TestCosine_OppositeVectors(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{-1, -2, -3}
	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
}

func TestCosine_ZeroMagnitudeReturnsZero(t *testing.T) {
	zero := make([]float64, Dimension)
	vec := Embed("some text")
	assert.Zero(t, Cosine(zero, vec))
	assert.Zero(t, Cosine(vec, zero))
	assert.Zero(t, Cosine(zero, zero))
}
