package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_KnownValues(t *testing.T) {
	// hash = hash*31 + charCode, computed by hand for short inputs
	assert.Equal(t, 0, Hash(""))
	assert.Equal(t, 97, Hash("a"))
	assert.Equal(t, 48, Hash("0"))
	assert.Equal(t, 96354, Hash("abc"))
}

func TestHash_Deterministic(t *testing.T) {
	inputs := []string{"", "go", "kubernetes", "senior backend engineer", "résumé"}
	for _, in := range inputs {
		assert.Equal(t, Hash(in), Hash(in), "hash must be stable for %q", in)
	}
}

func TestHash_NonNegativeAfterOverflow(t *testing.T) {
	// Long strings wrap the 32-bit accumulator through negative territory;
	// the returned value must still be non-negative.
	long := ""
	for i := 0; i < 64; i++ {
		long += "overflow"
	}
	assert.GreaterOrEqual(t, Hash(long), 0)

	// Spot-check a handful of realistic tokens too.
	for _, in := range []string{"javascript12", "postgresql3", "microservices7"} {
		assert.GreaterOrEqual(t, Hash(in), 0)
	}
}

func TestHash_DistinctInputsUsuallyDiffer(t *testing.T) {
	assert.NotEqual(t, Hash("react0"), Hash("react1"))
	assert.NotEqual(t, Hash("java"), Hash("javascript"))
}
