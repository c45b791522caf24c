// Package matching implements the deterministic text-similarity engine used to
// rank resumes against job postings and free-text queries. All functions are
// pure: identical inputs always produce identical outputs, which keeps
// re-matching idempotent and results reproducible across runs.
package matching

// Hash computes a 32-bit polynomial rolling hash of s and returns its absolute
// value. Accumulation wraps in signed 32-bit space (hash = hash*31 + charCode),
// so the same string hashes identically on every platform. The result is
// always non-negative; the absolute value is taken in 64-bit space so that a
// wrapped value of MinInt32 maps to 2147483648 rather than staying negative.
func Hash(s string) int {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}
