// Package pii detects and redacts personally identifiable information in
// resume text. Detection is pattern-based and intentionally conservative in
// scope: emails and North American phone numbers are matched precisely, while
// the name detector is a naive capitalized-pair heuristic with a known high
// false-positive rate, not an NER system.
package pii

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	namePattern  = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// Placeholder tokens substituted for detected PII. Neither matches the
// detection patterns, which makes redaction idempotent.
const (
	EmailPlaceholder = "[EMAIL REDACTED]"
	PhonePlaceholder = "[PHONE REDACTED]"
)

// Record holds the PII found in one text blob, one deduplicated list per
// category. A Record is derived wholesale from its source text: when the text
// changes the record is recomputed, never patched in place.
type Record struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
	Names  []string `json:"names"`
}

// Extract scans text and returns every email, phone-like string, and
// name-like string found. Each category is deduplicated with first-occurrence
// order preserved so results are stable for identical input.
func Extract(text string) Record {
	return Record{
		Emails: dedupe(emailPattern.FindAllString(text, -1)),
		Phones: dedupe(phonePattern.FindAllString(text, -1)),
		Names:  dedupe(namePattern.FindAllString(text, -1)),
	}
}

// Redact replaces every occurrence of each detected email and phone literal
// with a fixed placeholder. Matching is exact literal substitution, so text
// that has already been redacted passes through unchanged. Names are left in
// place: name detection is too noisy to erase text on, so the caller decides
// what to do with the name list.
func Redact(text string, rec Record) string {
	for _, email := range rec.Emails {
		text = strings.ReplaceAll(text, email, EmailPlaceholder)
	}
	for _, phone := range rec.Phones {
		text = strings.ReplaceAll(text, phone, PhonePlaceholder)
	}
	return text
}

// dedupe removes duplicate matches while keeping first-occurrence order.
func dedupe(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
