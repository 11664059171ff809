// Package sanitize repairs near-JSON model output before parsing. Every step
// is a pure, idempotent text transform; the output is best-effort JSON and is
// not guaranteed parseable.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	fencedBlockRe    = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	strayFenceRe     = regexp.MustCompile("```(?:json)?")
	adjacentArraysRe = regexp.MustCompile(`\]\s*\[`)
	trailingCommaRe  = regexp.MustCompile(`,\s*([\]}])`)
	quoteReplacer    = strings.NewReplacer(
		"“", `"`, // left double quotation mark
		"”", `"`, // right double quotation mark
		"‘", "'", // left single quotation mark
		"’", "'", // right single quotation mark
	)
)

// Clean runs the full repair sequence in order: fence stripping, array
// merging, trailing-comma removal, quote normalization.
func Clean(raw string) string {
	s := StripCodeFences(raw)
	s = MergeAdjacentArrays(s)
	s = RemoveTrailingCommas(s)
	s = NormalizeQuotes(s)
	return strings.TrimSpace(s)
}

// StripCodeFences removes Markdown code-fence wrappers (optionally tagged
// json), keeping only the enclosed content. Unpaired fence markers are
// dropped as well.
func StripCodeFences(s string) string {
	s = fencedBlockRe.ReplaceAllString(s, "$1")
	s = strayFenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// MergeAdjacentArrays collapses top-level arrays separated only by whitespace
// into a single array. Models sometimes emit several arrays back to back
// instead of one.
func MergeAdjacentArrays(s string) string {
	return adjacentArraysRe.ReplaceAllString(s, ",")
}

// RemoveTrailingCommas drops commas that sit immediately before a closing
// bracket or brace.
func RemoveTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

// NormalizeQuotes converts typographic quotation marks to straight ASCII
// quotes.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}
