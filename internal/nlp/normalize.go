package nlp

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// MinTextLength is the minimum cleaned length a document must have before
// extraction is attempted. Anything shorter is treated as unreadable input.
const MinTextLength = 50

// ErrInputTooShort is the pipeline's only hard failure: the cleaned text is
// too short to be a plausible resume.
var ErrInputTooShort = errors.New("extracted text is too short, file might be corrupted or unreadable")

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	lineSpaceRun = regexp.MustCompile(`[ \t]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// Section headings are rewritten to a fixed uppercase token so later
// heading-anchored matches are case-independent.
var headingRewrites = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bsummary\b`), "SUMMARY"},
	{regexp.MustCompile(`(?i)\bexperience\b`), "EXPERIENCE"},
	{regexp.MustCompile(`(?i)\bskills\b`), "SKILLS"},
	{regexp.MustCompile(`(?i)\beducation\b`), "EDUCATION"},
}

// Normalized holds the two cleaned views of an input document. Flat collapses
// every whitespace run to a single space and feeds the contact, skill and
// years extractors. Lines keeps newlines so the section segmenter and entry
// parsers can still see line structure.
type Normalized struct {
	Flat  string
	Lines string
}

// Normalize cleans raw resume text and rejects degenerate input.
func Normalize(raw string) (Normalized, error) {
	flat := strings.TrimSpace(stripControl(spaceRun.ReplaceAllString(raw, " "), false))
	flat = rewriteHeadings(flat)
	if len(flat) < MinTextLength {
		return Normalized{}, ErrInputTooShort
	}
	return Normalized{Flat: flat, Lines: normalizeLines(raw)}, nil
}

func normalizeLines(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = stripControl(s, true)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(lineSpaceRun.ReplaceAllString(line, " "))
	}

	out := strings.Join(lines, "\n")
	out = blankLineRun.ReplaceAllString(out, "\n\n")
	return rewriteHeadings(strings.TrimSpace(out))
}

func rewriteHeadings(s string) string {
	for _, h := range headingRewrites {
		s = h.re.ReplaceAllString(s, h.repl)
	}
	return s
}

func stripControl(s string, keepNewlines bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' && keepNewlines {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
