package nlp

import (
	"regexp"
	"strings"
)

// Tagger finds person-name spans in the opening tokens of a document. The
// model-backed implementation lives in prose_tagger.go; HeuristicTagger
// reports nothing so callers always take the line-scanning fallback.
type Tagger interface {
	TagPersons(tokens []string) []string
	Mode() string
}

// HeuristicTagger is the no-model Tagger.
type HeuristicTagger struct{}

func (HeuristicTagger) TagPersons([]string) []string { return nil }
func (HeuristicTagger) Mode() string                 { return "heuristic" }

// Names almost always appear in the opening tokens; tagging the whole
// document just invites false positives from later sections.
const nameTokenWindow = 100

const nameScanLines = 10

var (
	nameWordShape    = regexp.MustCompile(`^[A-Z][a-zA-Z'.-]*$`)
	contactFieldWord = regexp.MustCompile(`\b(phone|email|address|linkedin)\b`)
)

// ExtractName returns the candidate person name, or "" when nothing
// plausible is found. Tagger spans are preferred; when the tagger yields
// nothing the first ten lines are scanned for a 2-4 capitalized-word line
// that is not contact info or document boilerplate.
func ExtractName(tagger Tagger, n Normalized) string {
	if tagger != nil {
		tokens := strings.Fields(n.Flat)
		if len(tokens) > nameTokenWindow {
			tokens = tokens[:nameTokenWindow]
		}
		spans := tagger.TagPersons(tokens)
		for _, span := range spans {
			if isPersonName(span) {
				return strings.TrimSpace(span)
			}
		}
		if len(spans) > 0 {
			return strings.TrimSpace(spans[0])
		}
	}
	return nameFromLines(n.Lines)
}

func nameFromLines(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || hasResumeBoilerplate(line) {
			continue
		}
		if isPersonName(line) {
			return line
		}
	}
	return ""
}

func hasResumeBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "resume") ||
		strings.Contains(lower, "cv") ||
		strings.Contains(lower, "curriculum") ||
		strings.Contains(lower, "@") ||
		contactFieldWord.MatchString(lower)
}

func isPersonName(candidate string) bool {
	words := strings.Fields(strings.TrimSpace(candidate))
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !nameWordShape.MatchString(w) {
			return false
		}
	}
	return true
}
