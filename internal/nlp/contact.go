package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+?1[-. ]?)?\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})\b`)
)

// ExtractEmail returns the first email address in text, lower-cased, or ""
// when none is present.
func ExtractEmail(text string) string {
	return strings.ToLower(emailPattern.FindString(text))
}

// ExtractPhone returns the first North-American phone number in text,
// reformatted to (AAA) EEE-EEEE regardless of the separator style matched.
func ExtractPhone(text string) string {
	m := phonePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
}

func containsContactInfo(text string) bool {
	return emailPattern.MatchString(text) || phonePattern.MatchString(text)
}
