package nlp

import (
	"regexp"
	"strings"
	"sync"
)

// End-heading alternations for the section segmenter. A section runs until
// any other known heading or end of text.
const (
	endAfterSummary        = "EXPERIENCE|EDUCATION|SKILLS|PROJECTS|CERTIFICATIONS"
	endAfterExperience     = "SUMMARY|EDUCATION|SKILLS|PROJECTS|CERTIFICATIONS"
	endAfterProjects       = "SUMMARY|EXPERIENCE|EDUCATION|SKILLS|CERTIFICATIONS"
	endAfterCertifications = "SUMMARY|EXPERIENCE|EDUCATION|SKILLS|PROJECTS"
)

var sectionPatterns sync.Map // "start|ends" -> *regexp.Regexp

// Section returns the trimmed text between the first line opening with the
// start heading and the first later line opening with a heading from the end
// alternation, or the end of text. Headings are matched case-insensitively
// and only at line starts, so a heading word inside a sentence ("8 years of
// experience") never opens or closes a section. A missing start heading
// yields "".
func Section(text, start, endAlternation string) string {
	key := start + "|" + endAlternation
	var re *regexp.Regexp
	if cached, ok := sectionPatterns.Load(key); ok {
		re = cached.(*regexp.Regexp)
	} else {
		re = regexp.MustCompile(`(?ims)^` + regexp.QuoteMeta(start) + `\b[^\n]*\n?(.*?)(?:^(?:` + endAlternation + `)\b|\z)`)
		sectionPatterns.Store(key, re)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

const (
	summaryMaxLen       = 300
	paragraphSummaryMin = 100
	paragraphSummaryMax = 500
)

// ExtractSummary returns the SUMMARY section clamped to 300 characters. When
// no heading is present it falls back to the first standalone paragraph of
// 100-500 characters that carries neither contact info nor boilerplate.
func ExtractSummary(n Normalized) string {
	if s := Section(n.Lines, "SUMMARY", endAfterSummary); s != "" {
		r := []rune(s)
		if len(r) > summaryMaxLen {
			s = strings.TrimSpace(string(r[:summaryMaxLen]))
		}
		return s
	}
	for _, para := range strings.Split(n.Lines, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) <= paragraphSummaryMin || len(para) >= paragraphSummaryMax {
			continue
		}
		if containsContactInfo(para) || hasResumeBoilerplate(para) {
			continue
		}
		return para
	}
	return ""
}
