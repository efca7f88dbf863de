package nlp

import (
	"regexp"
	"strings"
)

// ExperienceEntry is one job held: the first two lines of a block.
type ExperienceEntry struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

// ProjectEntry is a titled project with its collected description.
type ProjectEntry struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
}

// CertificationEntry pairs a certification with its issuer.
type CertificationEntry struct {
	CertificationName   string `json:"certificationName"`
	IssuingOrganization string `json:"issuingOrganization"`
}

// ParseExperience splits the experience section on blank lines. Blocks with
// at least two non-blank lines become a title/company pair; thinner blocks
// are dropped.
func ParseExperience(section string) []ExperienceEntry {
	if section == "" {
		return nil
	}
	var out []ExperienceEntry
	for _, block := range splitBlocks(section) {
		if len(block) >= 2 {
			out = append(out, ExperienceEntry{JobTitle: block[0], CompanyName: block[1]})
		}
	}
	return out
}

func splitBlocks(section string) [][]string {
	var blocks [][]string
	var cur []string
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

var (
	titleWordShape = regexp.MustCompile(`^[A-Z][a-zA-Z0-9'.&/-]*$`)
	dateRangeShape = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+)?\d{4}\s*(?:[-–—]|to|through|until)\s*(?:present|current|now|(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+)?\d{4})`)
)

// ParseProjects walks the projects section line by line. A title-shaped line
// opens a new entry, a date-range line directly under the title is skipped,
// and everything else accumulates into the description until the next title.
func ParseProjects(section string) []ProjectEntry {
	if section == "" {
		return nil
	}
	var out []ProjectEntry
	var cur *ProjectEntry
	var desc []string
	flush := func() {
		if cur != nil {
			cur.Description = strings.TrimSpace(strings.Join(desc, " "))
			out = append(out, *cur)
		}
		cur, desc = nil, nil
	}
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case isTitleLine(line):
			flush()
			cur = &ProjectEntry{ProjectName: line}
		case cur != nil && len(desc) == 0 && dateRangeShape.MatchString(line):
			// metadata line under the title, not description
		case cur != nil:
			desc = append(desc, line)
		}
	}
	flush()
	return out
}

func isTitleLine(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 6 {
		return false
	}
	for _, w := range words {
		if !titleWordShape.MatchString(w) {
			return false
		}
	}
	return true
}

// ParseCertifications pairs non-blank lines two at a time: certification
// name, then issuing organization. A trailing unpaired line is dropped.
func ParseCertifications(section string) []CertificationEntry {
	if section == "" {
		return nil
	}
	var lines []string
	for _, raw := range strings.Split(section, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	var out []CertificationEntry
	for i := 0; i+1 < len(lines); i += 2 {
		out = append(out, CertificationEntry{
			CertificationName:   lines[i],
			IssuingOrganization: lines[i+1],
		})
	}
	return out
}
