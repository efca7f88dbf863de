package nlp

import (
	"regexp"
	"strconv"
)

var yearsExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

// MaxPlausibleYears caps years-of-experience claims; anything above it is
// treated as noise.
const MaxPlausibleYears = 50

// ExtractYearsOfExperience returns the largest plausible years-of-experience
// claim in text, or 0 when none is found.
func ExtractYearsOfExperience(text string) int {
	best := 0
	for _, m := range yearsExperiencePattern.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > best && years <= MaxPlausibleYears {
			best = years
		}
	}
	return best
}
