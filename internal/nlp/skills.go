package nlp

import (
	"regexp"
	"strings"
	"sync"
)

// SkillMatch is one categorized skill with the confidence of its sighting.
type SkillMatch struct {
	Name       string  `json:"skillName"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidenceScore"`
}

// DefaultConfidenceThreshold is the score a match must exceed to be kept.
const DefaultConfidenceThreshold = 0.5

// Confidence tiers in precedence order. The values are a behavioral contract
// pinned by tests; consumers bucket on them (>= 0.7 counts as high).
const (
	confidenceExactWord = 0.95
	confidenceVariation = 0.85
	confidenceContext   = 0.80
	confidenceBullet    = 0.75
	confidenceSubstring = 0.60
)

// A bare substring only counts near a listing keyword when it sits within
// this many characters of it.
const contextWindow = 200

var bulletPrefixes = []string{"• ", "- ", "* ", "✓ "}

var wordPatterns sync.Map // skill -> *regexp.Regexp

// MatchSkills scans text for every dictionary skill and returns the matches
// scoring above threshold, de-duplicated by canonical name with the first
// discovery winning across categories.
func MatchSkills(text string, threshold float64) []SkillMatch {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []SkillMatch
	for _, cat := range skillCategories {
		for _, skill := range cat.Skills {
			score := scoreSkill(lower, skill)
			if score <= threshold {
				continue
			}
			name := CanonicalSkillName(skill)
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, SkillMatch{Name: name, Category: cat.Name, Confidence: score})
		}
	}
	return out
}

// scoreSkill tries each tier in precedence order and returns the first that
// fires, or 0 when the skill is simply not there.
func scoreSkill(lowerText, skill string) float64 {
	if wordPattern(skill).MatchString(lowerText) {
		return confidenceExactWord
	}
	for _, variation := range skillVariations[skill] {
		if strings.Contains(lowerText, variation) {
			return confidenceVariation
		}
	}
	if idx := strings.Index(lowerText, skill); idx >= 0 {
		for _, keyword := range contextKeywords {
			kIdx := strings.Index(lowerText, keyword)
			if kIdx < 0 {
				continue
			}
			d := idx - kIdx
			if d < 0 {
				d = -d
			}
			if d < contextWindow {
				return confidenceContext
			}
		}
	}
	for _, bullet := range bulletPrefixes {
		if strings.Contains(lowerText, bullet+skill) {
			return confidenceBullet
		}
	}
	if len(skill) > 4 && strings.Contains(lowerText, skill) {
		return confidenceSubstring
	}
	return 0
}

func wordPattern(skill string) *regexp.Regexp {
	if cached, ok := wordPatterns.Load(skill); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	wordPatterns.Store(skill, re)
	return re
}

// CanonicalSkillName title-cases each word of a dictionary skill. The result
// is both the display name and the de-duplication key.
func CanonicalSkillName(skill string) string {
	words := strings.Fields(skill)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
