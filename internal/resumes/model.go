package resumes

import (
	"time"

	"nextskill-backend/internal/nlp"
)

// Status is the parsing lifecycle state of a resume.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Skills at or above this confidence count as high-confidence in stats.
const highConfidence = 0.7

// Resume is an uploaded document plus everything extracted from it. A FAILED
// parse keeps whatever fields were filled before the failure.
type Resume struct {
	ID               string
	FileName         string
	MimeType         string
	SizeBytes        int64
	Checksum         string
	StorageKey       string
	ExtractedTextKey string

	Status     Status
	ParseError string

	FullName          string
	Email             string
	PhoneNumber       string
	Summary           string
	YearsOfExperience int

	Skills         []nlp.SkillMatch
	Experiences    []nlp.ExperienceEntry
	Projects       []nlp.ProjectEntry
	Certifications []nlp.CertificationEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats summarizes the extraction result of one resume.
type Stats struct {
	ResumeID             string   `json:"resumeId"`
	TotalSkills          int      `json:"totalSkills"`
	HighConfidenceSkills int      `json:"highConfidenceSkills"`
	SkillCategories      []string `json:"skillCategories"`
	HasContactInfo       bool     `json:"hasContactInfo"`
	ParsingStatus        Status   `json:"parsingStatus"`
	ConfidenceRatio      float64  `json:"confidenceRatio"`
}

// Stats computes the summary for this resume.
func (r Resume) Stats() Stats {
	high := 0
	for _, s := range r.Skills {
		if s.Confidence >= highConfidence {
			high++
		}
	}
	ratio := 0.0
	if len(r.Skills) > 0 {
		ratio = float64(high) / float64(len(r.Skills))
	}
	return Stats{
		ResumeID:             r.ID,
		TotalSkills:          len(r.Skills),
		HighConfidenceSkills: high,
		SkillCategories:      r.Categories(),
		HasContactInfo:       r.Email != "" || r.PhoneNumber != "",
		ParsingStatus:        r.Status,
		ConfidenceRatio:      ratio,
	}
}

// Categories lists skill categories in order of first appearance.
func (r Resume) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, s := range r.Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// SkillsByCategory groups skills keeping discovery order, returning the
// ordered category list alongside the grouping.
func (r Resume) SkillsByCategory() ([]string, map[string][]nlp.SkillMatch) {
	grouped := make(map[string][]nlp.SkillMatch)
	for _, s := range r.Skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return r.Categories(), grouped
}
