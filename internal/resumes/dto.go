package resumes

import (
	"time"

	"nextskill-backend/internal/nlp"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID      string      `json:"resumeId"`
	FileName      string      `json:"fileName"`
	MimeType      string      `json:"mimeType"`
	SizeBytes     int64       `json:"sizeBytes"`
	ParsingStatus Status      `json:"parsingStatus"`
	ParsingError  string      `json:"parsingError,omitempty"`
	UploadedAt    time.Time   `json:"uploadedAt"`
	ParsedData    *ParsedData `json:"parsedData,omitempty"`
}

// ParsedData is the extracted record section of a resume response.
type ParsedData struct {
	FullName          string                     `json:"fullName"`
	Email             string                     `json:"email"`
	PhoneNumber       string                     `json:"phoneNumber"`
	Summary           string                     `json:"summary"`
	YearsOfExperience int                        `json:"yearsOfExperience"`
	TotalSkills       int                        `json:"totalSkills"`
	SkillCounts       map[string]int             `json:"skillCounts"`
	Skills            []nlp.SkillMatch           `json:"skills"`
	Experiences       []nlp.ExperienceEntry      `json:"experiences"`
	Projects          []nlp.ProjectEntry         `json:"projects"`
	Certifications    []nlp.CertificationEntry   `json:"certifications"`
}

// ResumeListItem is the compact list representation.
type ResumeListItem struct {
	ResumeID      string    `json:"resumeId"`
	FileName      string    `json:"fileName"`
	FullName      string    `json:"fullName,omitempty"`
	Email         string    `json:"email,omitempty"`
	ParsingStatus Status    `json:"parsingStatus"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

func toResponse(res Resume) ResumeResponse {
	out := ResumeResponse{
		ResumeID:      res.ID,
		FileName:      res.FileName,
		MimeType:      res.MimeType,
		SizeBytes:     res.SizeBytes,
		ParsingStatus: res.Status,
		ParsingError:  res.ParseError,
		UploadedAt:    res.CreatedAt,
	}
	if res.Status == StatusCompleted {
		out.ParsedData = toParsedData(res)
	}
	return out
}

func toParsedData(res Resume) *ParsedData {
	counts := make(map[string]int)
	for _, s := range res.Skills {
		counts[s.Category]++
	}
	return &ParsedData{
		FullName:          res.FullName,
		Email:             res.Email,
		PhoneNumber:       res.PhoneNumber,
		Summary:           res.Summary,
		YearsOfExperience: res.YearsOfExperience,
		TotalSkills:       len(res.Skills),
		SkillCounts:       counts,
		Skills:            res.Skills,
		Experiences:       res.Experiences,
		Projects:          res.Projects,
		Certifications:    res.Certifications,
	}
}

func toListItem(res Resume) ResumeListItem {
	return ResumeListItem{
		ResumeID:      res.ID,
		FileName:      res.FileName,
		FullName:      res.FullName,
		Email:         res.Email,
		ParsingStatus: res.Status,
		UploadedAt:    res.CreatedAt,
	}
}
