package nlp

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Doe
john.doe@example.com
+1-555-123-4567

Summary
Backend engineer focused on reliable payment systems with 8 years of experience.

Skills
Java, Python, Spring Boot, Docker

Experience
Senior Engineer
Acme Corp

Backend Developer
Beta Inc

Projects
Inventory System
built a warehouse tracker with barcode scanning

Certifications
AWS Certified Solutions Architect
Amazon Web Services`

func TestEngineParseFullRecord(t *testing.T) {
	engine := NewEngine(HeuristicTagger{}, DefaultOptions())
	p, err := engine.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.FullName != "John Doe" {
		t.Fatalf("FullName = %q", p.FullName)
	}
	if p.Email != "john.doe@example.com" {
		t.Fatalf("Email = %q", p.Email)
	}
	if p.PhoneNumber != "(555) 123-4567" {
		t.Fatalf("PhoneNumber = %q", p.PhoneNumber)
	}
	if p.YearsOfExperience != 8 {
		t.Fatalf("YearsOfExperience = %d", p.YearsOfExperience)
	}
	if !strings.Contains(p.Summary, "Backend engineer") {
		t.Fatalf("Summary = %q", p.Summary)
	}

	for _, want := range []string{"Java", "Python", "Spring Boot", "Docker"} {
		found := false
		for _, s := range p.Skills {
			if s.Name == want {
				found = true
				if s.Confidence < 0.85 {
					t.Fatalf("skill %s confidence %v, want >= 0.85", want, s.Confidence)
				}
			}
		}
		if !found {
			t.Fatalf("skill %s not extracted; got %+v", want, p.Skills)
		}
	}

	if len(p.Experiences) != 2 || p.Experiences[0].JobTitle != "Senior Engineer" || p.Experiences[0].CompanyName != "Acme Corp" {
		t.Fatalf("Experiences = %+v", p.Experiences)
	}
	if len(p.Projects) != 1 || p.Projects[0].ProjectName != "Inventory System" {
		t.Fatalf("Projects = %+v", p.Projects)
	}
	if len(p.Certifications) != 1 || p.Certifications[0].IssuingOrganization != "Amazon Web Services" {
		t.Fatalf("Certifications = %+v", p.Certifications)
	}
}

func TestEngineParseIdempotent(t *testing.T) {
	engine := NewEngine(HeuristicTagger{}, DefaultOptions())
	first, err := engine.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse is not idempotent")
	}
}

func TestEngineParseShortInput(t *testing.T) {
	engine := NewEngine(nil, DefaultOptions())
	if _, err := engine.Parse("too short"); !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("expected ErrInputTooShort, got %v", err)
	}
}

func TestEngineParsePartialRecord(t *testing.T) {
	engine := NewEngine(HeuristicTagger{}, DefaultOptions())
	p, err := engine.Parse("an unstructured wall of text about building backend services, with no contact details anywhere")
	if err != nil {
		t.Fatalf("soft absences must not fail the parse: %v", err)
	}
	if p.Email != "" || p.PhoneNumber != "" || p.FullName != "" {
		t.Fatalf("expected empty identity fields, got %+v", p)
	}
	if len(p.Experiences) != 0 || len(p.Certifications) != 0 {
		t.Fatalf("expected no entries, got %+v", p)
	}
}

func TestEngineOptionsDisableExtractors(t *testing.T) {
	opts := DefaultOptions()
	opts.SkillDetection = false
	opts.NameExtraction = false
	opts.ContactExtraction = false
	engine := NewEngine(HeuristicTagger{}, opts)

	p, err := engine.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FullName != "" || p.Email != "" || p.PhoneNumber != "" {
		t.Fatalf("disabled extractors still produced identity fields: %+v", p)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("disabled skill detection still produced %d skills", len(p.Skills))
	}
	if len(p.Experiences) == 0 {
		t.Fatalf("entry parsers should still run")
	}
}

func TestEngineConfidenceThresholdOverride(t *testing.T) {
	strict := NewEngine(HeuristicTagger{}, Options{ConfidenceThreshold: 0.9, SkillDetection: true})
	p, err := strict.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range p.Skills {
		if s.Confidence < 0.9 {
			t.Fatalf("threshold 0.9 kept %+v", s)
		}
	}
}
