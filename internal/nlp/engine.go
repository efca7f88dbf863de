// Package nlp extracts structured resume data from plain text: identity
// fields, a summary, confidence-scored skills and section entries. Everything
// is pure and synchronous; the only hard failure is ErrInputTooShort.
package nlp

// Options configures which extractors run and how strict skill matching is.
type Options struct {
	ConfidenceThreshold float64
	SkillDetection      bool
	NameExtraction      bool
	ContactExtraction   bool
}

// DefaultOptions enables every extractor at the default threshold.
func DefaultOptions() Options {
	return Options{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		SkillDetection:      true,
		NameExtraction:      true,
		ContactExtraction:   true,
	}
}

// Parsed is the structured record produced from one document. Fields that
// could not be extracted stay zero-valued.
type Parsed struct {
	FullName          string               `json:"fullName"`
	Email             string               `json:"email"`
	PhoneNumber       string               `json:"phoneNumber"`
	Summary           string               `json:"summary"`
	YearsOfExperience int                  `json:"yearsOfExperience"`
	Skills            []SkillMatch         `json:"skills"`
	Experiences       []ExperienceEntry    `json:"experiences"`
	Projects          []ProjectEntry       `json:"projects"`
	Certifications    []CertificationEntry `json:"certifications"`
}

// Engine runs the extraction pipeline. It holds only read-only reference
// data, so one Engine is safe for concurrent use.
type Engine struct {
	tagger Tagger
	opts   Options
}

func NewEngine(tagger Tagger, opts Options) *Engine {
	if tagger == nil {
		tagger = HeuristicTagger{}
	}
	if opts.ConfidenceThreshold <= 0 {
		opts.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	return &Engine{tagger: tagger, opts: opts}
}

// Mode reports which name tagger is active, for health reporting.
func (e *Engine) Mode() string { return e.tagger.Mode() }

// Parse normalizes text and runs every enabled extractor. Extractors that
// find nothing leave their field zero-valued; they never abort the run.
func (e *Engine) Parse(text string) (Parsed, error) {
	n, err := Normalize(text)
	if err != nil {
		return Parsed{}, err
	}

	var p Parsed
	if e.opts.ContactExtraction {
		p.Email = ExtractEmail(n.Flat)
		p.PhoneNumber = ExtractPhone(n.Flat)
	}
	if e.opts.NameExtraction {
		p.FullName = ExtractName(e.tagger, n)
	}
	p.Summary = ExtractSummary(n)
	p.YearsOfExperience = ExtractYearsOfExperience(n.Flat)
	if e.opts.SkillDetection {
		p.Skills = MatchSkills(n.Flat, e.opts.ConfidenceThreshold)
	}
	p.Experiences = ParseExperience(Section(n.Lines, "EXPERIENCE", endAfterExperience))
	p.Projects = ParseProjects(Section(n.Lines, "PROJECTS", endAfterProjects))
	p.Certifications = ParseCertifications(Section(n.Lines, "CERTIFICATIONS", endAfterCertifications))
	return p, nil
}
