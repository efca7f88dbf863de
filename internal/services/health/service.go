package health

import "time"

// Service encapsulates health-related checks.
type Service struct {
	version       string
	extractorMode func() string
}

// NewService constructs a new health service. extractorMode reports which
// name-tagging backend the parsing engine is running with.
func NewService(version string, extractorMode func() string) *Service {
	return &Service{version: version, extractorMode: extractorMode}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	mode := ""
	if s.extractorMode != nil {
		mode = s.extractorMode()
	}
	return map[string]any{
		"ok":            true,
		"service":       "resume-parser",
		"version":       s.version,
		"extractorMode": mode,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	}
}
