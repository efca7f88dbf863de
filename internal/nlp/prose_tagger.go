package nlp

import (
	"fmt"
	"os"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags person-name spans with the prose NER model.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger builds the model-backed tagger. An empty modelDir uses the
// library's built-in English model; otherwise the trained model is loaded
// from disk and a missing directory is an error.
func NewProseTagger(modelDir string) (*ProseTagger, error) {
	modelDir = strings.TrimSpace(modelDir)
	if modelDir == "" {
		return &ProseTagger{}, nil
	}
	if _, err := os.Stat(modelDir); err != nil {
		return nil, fmt.Errorf("load nlp model from %s: %w", modelDir, err)
	}
	return &ProseTagger{model: prose.ModelFromDisk(modelDir)}, nil
}

func (t *ProseTagger) Mode() string { return "model" }

// TagPersons runs NER over the token window and returns PERSON spans in
// document order. Tagging failures degrade to no spans rather than an error,
// letting the caller fall back to line scanning.
func (t *ProseTagger) TagPersons(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	opts := []prose.DocOpt{prose.WithSegmentation(false)}
	if t.model != nil {
		opts = append(opts, prose.UsingModel(t.model))
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "), opts...)
	if err != nil {
		return nil
	}
	var spans []string
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			spans = append(spans, ent.Text)
		}
	}
	return spans
}
