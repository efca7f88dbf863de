package nlp

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeRejectsShortInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace_only", in: "   \n\t  \n"},
		{name: "under_minimum", in: "John Doe, engineer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(tc.in); !errors.Is(err, ErrInputTooShort) {
				t.Fatalf("expected ErrInputTooShort, got %v", err)
			}
		})
	}
}

func TestNormalizeFlatCollapsesWhitespace(t *testing.T) {
	in := "  John   Doe\n\n\tworked on\tdistributed   systems for many years in production  "
	n, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(n.Flat, "  ") || strings.Contains(n.Flat, "\n") || strings.Contains(n.Flat, "\t") {
		t.Fatalf("flat view still has whitespace runs: %q", n.Flat)
	}
	if !strings.HasPrefix(n.Flat, "John Doe") {
		t.Fatalf("flat view not trimmed: %q", n.Flat)
	}
}

func TestNormalizeCanonicalizesHeadings(t *testing.T) {
	in := "John Doe worked at Acme.\n\nSkills\nGo and SQL\n\nEducation\nState University"
	n, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, heading := range []string{"SKILLS", "EDUCATION"} {
		if !strings.Contains(n.Flat, heading) {
			t.Fatalf("flat view missing canonical heading %s: %q", heading, n.Flat)
		}
		if !strings.Contains(n.Lines, heading) {
			t.Fatalf("lines view missing canonical heading %s: %q", heading, n.Lines)
		}
	}
}

func TestNormalizeLinesKeepsBlankLineBoundaries(t *testing.T) {
	in := "John Doe has built backend services for a decade.\r\n\r\n\r\n\r\nSenior Engineer\r\nAcme Corp"
	n, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(n.Lines, "\n\n\n") {
		t.Fatalf("blank line run not collapsed: %q", n.Lines)
	}
	if !strings.Contains(n.Lines, "\n\n") {
		t.Fatalf("blank line boundary lost: %q", n.Lines)
	}
	if strings.Contains(n.Lines, "\r") {
		t.Fatalf("carriage returns survived: %q", n.Lines)
	}
}
