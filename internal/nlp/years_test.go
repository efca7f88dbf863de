package nlp

import "testing"

func TestExtractYearsOfExperience(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{name: "plain", in: "over 8 years of experience building services", want: 8},
		{name: "plus_suffix", in: "10+ years experience", want: 10},
		{name: "abbreviated", in: "7 yrs exp in fintech", want: 7},
		{name: "max_wins", in: "3 years of experience in Go, 12 years of experience overall", want: 12},
		{name: "implausible_ignored", in: "120 years of experience", want: 0},
		{name: "absent", in: "worked for a long time", want: 0},
		{name: "bare_years_no_experience", in: "graduated 4 years ago", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractYearsOfExperience(tc.in); got != tc.want {
				t.Fatalf("ExtractYearsOfExperience(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
