package candidate

import (
	"testing"

	"github.com/hireloop/resume-ranker/internal/lexicon"
)

func exp(role, company string) ExperienceEntry {
	return ExperienceEntry{Role: role, Company: company}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data ParsedResume
		want float64
	}{
		{
			name: "empty parse gets the base score",
			data: ParsedResume{},
			want: 5.0,
		},
		{
			name: "experience bonus caps at four entries",
			data: ParsedResume{Experiences: []ExperienceEntry{
				exp("a", "x"), exp("b", "x"), exp("c", "x"),
				exp("d", "x"), exp("e", "x"),
			}},
			want: 7.0,
		},
		{
			name: "cs skills bonus",
			data: ParsedResume{Skills: []string{"Customer Success", "Account Management"}},
			want: 5.6,
		},
		{
			name: "cs skills bonus caps at five",
			data: ParsedResume{Skills: []string{
				"Customer Success", "Account Management", "Client Relations",
				"Customer Retention", "Success Planning", "Client Onboarding",
			}},
			want: 6.5,
		},
		{
			name: "tech and leadership bonuses",
			data: ParsedResume{Experiences: []ExperienceEntry{
				exp("Senior Manager", "Acme SaaS"),
			}},
			want: 7.0,
		},
		{
			name: "everything maxed clamps at ten",
			data: ParsedResume{
				Experiences: []ExperienceEntry{
					exp("Senior Manager", "Enterprise SaaS Corp"),
					exp("Lead", "x"), exp("c", "x"), exp("d", "x"), exp("e", "x"),
				},
				Skills: []string{
					"Customer Success", "Account Management", "Client Relations",
					"Customer Retention", "Success Planning",
				},
			},
			want: 10.0,
		},
	}

	a := NewAssembler(lexicon.Default())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := a.Score(tt.data); got != tt.want {
				t.Fatalf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrengthsNeverFewerThanThree(t *testing.T) {
	t.Parallel()

	a := NewAssembler(lexicon.Default())

	// A parse with no signal at all pads with all three generics.
	got := a.Strengths(ParsedResume{})
	if len(got) < 3 {
		t.Fatalf("Strengths() = %v, want at least 3 entries", got)
	}

	// One specific strength still pads up to three.
	got = a.Strengths(ParsedResume{Skills: []string{"Customer Success"}})
	if len(got) != 3 {
		t.Fatalf("Strengths() = %v, want exactly 3 entries", got)
	}
	if got[0] != "Strong Customer Success background" {
		t.Fatalf("Strengths()[0] = %q, want the specific entry first", got[0])
	}
}

func TestStrengthsCapAtFive(t *testing.T) {
	t.Parallel()

	a := NewAssembler(lexicon.Default())
	data := ParsedResume{
		Experiences: []ExperienceEntry{
			exp("Senior Lead", "Salesforce"),
			exp("Manager", "Google"),
			exp("Analyst", "Amazon"),
		},
		Skills: []string{"Customer Success"},
	}
	if got := a.Strengths(data); len(got) > 5 {
		t.Fatalf("Strengths() = %v, want at most 5 entries", got)
	}
}

func TestWeaknessesNeverEmpty(t *testing.T) {
	t.Parallel()

	a := NewAssembler(lexicon.Default())

	// A resume strong on every axis still gets the fallback weakness.
	data := ParsedResume{
		Experiences: []ExperienceEntry{
			exp("Customer Success Manager", "Salesforce"),
			exp("Account Manager", "Google"),
		},
	}
	got := a.Weaknesses(data)
	if len(got) != 1 || got[0] != "May need additional training in specific tools" {
		t.Fatalf("Weaknesses() = %v, want the fallback entry", got)
	}

	if got := a.Weaknesses(ParsedResume{}); len(got) == 0 {
		t.Fatalf("Weaknesses() must never be empty")
	}
}

func TestRecommendationForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Recommendation
	}{
		{10, Approve},
		{8.0, Approve},
		{7.9, Hold},
		{6.5, Hold},
		{6.4, Reject},
		{1, Reject},
	}

	for _, tt := range tests {
		tt := tt
		if got := RecommendationForScore(tt.score); got != tt.want {
			t.Fatalf("RecommendationForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBuildAssignsIDWhenEmpty(t *testing.T) {
	t.Parallel()

	a := NewAssembler(lexicon.Default())
	c := a.Build(ParsedResume{Name: "Ravi"}, "")
	if c.ID == "" {
		t.Fatalf("Build must assign an ID")
	}
	if c2 := a.Build(ParsedResume{Name: "Ravi"}, "given"); c2.ID != "given" {
		t.Fatalf("Build overrode the given ID: %q", c2.ID)
	}
}
