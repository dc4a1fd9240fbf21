package screener

import (
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/hireloop/resume-ranker/internal/candidate"
	"github.com/hireloop/resume-ranker/internal/lexicon"
)

const sampleResume = "Hari Babu Kariprolu\nHyderabad\nSenior Customer Success Manager at Salesforce | Jan 2020 - Present\nSkills: CRM, Excel"

func newTestScreener(t *testing.T) *Screener {
	t.Helper()
	return New(lexicon.Default(), zaptest.NewLogger(t))
}

func TestParseResumeText(t *testing.T) {
	t.Parallel()

	got := newTestScreener(t).ParseResumeText(sampleResume)

	want := candidate.ParsedResume{
		Name:           "Hari Babu Kariprolu",
		Location:       "Hyderabad",
		CurrentRole:    "Senior Customer Success Manager",
		CurrentCompany: "Salesforce",
		Experiences: []candidate.ExperienceEntry{{
			Role:    "Senior Customer Success Manager",
			Company: "Salesforce",
			Period:  "Jan 2020 - Present",
		}},
		Skills: []string{"Customer Success", "CRM", "Salesforce", "Excel"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseResumeText() = %+v, want %+v", got, want)
	}
}

func TestParseResumeTextEmptyInput(t *testing.T) {
	t.Parallel()

	got := newTestScreener(t).ParseResumeText("")

	if got.Name != candidate.UnknownName {
		t.Fatalf("Name = %q, want sentinel", got.Name)
	}
	if got.Location != candidate.UnknownLocation {
		t.Fatalf("Location = %q, want sentinel", got.Location)
	}
	if len(got.Experiences) != 1 || got.Experiences[0].Role != candidate.RoleNotSpecified {
		t.Fatalf("Experiences = %+v, want single placeholder", got.Experiences)
	}
}

func TestBuildCandidate(t *testing.T) {
	t.Parallel()

	c := newTestScreener(t).BuildCandidate(sampleResume, "fixed-id")

	if c.ID != "fixed-id" {
		t.Fatalf("ID = %q, want fixed-id", c.ID)
	}
	// 5.0 base + 0.5 one experience + 0.3 one CS skill + 0.7 leadership title.
	if c.Score != 6.5 {
		t.Fatalf("Score = %v, want 6.5", c.Score)
	}
	if c.Recommendation != candidate.Hold {
		t.Fatalf("Recommendation = %q, want hold", c.Recommendation)
	}
	if len(c.Strengths) < 3 {
		t.Fatalf("Strengths = %v, want at least 3", c.Strengths)
	}
	if len(c.Weaknesses) == 0 {
		t.Fatalf("Weaknesses must never be empty")
	}
}

func TestScreenAgainstRequirements(t *testing.T) {
	t.Parallel()

	requirementText := "Must have: Golang, Kubernetes\nNice to have: GCP, Terraform"
	resumes := []string{
		"Ravi Kumar\nBuilt services in Golang on Kubernetes clusters.",
		"Anita Desai\nPython developer.",
	}

	got := newTestScreener(t).ScreenAgainstRequirements(requirementText, resumes)

	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}

	first := got.Items[0]
	if first.ID != "1" || first.Name != "Ravi Kumar" {
		t.Fatalf("first candidate = %q/%q, want 1/Ravi Kumar", first.ID, first.Name)
	}
	if first.Score != 7.5 {
		t.Fatalf("first Score = %v, want 7.5", first.Score)
	}
	if want := []string{"Golang", "Kubernetes"}; !reflect.DeepEqual(first.Strengths, want) {
		t.Fatalf("first Strengths = %v, want %v", first.Strengths, want)
	}
	if want := []string{"GCP", "Terraform"}; !reflect.DeepEqual(first.Weaknesses, want) {
		t.Fatalf("first Weaknesses = %v, want %v", first.Weaknesses, want)
	}
	if first.Recommendation != candidate.Approve {
		t.Fatalf("first Recommendation = %q, want approve", first.Recommendation)
	}

	second := got.Items[1]
	if second.ID != "2" || second.Score != 0 {
		t.Fatalf("second candidate = %q score %v, want 2 / 0", second.ID, second.Score)
	}
	if want := []string{"No skills matched"}; !reflect.DeepEqual(second.Strengths, want) {
		t.Fatalf("second Strengths = %v, want %v", second.Strengths, want)
	}
}

func TestScreenAgainstRequirementsFullMatch(t *testing.T) {
	t.Parallel()

	got := newTestScreener(t).ScreenAgainstRequirements(
		"Must have: Golang",
		[]string{"Ravi Kumar\nGolang services."},
	)

	c := got.Items[0]
	if c.Score != 10 {
		t.Fatalf("Score = %v, want 10", c.Score)
	}
	if want := []string{"None"}; !reflect.DeepEqual(c.Weaknesses, want) {
		t.Fatalf("Weaknesses = %v, want %v", c.Weaknesses, want)
	}
}

func TestScreenResumesKeepsInputOrder(t *testing.T) {
	t.Parallel()

	got := newTestScreener(t).ScreenResumes([]string{sampleResume, ""})

	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	if got.Items[0].Name != "Hari Babu Kariprolu" || got.Items[1].Name != candidate.UnknownName {
		t.Fatalf("unexpected order: %q, %q", got.Items[0].Name, got.Items[1].Name)
	}
	if got.Items[0].ID == got.Items[1].ID {
		t.Fatalf("IDs must be unique, both %q", got.Items[0].ID)
	}
}

func TestScreeningIsDeterministic(t *testing.T) {
	t.Parallel()

	s := newTestScreener(t)
	first := s.ParseResumeText(sampleResume)
	for i := 0; i < 5; i++ {
		if again := s.ParseResumeText(sampleResume); !reflect.DeepEqual(again, first) {
			t.Fatalf("parse varied across runs: %+v vs %+v", again, first)
		}
	}
}
