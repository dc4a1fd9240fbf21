package requirements

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want Spec
	}{
		{
			name: "both lines present",
			text: "Senior role.\nMust have: Golang, Kubernetes\nNice to have: GCP\n",
			want: Spec{MustHave: []string{"Golang", "Kubernetes"}, NiceToHave: []string{"GCP"}},
		},
		{
			name: "case insensitive labels",
			text: "MUST HAVE: sql\nnice to have: excel",
			want: Spec{MustHave: []string{"sql"}, NiceToHave: []string{"excel"}},
		},
		{
			name: "whitespace and empty items",
			text: "Must have:  Golang ,  , Kubernetes ,\n",
			want: Spec{MustHave: []string{"Golang", "Kubernetes"}, NiceToHave: []string{}},
		},
		{
			name: "duplicates are kept",
			text: "Must have: SQL, SQL\n",
			want: Spec{MustHave: []string{"SQL", "SQL"}, NiceToHave: []string{}},
		},
		{
			name: "missing lines",
			text: "We need a great engineer.",
			want: Spec{MustHave: []string{}, NiceToHave: []string{}},
		},
		{
			name: "empty input",
			text: "",
			want: Spec{MustHave: []string{}, NiceToHave: []string{}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSpecIsEmpty(t *testing.T) {
	t.Parallel()

	if !Parse("no labels here").IsEmpty() {
		t.Fatalf("expected empty spec for unlabeled text")
	}
	if Parse("Must have: Go").IsEmpty() {
		t.Fatalf("expected non-empty spec")
	}
}
