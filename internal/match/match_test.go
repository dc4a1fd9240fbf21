package match

import (
	"reflect"
	"testing"

	"github.com/hireloop/resume-ranker/internal/requirements"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spec   requirements.Spec
		resume string
		want   Result
	}{
		{
			name:   "all must haves matched, nice to haves missed",
			spec:   requirements.Spec{MustHave: []string{"Golang", "Kubernetes"}, NiceToHave: []string{"GCP", "Terraform"}},
			resume: "Built services in Golang on Kubernetes clusters.",
			want: Result{
				Score:   7.5,
				Matched: []string{"Golang", "Kubernetes"},
				Missing: []string{"GCP", "Terraform"},
			},
		},
		{
			name:   "must have weighs three to one",
			spec:   requirements.Spec{MustHave: []string{"Golang"}, NiceToHave: []string{"Microservices"}},
			resume: "Seasoned Golang engineer.",
			want: Result{
				Score:   7.5,
				Matched: []string{"Golang"},
				Missing: []string{"Microservices"},
			},
		},
		{
			name:   "perfect match",
			spec:   requirements.Spec{MustHave: []string{"SQL"}, NiceToHave: []string{"Excel"}},
			resume: "Reporting with SQL and Excel.",
			want: Result{
				Score:   10,
				Matched: []string{"SQL", "Excel"},
				Missing: []string{},
			},
		},
		{
			name:   "nothing matched",
			spec:   requirements.Spec{MustHave: []string{"Rust"}, NiceToHave: []string{}},
			resume: "Python developer.",
			want: Result{
				Score:   0,
				Matched: []string{},
				Missing: []string{"Rust"},
			},
		},
		{
			name:   "empty spec scores zero",
			spec:   requirements.Spec{MustHave: []string{}, NiceToHave: []string{}},
			resume: "Anything at all.",
			want: Result{
				Score:   0,
				Matched: []string{},
				Missing: []string{},
			},
		},
		{
			name:   "case insensitive",
			spec:   requirements.Spec{MustHave: []string{"golang"}},
			resume: "GOLANG expert",
			want: Result{
				Score:   10,
				Matched: []string{"golang"},
				Missing: []string{},
			},
		},
		{
			name:   "skill counts inside a longer word",
			spec:   requirements.Spec{MustHave: []string{"Java"}},
			resume: "JavaScript developer",
			want: Result{
				Score:   10,
				Matched: []string{"Java"},
				Missing: []string{},
			},
		},
		{
			name:   "invalid pattern falls back to substring",
			spec:   requirements.Spec{MustHave: []string{"C++"}},
			resume: "Systems programming in C++ since 2015.",
			want: Result{
				Score:   10,
				Matched: []string{"C++"},
				Missing: []string{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Evaluate(tt.spec, tt.resume); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Evaluate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateRounding(t *testing.T) {
	t.Parallel()

	// 3 of 3+3+1 points = 4.285..., rounded to one decimal.
	spec := requirements.Spec{MustHave: []string{"Go", "Rust"}, NiceToHave: []string{"Zig"}}
	got := Evaluate(spec, "Go developer")
	if got.Score != 4.3 {
		t.Fatalf("Score = %v, want 4.3", got.Score)
	}
}
