package textutil

import (
	"strings"
	"testing"
)

func TestNormalizeRemovesArtifacts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "reader artifact",
			input:  "Document Reader\nJohn Smith",
			expect: "John Smith",
		},
		{
			name:   "case insensitive",
			input:  "MICROSOFT WORD John Smith",
			expect: "John Smith",
		},
		{
			name:   "page numbers",
			input:  "John Smith\nPage 2\nSenior Analyst",
			expect: "John Smith\n\nSenior Analyst",
		},
		{
			name:   "tabs and form feeds",
			input:  "John\tSmith\fSenior Analyst",
			expect: "John Smith\nSenior Analyst",
		},
		{
			name:   "space runs",
			input:  "John    Smith   ",
			expect: "John Smith",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Document Reader\fJohn  Smith\t\tPage 3",
		"plain text without artifacts",
		"",
		"  \n\n\n  spaced  \n\n\n\n out \n",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeWithCustomArtifacts(t *testing.T) {
	t.Parallel()

	got := NormalizeWith("Generated by ResumeBot\nJane Doe", []string{"Generated by ResumeBot"})
	if got != "Jane Doe" {
		t.Fatalf("expected custom artifact removed, got %q", got)
	}

	// Empty list falls back to the defaults.
	got = NormalizeWith("Document Reader Jane Doe", nil)
	if got != "Jane Doe" {
		t.Fatalf("expected default artifacts applied, got %q", got)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	got := Flatten("a\nb\t c \n\n d")
	if got != "a b c d" {
		t.Fatalf("unexpected flatten result: %q", got)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	lines := Lines("  first \n\n second\n   \nthird  ")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "first" || lines[1] != "second" || lines[2] != "third" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeKeepsLineStructure(t *testing.T) {
	t.Parallel()

	input := "Hari Babu Kariprolu\nEmail: x@example.com\nProfessional Summary"
	got := Normalize(input)
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected newlines preserved, got %q", got)
	}
	if len(Lines(got)) != 3 {
		t.Fatalf("expected 3 lines, got %v", Lines(got))
	}
}
