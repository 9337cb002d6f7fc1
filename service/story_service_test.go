package service

import (
	"strings"
	"testing"

	"futureself/domain"
)

func TestGenerateStory_DisabledFallsBack(t *testing.T) {
	service := NewStoryService("")
	inputs, results := sampleProjection()

	story, aiGenerated := service.GenerateStory(*inputs, *results)

	if aiGenerated {
		t.Error("expected fallback story to be marked as not AI-generated")
	}
	if story == "" {
		t.Fatal("expected a fallback story")
	}
	if !strings.Contains(story, "297755") {
		t.Errorf("expected fallback story to cite the future value, got %q", story)
	}
}

func TestGenerateStory_FallbackIsDeterministic(t *testing.T) {
	service := NewStoryService("")
	inputs, results := sampleProjection()

	first, _ := service.GenerateStory(*inputs, *results)
	second, _ := service.GenerateStory(*inputs, *results)

	if first != second {
		t.Error("expected identical fallback stories for identical projections")
	}
}

func TestGenerateSuggestions_DisabledFallsBack(t *testing.T) {
	service := NewStoryService("")
	inputs, results := sampleProjection()

	suggestions, aiGenerated := service.GenerateSuggestions(*inputs, *results)

	if aiGenerated {
		t.Error("expected fallback suggestions to be marked as not AI-generated")
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 fallback suggestions, got %d", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Category == "" || s.Suggestion == "" || s.Description == "" {
			t.Errorf("incomplete suggestion: %+v", s)
		}
	}
}

func TestParseSuggestions(t *testing.T) {
	payload := `[{"category":"Health","suggestion":"Sleep more","description":"Aim for 8 hours."}]`

	cases := []struct {
		name string
		raw  string
	}{
		{"bare json", payload},
		{"fenced json", "```json\n" + payload + "\n```"},
		{"fenced without language", "```\n" + payload + "\n```"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			suggestions, err := parseSuggestions(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := domain.Suggestion{
				Category:    "Health",
				Suggestion:  "Sleep more",
				Description: "Aim for 8 hours.",
			}
			if len(suggestions) != 1 || suggestions[0] != want {
				t.Errorf("unexpected suggestions: %+v", suggestions)
			}
		})
	}
}

func TestParseSuggestions_RejectsGarbage(t *testing.T) {
	if _, err := parseSuggestions("here are some tips: sleep more"); err == nil {
		t.Error("expected error for non-JSON payload")
	}
	if _, err := parseSuggestions("[]"); err == nil {
		t.Error("expected error for empty list")
	}
}
