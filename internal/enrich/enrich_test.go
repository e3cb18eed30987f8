package enrich

import (
	"reflect"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"software developer", "Software Developer", "Build APIs", "tech"},
		{"accountant", "Accountant", "Prepare financial statements", "finance"},
		{"teacher", "Secondary School Teacher", "Teach Mathematics", "education"},
		{"nurse", "Nurse", "Provide patient care", "healthcare"},
		{"driver", "Truck Driver", "Long haul routes", "logistics"},
		{"no keyword match", "Florist", "Arrange flowers", "other"},
		{"empty input", "", "", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.title, tt.description); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	first := Categorize("Software Developer", "Build APIs")
	for i := 0; i < 100; i++ {
		if got := Categorize("Software Developer", "Build APIs"); got != first {
			t.Fatalf("categorization changed between calls: %q then %q", first, got)
		}
	}
}

func TestCategorize_EarlierCategoriesWin(t *testing.T) {
	// "software" (tech) and "manager" (management) both match; tech is
	// earlier in the table.
	if got := Categorize("Software Engineering Manager", ""); got != "tech" {
		t.Errorf("expected tech to win on ambiguous text, got %q", got)
	}
}

func TestTagSkills(t *testing.T) {
	got := TagSkills("Python and Java developer with strong SQL and Excel knowledge")
	want := []string{"Python", "Java", "Sql", "Excel"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagSkills = %v, want %v", got, want)
	}
}

func TestTagSkills_CapsAtFive(t *testing.T) {
	got := TagSkills("python java javascript php sql mysql excel powerpoint")
	if len(got) != 5 {
		t.Fatalf("expected 5 skills, got %d: %v", len(got), got)
	}
	// Vocabulary order, not text order.
	want := []string{"Python", "Java", "Javascript", "Php", "Sql"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagSkills = %v, want %v", got, want)
	}
}

func TestTagSkills_NoMatches(t *testing.T) {
	if got := TagSkills("no recognizable abilities here"); len(got) != 0 {
		t.Errorf("expected no skills, got %v", got)
	}
}
