package synth

import (
	"strings"
	"testing"
)

func TestGenerate_ExactCount(t *testing.T) {
	g := NewGenerator()
	for _, count := range []int{0, 1, 30, 100} {
		postings := g.Generate(count)
		if len(postings) != count {
			t.Errorf("Generate(%d) returned %d postings", count, len(postings))
		}
	}
}

func TestGenerate_CyclesCatalog(t *testing.T) {
	g := NewGenerator()
	postings := g.Generate(30)

	if postings[0].Title != postings[len(catalog)].Title {
		t.Errorf("expected catalog to cycle: %q vs %q",
			postings[0].Title, postings[len(catalog)].Title)
	}
	if postings[0].ID == postings[len(catalog)].ID {
		t.Error("cycled postings should still get distinct ids")
	}
}

func TestGenerate_PostingShape(t *testing.T) {
	g := NewGenerator()
	for _, p := range g.Generate(12) {
		if p.Source != SourceName {
			t.Errorf("source = %q, want %q", p.Source, SourceName)
		}
		if p.Salary == nil || *p.Salary <= 0 {
			t.Errorf("posting %q missing salary", p.Title)
		}
		if p.ApplyURL == "" {
			t.Errorf("posting %q missing apply url", p.Title)
		}
		if p.Category == "" || len(p.Skills) == 0 {
			t.Errorf("posting %q missing enrichment fields", p.Title)
		}
	}
}

func TestSalaryFor_KeywordRanges(t *testing.T) {
	tests := []struct {
		title    string
		min, max int
	}{
		{"Software Developer", 80000, 200000}, // "software" wins over "developer"
		{"Junior Developer", 70000, 180000},
		{"Marketing Manager", 90000, 250000}, // "manager" is checked before "marketing"
		{"Receptionist", 30000, 80000},       // default range
	}

	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			got := SalaryFor(tt.title)
			if got < tt.min || got > tt.max {
				t.Fatalf("SalaryFor(%q) = %d outside [%d, %d]", tt.title, got, tt.min, tt.max)
			}
		}
	}
}

func TestApplyURL_PassesThroughScrapedURL(t *testing.T) {
	url := "https://example.com/job/123"
	if got := ApplyURL(url, "Any", "Any Co"); got != url {
		t.Errorf("expected pass-through, got %q", got)
	}
}

func TestApplyURL_CompanyTable(t *testing.T) {
	got := ApplyURL("", "Software Developer", "Safaricom PLC")
	want := "https://www.safaricom.co.ke/careers/software-developer"
	if got != want {
		t.Errorf("ApplyURL = %q, want %q", got, want)
	}
}

func TestApplyURL_GenericFallbackDeterministic(t *testing.T) {
	first := ApplyURL("", "Welder", "Mombasa Metalworks")
	for i := 0; i < 10; i++ {
		if got := ApplyURL("", "Welder", "Mombasa Metalworks"); got != first {
			t.Fatalf("generic apply url changed between calls: %q then %q", first, got)
		}
	}
	if !strings.HasPrefix(first, "http") {
		t.Errorf("unexpected url %q", first)
	}
}
