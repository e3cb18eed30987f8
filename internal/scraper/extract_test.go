package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func cardFromHTML(t *testing.T, html, cardSelector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	card := doc.Find(cardSelector).First()
	if card.Length() == 0 {
		t.Fatalf("fixture has no %s card", cardSelector)
	}
	return card
}

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"monthly annualized", "KSh 40,000 per month", 480000},
		{"already annual", "KSh 150,000", 150000},
		{"suffixed currency", "120,000 KSh gross", 120000},
		{"per month suffix", "pay is 35,000 per month", 420000},
		{"salary prefix", "salary of 90,000 negotiable", 90000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSalary(tt.text)
			if got == nil {
				t.Fatalf("extractSalary(%q) = nil, want %d", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("extractSalary(%q) = %d, want %d", tt.text, *got, tt.want)
			}
		})
	}
}

func TestExtractSalary_NoMatch(t *testing.T) {
	if got := extractSalary("competitive remuneration"); got != nil {
		t.Errorf("expected nil salary, got %d", *got)
	}
}

func TestExtractCard_FullCard(t *testing.T) {
	html := `<div class="job-item">
		<h3><a href="https://www.brightermonday.co.ke/listings/dev-123">Software Developer</a></h3>
		<span class="company">Acme Ltd</span>
		<span class="location">Nairobi</span>
		<p class="description">Build APIs in Python. KSh 40,000 per month.</p>
	</div>`

	posting, ok := extractCard(cardFromHTML(t, html, "div.job-item"), sourceBrighterMonday)
	if !ok {
		t.Fatal("expected a posting")
	}
	if posting.Title != "Software Developer" {
		t.Errorf("title = %q", posting.Title)
	}
	if posting.Company != "Acme Ltd" {
		t.Errorf("company = %q", posting.Company)
	}
	if posting.Location != "Nairobi" {
		t.Errorf("location = %q", posting.Location)
	}
	if posting.Salary == nil || *posting.Salary != 480000 {
		t.Errorf("salary = %v, want 480000", posting.Salary)
	}
	if posting.Category != "tech" {
		t.Errorf("category = %q, want tech", posting.Category)
	}
	if posting.ApplyURL != "https://www.brightermonday.co.ke/listings/dev-123" {
		t.Errorf("apply_url = %q", posting.ApplyURL)
	}
	if posting.Source != sourceBrighterMonday {
		t.Errorf("source = %q", posting.Source)
	}
	if posting.ID < 0 || posting.ID >= idRange {
		t.Errorf("id %d outside range", posting.ID)
	}
}

func TestExtractCard_SentinelDefaults(t *testing.T) {
	html := `<div class="job-item"><h3>Clerk</h3></div>`

	posting, ok := extractCard(cardFromHTML(t, html, "div.job-item"), sourceBrighterMonday)
	if !ok {
		t.Fatal("expected a posting")
	}
	if posting.Company != unknownCompany {
		t.Errorf("company = %q, want sentinel", posting.Company)
	}
	if posting.Location != defaultRegion {
		t.Errorf("location = %q, want sentinel", posting.Location)
	}
	if posting.Description != noDescription {
		t.Errorf("description = %q, want sentinel", posting.Description)
	}
	if posting.Salary != nil {
		t.Errorf("expected no salary, got %d", *posting.Salary)
	}
	if posting.ApplyURL == "" {
		t.Error("expected a synthesized apply url")
	}
}

func TestExtractCard_EmptyCardYieldsNothing(t *testing.T) {
	html := `<div class="job-item"></div>`
	if _, ok := extractCard(cardFromHTML(t, html, "div.job-item"), sourceBrighterMonday); ok {
		t.Error("expected empty card to yield no posting")
	}
}

func TestExtractCard_SelectorFallback(t *testing.T) {
	// No h4, so the MyJobMag title ladder falls through to h3.
	html := `<div class="job-list-item">
		<h3>Data Analyst</h3>
		<span class="employer">Equity Bank</span>
	</div>`

	posting, ok := extractCard(cardFromHTML(t, html, "div.job-list-item"), sourceMyJobMag)
	if !ok {
		t.Fatal("expected a posting")
	}
	if posting.Title != "Data Analyst" {
		t.Errorf("title = %q, want fallback selector value", posting.Title)
	}
	if posting.Company != "Equity Bank" {
		t.Errorf("company = %q", posting.Company)
	}
}

func TestExtractCard_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("very long description ", 20)
	html := `<div class="job-item"><h3>Role</h3><p class="description">` + long + `</p></div>`

	posting, ok := extractCard(cardFromHTML(t, html, "div.job-item"), sourceBrighterMonday)
	if !ok {
		t.Fatal("expected a posting")
	}
	if len([]rune(posting.Description)) > maxDescriptionLen {
		t.Errorf("description length %d exceeds %d", len([]rune(posting.Description)), maxDescriptionLen)
	}
}

func TestPostingID_DeterministicAndBounded(t *testing.T) {
	a := postingID("Software Developer", "Acme Ltd")
	b := postingID("Software Developer", "Acme Ltd")
	if a != b {
		t.Errorf("expected stable id, got %d and %d", a, b)
	}
	if a < 0 || a >= idRange {
		t.Errorf("id %d outside [0, %d)", a, idRange)
	}
	if postingID("Other Role", "Acme Ltd") == a {
		t.Log("id collision between distinct postings; tolerated by design")
	}
}
