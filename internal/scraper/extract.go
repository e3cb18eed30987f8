package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"

	"github.com/vincentkyalomusembi/PathFinder/internal/enrich"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
	"github.com/vincentkyalomusembi/PathFinder/internal/synth"
)

const (
	// Raw figures below this are taken to be monthly and annualized at
	// extraction time, never re-normalized later.
	monthlyThreshold = 50000

	maxDescriptionLen = 200
	idRange           = 100000
)

// Sentinels substitute for fields no selector could produce.
const (
	unknownTitle   = "Unknown Position"
	unknownCompany = "Unknown Company"
	defaultRegion  = "Kenya"
	noDescription  = "No description available"
)

// selectorSet holds the per-source selector ladders. For each field the
// first selector yielding non-empty text wins.
type selectorSet struct {
	cards       []string
	title       []string
	company     []string
	location    []string
	description []string
}

var sourceSelectors = map[string]selectorSet{
	sourceBrighterMonday: {
		cards:       []string{"div.job-item", "article.job"},
		title:       []string{"h3", "h2", "a.job-title"},
		company:     []string{"span.company", "div.company-name"},
		location:    []string{"span.location", "div.job-location"},
		description: []string{"p.description", "div.job-summary"},
	},
	sourceMyJobMag: {
		cards:       []string{"div.job-list-item", "div.job-card"},
		title:       []string{"h4", "h3", "a"},
		company:     []string{"span.employer", "div.company"},
		location:    []string{"span.location"},
		description: []string{"p", "div.summary"},
	},
	sourceFuzu: {
		cards:       []string{"div.job-card", "div.listing-item"},
		title:       []string{"h3", "h4", "a"},
		company:     []string{"span.company-name", "div.employer"},
		location:    []string{"span.location"},
		description: []string{"p.job-description", "div.description"},
	},
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)KSh?\s*(\d{1,3}(?:,\d{3})*)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*KSh?`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*per\s*month`),
	regexp.MustCompile(`(?i)salary.*?(\d{1,3}(?:,\d{3})*)`),
}

// extractCard normalizes one job card into a posting. Missing fields fall
// back to sentinels; a card with no text at all yields no posting.
func extractCard(card *goquery.Selection, source string) (models.JobPosting, bool) {
	selectors, ok := sourceSelectors[source]
	if !ok {
		return models.JobPosting{}, false
	}

	cardText := strings.TrimSpace(card.Text())
	if cardText == "" {
		return models.JobPosting{}, false
	}

	title := firstText(card, selectors.title)
	applyURL := firstHref(card, selectors.title)
	if title == "" {
		title = unknownTitle
	}

	company := firstText(card, selectors.company)
	if company == "" {
		company = unknownCompany
	}

	location := firstText(card, selectors.location)
	if location == "" {
		location = defaultRegion
	}

	description := firstText(card, selectors.description)
	if description == "" {
		description = noDescription
	}
	description = truncate(description, maxDescriptionLen)

	return models.JobPosting{
		ID:          postingID(title, company),
		Title:       title,
		Company:     company,
		Location:    location,
		Description: description,
		Salary:      extractSalary(cardText),
		Category:    enrich.Categorize(title, description),
		Skills:      enrich.TagSkills(title + " " + description),
		ApplyURL:    synth.ApplyURL(applyURL, title, company),
		Source:      source,
	}, true
}

// extractSalary scans text with the pattern ladder. The first matching
// numeric value wins; thousands separators are stripped and monthly
// figures are annualized.
func extractSalary(text string) *int {
	for _, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		value, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
		if err != nil {
			continue
		}

		if value < monthlyThreshold {
			value *= 12
		}
		return &value
	}
	return nil
}

// postingID derives a listing id from title and company. Collisions are
// possible within the reduced range; nothing relies on uniqueness.
func postingID(title, company string) int {
	return int(xxhash.Sum64String(title+company) % idRange)
}

func firstText(card *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(card.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstHref returns the href of the first matching title element that is
// an anchor, contains one, or sits inside one.
func firstHref(card *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		elem := card.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		if href, ok := elem.Attr("href"); ok {
			return href
		}
		if href, ok := elem.Find("a").First().Attr("href"); ok {
			return href
		}
		if href, ok := elem.Closest("a").Attr("href"); ok {
			return href
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
