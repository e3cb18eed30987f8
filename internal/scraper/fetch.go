package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/vincentkyalomusembi/PathFinder/internal/errors"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// fetchListings is the shared adapter body: one GET of the listing page,
// card selection with fallbacks, extraction of up to limit postings.
func fetchListings(ctx context.Context, client *http.Client, url, source string, limit int) ([]models.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("creating request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Internal("executing request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Internal(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Internal("parsing response", err)
	}

	cards := selectCards(doc, source)
	postings := make([]models.JobPosting, 0, limit)
	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(postings) >= limit {
			return false
		}
		if posting, ok := extractCard(card, source); ok {
			postings = append(postings, posting)
		}
		return true
	})

	return postings, nil
}

// selectCards tries the source's card selectors in order and returns the
// first non-empty selection.
func selectCards(doc *goquery.Document, source string) *goquery.Selection {
	selectors := sourceSelectors[source]
	for _, selector := range selectors.cards {
		if cards := doc.Find(selector); cards.Length() > 0 {
			return cards
		}
	}
	return doc.Find(selectors.cards[len(selectors.cards)-1])
}
