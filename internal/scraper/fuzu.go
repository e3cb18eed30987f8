package scraper

import (
	"context"
	"net/http"

	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

const (
	sourceFuzu = "Fuzu"
	fuzuURL    = "https://www.fuzu.com/kenya/jobs"
)

// FuzuAdapter scrapes the Fuzu Kenya listing page.
type FuzuAdapter struct {
	url    string
	client *http.Client
}

func NewFuzuAdapter(client *http.Client) *FuzuAdapter {
	return &FuzuAdapter{
		url:    fuzuURL,
		client: client,
	}
}

func (a *FuzuAdapter) Name() string {
	return sourceFuzu
}

func (a *FuzuAdapter) Fetch(ctx context.Context, limit int) ([]models.JobPosting, error) {
	return fetchListings(ctx, a.client, a.url, a.Name(), limit)
}
