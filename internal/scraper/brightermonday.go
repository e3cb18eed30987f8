package scraper

import (
	"context"
	"net/http"

	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

const (
	sourceBrighterMonday = "BrighterMonday"
	brighterMondayURL    = "https://www.brightermonday.co.ke/jobs"
)

// BrighterMondayAdapter scrapes the BrighterMonday Kenya listing page.
type BrighterMondayAdapter struct {
	url    string
	client *http.Client
}

func NewBrighterMondayAdapter(client *http.Client) *BrighterMondayAdapter {
	return &BrighterMondayAdapter{
		url:    brighterMondayURL,
		client: client,
	}
}

func (a *BrighterMondayAdapter) Name() string {
	return sourceBrighterMonday
}

func (a *BrighterMondayAdapter) Fetch(ctx context.Context, limit int) ([]models.JobPosting, error) {
	return fetchListings(ctx, a.client, a.url, a.Name(), limit)
}
