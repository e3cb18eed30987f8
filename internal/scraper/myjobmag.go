package scraper

import (
	"context"
	"net/http"

	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

const (
	sourceMyJobMag = "MyJobMag"
	myJobMagURL    = "https://www.myjobmag.co.ke/jobs"
)

// MyJobMagAdapter scrapes the MyJobMag Kenya listing page.
type MyJobMagAdapter struct {
	url    string
	client *http.Client
}

func NewMyJobMagAdapter(client *http.Client) *MyJobMagAdapter {
	return &MyJobMagAdapter{
		url:    myJobMagURL,
		client: client,
	}
}

func (a *MyJobMagAdapter) Name() string {
	return sourceMyJobMag
}

func (a *MyJobMagAdapter) Fetch(ctx context.Context, limit int) ([]models.JobPosting, error) {
	return fetchListings(ctx, a.client, a.url, a.Name(), limit)
}
