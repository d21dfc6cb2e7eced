package fetcher

import (
	"context"
	"time"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/go-resty/resty/v2"
)

// Options tunes the single request a run makes.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

type Fetcher struct {
	client *resty.Client
}

// NewFetcher builds a fetcher that issues exactly one request per call, no retries.
func NewFetcher(opts Options) *Fetcher {
	client := resty.New().SetRetryCount(0)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return &Fetcher{client: client}
}

// GetBytes fetches url and returns the response body. Transport failures and
// non-2xx responses are reported as *models.NetworkError.
func (f *Fetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &models.NetworkError{URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &models.NetworkError{URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}
