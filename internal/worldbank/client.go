// Package worldbank fetches the country catalog from the World Bank API.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ajayneena/econdash/internal/models"
)

// Client communicates with the World Bank REST API.
type Client struct {
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// NewClient creates a new client targeting the given World Bank base URL.
// A perPage of 0 or below falls back to 300, enough for one-page retrieval
// of the full country list.
func NewClient(baseURL string, perPage int, timeout time.Duration) *Client {
	if perPage <= 0 {
		perPage = 300
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		perPage:    perPage,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiCountry is one country entry of the World Bank response.
type apiCountry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region struct {
		Value string `json:"value"`
	} `json:"region"`
}

// Countries fetches the country list.
// GET {base}/country?format=json&per_page=N -> [metadata, [country, ...]]
// Aggregate entries (regions, income groups) are filtered out.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	url := fmt.Sprintf("%s/country?format=json&per_page=%d", c.baseURL, c.perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach World Bank API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	// The response is a two-element array: metadata first, countries second.
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("unexpected response shape: %d elements", len(envelope))
	}

	var raw []apiCountry
	if err := json.Unmarshal(envelope[1], &raw); err != nil {
		return nil, fmt.Errorf("failed to parse country list: %w", err)
	}

	countries := make([]models.Country, 0, len(raw))
	for _, wc := range raw {
		if wc.Region.Value == "Aggregates" {
			continue
		}
		countries = append(countries, models.Country{
			ID:     wc.ID,
			Name:   wc.Name,
			Region: wc.Region.Value,
		})
	}

	return countries, nil
}
