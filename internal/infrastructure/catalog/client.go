package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// maxResponseSize caps upstream response bodies (5MB)
const maxResponseSize = 5 * 1024 * 1024

// getJSON issues a GET against an upstream catalog and decodes the JSON
// body into out. Transport failures map to ErrSourceUnavailable, non-2xx
// statuses to ErrSourceRequestFailed and decode failures to
// ErrSourceInvalidResponse so the aggregator can treat them uniformly.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("catalog: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", aggregation.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("catalog: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", aggregation.ErrSourceRequestFailed, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", aggregation.ErrSourceInvalidResponse, err)
	}
	return nil
}

// clampRating forces upstream rating figures into the canonical [0,5] range
func clampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}
