package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	logger     *zap.Logger
}

// NewPlacesClient builds the external places API client used by the
// import worker.
func NewPlacesClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

type searchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string   `json:"place_id"`
		Name    string   `json:"name"`
		Address string   `json:"formatted_address"`
		Phone   string   `json:"formatted_phone_number"`
		Website string   `json:"website"`
		Rating  *float64 `json:"rating,omitempty"`
	} `json:"results"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// retryableError marks responses worth retrying (rate limits, upstream
// flakiness). Anything else aborts the backoff loop immediately.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }

// SearchPlaces runs a text search against the places API. Rate-limit
// and 5xx responses are retried with exponential backoff up to the
// configured attempt budget.
func (c *client) SearchPlaces(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	var resp *searchResponse
	operation := func() error {
		var err error
		resp, err = c.doSearch(ctx, query)
		if err == nil {
			return nil
		}
		if rErr, ok := err.(*retryableError); ok {
			c.logger.Warn("Places API request failed, retrying",
				zap.String("query", query),
				zap.Error(rErr.err))
			return rErr.err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries))
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		if limit > 0 && len(places) >= limit {
			break
		}
		places = append(places, domain.Place{
			Ref:     r.PlaceID,
			Name:    r.Name,
			Address: r.Address,
			Phone:   r.Phone,
			Website: r.Website,
			Rating:  r.Rating,
		})
	}

	c.logger.Debug("Places search completed",
		zap.String("query", query),
		zap.Int("results", len(places)))
	return places, nil
}

func (c *client) doSearch(ctx context.Context, query string) (*searchResponse, error) {
	endpoint := fmt.Sprintf("%s/textsearch?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &retryableError{fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &retryableError{fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(body))}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch searchResp.Status {
	case "OK", "ZERO_RESULTS":
		return &searchResp, nil
	case "OVER_QUERY_LIMIT":
		return nil, &retryableError{fmt.Errorf("places API over query limit: %s", searchResp.ErrorMessage)}
	default:
		return nil, fmt.Errorf("places API returned status %s: %s", searchResp.Status, searchResp.ErrorMessage)
	}
}
