package justwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "WatchMovies/1.0"
)

// Client implements domain.CatalogRepository against the JustWatch GraphQL
// API. Calls are stateless and independent; the zero shared state makes the
// client safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog client. An empty endpoint selects the
// production API.
func NewClient(endpoint string, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// post sends one GraphQL request and returns the raw response body.
// Non-success statuses surface as domain.TransportError.
func (c *Client) post(ctx context.Context, req request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "operation", req.OperationName)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("catalog request failed", "operation", req.OperationName, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("catalog request error", "operation", req.OperationName, "status", resp.StatusCode)
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}

	return body, nil
}

// SearchTitles searches the catalog, scoped to one country and language
func (c *Client) SearchTitles(ctx context.Context, title, country, language string, count int, bestOnly bool) ([]domain.MediaEntry, error) {
	req, err := buildSearchRequest(title, country, language, count, bestOnly)
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeSearch(body)
}

// TitleDetails fetches one title by node ID; nil means not found
func (c *Client) TitleDetails(ctx context.Context, nodeID, country, language string, bestOnly bool) (*domain.MediaEntry, error) {
	req, err := buildDetailsRequest(nodeID, country, language, bestOnly)
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeDetails(body)
}

// OffersForCountries fetches the title's offers for every requested country
// in one aliased request. An empty country list short-circuits to an empty
// map before any request is built or sent.
func (c *Client) OffersForCountries(ctx context.Context, nodeID string, countries []string, language string, bestOnly bool) (map[string][]domain.Offer, error) {
	if len(countries) == 0 {
		return map[string][]domain.Offer{}, nil
	}

	req, err := buildOffersRequest(nodeID, countries, language, bestOnly)
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeOffers(body, countries)
}
