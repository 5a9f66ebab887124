package trc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
)

// maxErrorBody caps how much of a failed response is kept in APIError.
const maxErrorBody = 512

// APIError is returned for non-200 responses from the property database.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("property database API error: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the metals and alloys property database. It implements
// domain.CitationResolver.
type Client struct {
	authKey    string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a property database client. baseURL is the API root,
// e.g. https://trc.nist.gov/MetalsAlloyAPI.
func NewClient(baseURL, authKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		authKey: authKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: metrics,
		logger:  logger,
	}
}

// Search posts a query to the search endpoint and decodes the result.
func (c *Client) Search(ctx context.Context, search SearchRequest) (*SearchResponse, error) {
	payload, err := json.Marshal(search)
	if err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}

	u := c.baseURL + "/search?" + url.Values{"authkey": {c.authKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.CitationAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out SearchResponse
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// LookupCitation searches by citation ID and returns its publication year
// and declared temperature scale. An unknown citation yields an empty
// Citation and no error.
func (c *Client) LookupCitation(ctx context.Context, citationID string) (domain.Citation, error) {
	resp, err := c.Search(ctx, SearchRequest{CitationID: citationID})
	if err != nil {
		c.metrics.CitationRequests.WithLabelValues("error").Inc()
		return domain.Citation{}, err
	}

	for _, entry := range resp.Data {
		if entry.Citation.CitationID.String() != citationID {
			continue
		}
		citation := entry.Citation.toDomain()
		if citation.Empty() {
			break
		}
		c.metrics.CitationRequests.WithLabelValues("success").Inc()
		return citation, nil
	}

	c.metrics.CitationRequests.WithLabelValues("empty").Inc()
	c.logger.Debug("citation not found", "citation_id", citationID)
	return domain.Citation{ID: citationID}, nil
}

func (ci CitationInfo) toDomain() domain.Citation {
	c := domain.Citation{
		ID:               ci.CitationID.String(),
		TemperatureScale: strings.TrimSpace(ci.TemperatureScale),
	}
	if y, err := strconv.Atoi(ci.Year.String()); err == nil {
		c.Year = &y
	}
	return c
}
