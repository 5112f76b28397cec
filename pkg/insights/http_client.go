package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// HTTPConfig configures the HTTP insights client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient talks to remote usage and BI services via REST endpoints.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds a client capable of hitting live insight APIs.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("insights: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

// FetchUsage implements UsageClient by calling the remote usage endpoint.
func (c *HTTPClient) FetchUsage(ctx context.Context, query UsageQuery) (UsageReport, error) {
	req := usageRequest{
		From:     query.From.Format(time.DateOnly),
		To:       query.To.Format(time.DateOnly),
		Interval: query.Interval,
	}
	var resp usageResponse
	if err := c.do(ctx, http.MethodPost, "/usage/query", req, &resp); err != nil {
		return UsageReport{}, err
	}
	return resp.toReport()
}

// FetchActions implements ActionClient via the actions endpoint.
func (c *HTTPClient) FetchActions(ctx context.Context, query ActionQuery) (ActionReport, error) {
	req := actionRequest{
		From:  query.From.Format(time.DateOnly),
		To:    query.To.Format(time.DateOnly),
		Limit: query.Limit,
	}
	var resp actionResponse
	if err := c.do(ctx, http.MethodPost, "/actions/query", req, &resp); err != nil {
		return ActionReport{}, err
	}
	return resp.toReport(), nil
}

// FetchHeadlines implements HeadlineClient via the headlines endpoint.
func (c *HTTPClient) FetchHeadlines(ctx context.Context, query HeadlineQuery) (HeadlineReport, error) {
	req := headlineRequest{
		From: query.From.Format(time.DateOnly),
		To:   query.To.Format(time.DateOnly),
	}
	var resp headlineResponse
	if err := c.do(ctx, http.MethodPost, "/headlines/query", req, &resp); err != nil {
		return HeadlineReport{}, err
	}
	return resp.toReport(), nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("insights: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("insights: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("insights: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("insights: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("insights: decode response: %w", err)
	}
	return nil
}

type usageRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Interval string `json:"interval,omitempty"`
}

type usageBucket struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

type usageResponse struct {
	Interval string        `json:"interval"`
	Series   []usageBucket `json:"series"`
}

func (r usageResponse) toReport() (UsageReport, error) {
	points := make([]UsagePoint, len(r.Series))
	for i, bucket := range r.Series {
		day, err := time.Parse(time.DateOnly, bucket.Day)
		if err != nil {
			return UsageReport{}, fmt.Errorf("insights: parse usage day %q: %w", bucket.Day, err)
		}
		points[i] = UsagePoint{Day: day, Views: bucket.Views}
	}
	return UsageReport{Interval: r.Interval, Points: points}, nil
}

type actionRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Limit int    `json:"limit,omitempty"`
}

type actionResponse struct {
	Counts map[string]int `json:"counts"`
}

// toReport orders the counts busiest first so charts stay stable between
// requests.
func (r actionResponse) toReport() ActionReport {
	counts := make([]ActionCount, 0, len(r.Counts))
	for name, count := range r.Counts {
		counts = append(counts, ActionCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return ActionReport{Counts: counts}
}

type headlineRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type headlineCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
	Trend string `json:"trend"`
}

type headlineResponse struct {
	Cards []headlineCard `json:"cards"`
}

func (r headlineResponse) toReport() HeadlineReport {
	cards := make([]Headline, len(r.Cards))
	for i, card := range r.Cards {
		cards[i] = Headline{
			Label: card.Label,
			Value: card.Value,
			Delta: card.Delta,
			Trend: card.Trend,
		}
	}
	return HeadlineReport{Cards: cards}
}
