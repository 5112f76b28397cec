package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPClientFetchUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/usage/query" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected auth header, got %s", got)
		}
		var req usageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Interval != "day" {
			t.Fatalf("expected interval forwarded, got %q", req.Interval)
		}
		resp := usageResponse{
			Interval: "day",
			Series: []usageBucket{
				{Day: "2026-08-01", Views: 42},
				{Day: "2026-08-02", Views: 51},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	report, err := client.FetchUsage(context.Background(), UsageQuery{
		From:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		Interval: "day",
	})
	if err != nil {
		t.Fatalf("fetch usage: %v", err)
	}
	if len(report.Points) != 2 || report.Points[0].Views != 42 {
		t.Fatalf("unexpected report: %#v", report)
	}
	if report.Points[1].Day.Format(time.DateOnly) != "2026-08-02" {
		t.Fatalf("expected parsed day, got %v", report.Points[1].Day)
	}
}

func TestHTTPClientFetchActionsSortsCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/actions/query" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		resp := actionResponse{Counts: map[string]int{
			"records.delete": 3,
			"records.update": 12,
			"records.create": 12,
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	report, err := client.FetchActions(context.Background(), ActionQuery{Limit: 10})
	if err != nil {
		t.Fatalf("fetch actions: %v", err)
	}
	want := []ActionCount{
		{Name: "records.create", Count: 12},
		{Name: "records.update", Count: 12},
		{Name: "records.delete", Count: 3},
	}
	if len(report.Counts) != len(want) {
		t.Fatalf("expected %d counts, got %#v", len(want), report.Counts)
	}
	for i, count := range want {
		if report.Counts[i] != count {
			t.Fatalf("count %d: expected %+v, got %+v", i, count, report.Counts[i])
		}
	}
}

func TestHTTPClientFetchHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/headlines/query" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		resp := headlineResponse{Cards: []headlineCard{
			{Label: "Active users", Value: "1.2k", Delta: "+4%", Trend: "up"},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	report, err := client.FetchHeadlines(context.Background(), HeadlineQuery{})
	if err != nil {
		t.Fatalf("fetch headlines: %v", err)
	}
	if len(report.Cards) != 1 || report.Cards[0].Label != "Active users" {
		t.Fatalf("unexpected report: %#v", report)
	}
}

func TestHTTPClientSurfacesRemoteErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "usage store offline", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FetchUsage(context.Background(), UsageQuery{}); err == nil {
		t.Fatalf("expected remote error")
	} else if !strings.Contains(err.Error(), "remote error 502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestHTTPClientRejectsMalformedDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := usageResponse{Series: []usageBucket{{Day: "yesterday", Views: 1}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FetchUsage(context.Background(), UsageQuery{}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient(HTTPConfig{}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
}
