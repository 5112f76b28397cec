package admin

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type stubMetricsSource struct {
	metrics OverviewMetrics
	err     error
	window  MetricsWindow
}

func (s *stubMetricsSource) OverviewMetrics(_ context.Context, window MetricsWindow) (OverviewMetrics, error) {
	s.window = window
	return s.metrics, s.err
}

func TestOverviewBuildRendersRecordCounts(t *testing.T) {
	service := demoService(t, Options{})
	if err := Bootstrap(context.Background(), service); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}

	builder := NewOverviewBuilder(OverviewOptions{Service: service})
	overview, err := builder.Build(context.Background(), ViewerContext{UserID: "u"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(overview.Charts) != 1 {
		t.Fatalf("expected the record counts chart, got %d charts", len(overview.Charts))
	}
	chart := overview.Charts[0]
	if chart.Title != "Records by resource" || chart.Type != "bar" {
		t.Fatalf("unexpected chart %q/%q", chart.Title, chart.Type)
	}
	if !strings.Contains(strings.ToLower(chart.HTML), "echarts") {
		t.Fatalf("expected chart markup, got %q", chart.HTML[:60])
	}
	if len(overview.Activity) == 0 {
		t.Fatalf("expected the placeholder activity feed")
	}
}

func TestOverviewBuildIncludesMetricsSections(t *testing.T) {
	service := demoService(t, Options{})
	if err := Bootstrap(context.Background(), service); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	source := &stubMetricsSource{
		metrics: OverviewMetrics{
			Cards: []MetricCard{{Label: "Active users", Value: "42", Delta: "+12%", Trend: "up"}},
			PageViews: []ChartPoint{
				{Label: "Mon", Value: 120},
				{Label: "Tue", Value: 140},
			},
			Actions: []ChartPoint{
				{Label: "edit", Value: 40},
				{Label: "delete", Value: 3},
			},
		},
	}

	builder := NewOverviewBuilder(OverviewOptions{Service: service, Metrics: source})
	overview, err := builder.Build(context.Background(), ViewerContext{UserID: "u"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(overview.Cards) != 1 || overview.Cards[0].Label != "Active users" {
		t.Fatalf("expected metric cards, got %#v", overview.Cards)
	}
	if len(overview.Charts) != 3 {
		t.Fatalf("expected records, page views and actions charts, got %d", len(overview.Charts))
	}
	titles := []string{overview.Charts[0].Title, overview.Charts[1].Title, overview.Charts[2].Title}
	want := []string{"Records by resource", "Page views", "Actions"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected chart order %v, got %v", want, titles)
		}
	}
}

func TestOverviewBuildSurvivesMetricsFailure(t *testing.T) {
	telemetry := &testTelemetry{}
	service := demoService(t, Options{Telemetry: telemetry})
	source := &stubMetricsSource{err: errors.New("insights unreachable")}

	builder := NewOverviewBuilder(OverviewOptions{Service: service, Metrics: source})
	overview, err := builder.Build(context.Background(), ViewerContext{UserID: "u"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(overview.Cards) != 0 {
		t.Fatalf("expected no cards when the source fails, got %#v", overview.Cards)
	}
	found := false
	for _, event := range telemetry.events {
		if event == "admin.overview.metrics_error" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a telemetry event for the failed source, got %v", telemetry.events)
	}
}

func TestOverviewBuildPassesConfiguredWindow(t *testing.T) {
	service := demoService(t, Options{})
	source := &stubMetricsSource{}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	builder := NewOverviewBuilder(OverviewOptions{
		Service: service,
		Metrics: source,
		Window:  func() MetricsWindow { return MetricsWindow{From: from, To: to} },
	})
	if _, err := builder.Build(context.Background(), ViewerContext{UserID: "u"}); err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !source.window.From.Equal(from) || !source.window.To.Equal(to) {
		t.Fatalf("expected the configured window, got %+v", source.window)
	}
}

func TestOverviewRecordCountsRespectAuthorization(t *testing.T) {
	service := demoService(t, Options{
		Authorizer: allowListAuthorizer{resources: map[string]bool{"Users": true}},
	})
	if err := Bootstrap(context.Background(), service); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}

	builder := NewOverviewBuilder(OverviewOptions{Service: service})
	overview, err := builder.Build(context.Background(), ViewerContext{UserID: "u"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(overview.Charts) != 1 {
		t.Fatalf("expected one chart, got %d", len(overview.Charts))
	}
	if strings.Contains(overview.Charts[0].HTML, "Articles") {
		t.Fatalf("expected hidden resources to stay out of the chart")
	}
}
