package admin

import (
	"context"
	"fmt"
	"time"
)

// MetricsWindow bounds a usage-metrics query.
type MetricsWindow struct {
	From time.Time
	To   time.Time
}

// MetricCard is one headline figure on the overview page.
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	Trend string `json:"trend,omitempty"`
}

// OverviewMetrics is the usage data a metrics source contributes to the
// overview page.
type OverviewMetrics struct {
	Cards     []MetricCard `json:"cards"`
	PageViews []ChartPoint `json:"page_views"`
	Actions   []ChartPoint `json:"actions"`
}

// MetricsSource supplies usage metrics for the overview page. The insights
// package ships an HTTP-backed implementation.
type MetricsSource interface {
	OverviewMetrics(ctx context.Context, window MetricsWindow) (OverviewMetrics, error)
}

// Overview is the assembled overview page payload.
type Overview struct {
	Cards    []MetricCard    `json:"cards"`
	Charts   []RenderedChart `json:"charts"`
	Activity []ActivityItem  `json:"activity"`
}

// OverviewOptions wires an OverviewBuilder.
type OverviewOptions struct {
	Service  *Service
	Metrics  MetricsSource
	Feed     ActivityFeed
	Renderer *ChartRenderer
	Window   func() MetricsWindow
}

// OverviewBuilder assembles the overview page: record counts per resource,
// usage charts from the metrics source, and the recent activity feed.
type OverviewBuilder struct {
	service  *Service
	metrics  MetricsSource
	feed     ActivityFeed
	renderer *ChartRenderer
	window   func() MetricsWindow
}

// NewOverviewBuilder fills missing collaborators: a default chart renderer,
// the placeholder feed, and a trailing 30 day window.
func NewOverviewBuilder(opts OverviewOptions) *OverviewBuilder {
	if opts.Renderer == nil {
		opts.Renderer = NewChartRenderer()
	}
	if opts.Feed == nil {
		opts.Feed = DefaultActivityFeed()
	}
	if opts.Window == nil {
		opts.Window = func() MetricsWindow {
			now := time.Now().UTC()
			return MetricsWindow{From: now.AddDate(0, 0, -30), To: now}
		}
	}
	return &OverviewBuilder{
		service:  opts.Service,
		metrics:  opts.Metrics,
		feed:     opts.Feed,
		renderer: opts.Renderer,
		window:   opts.Window,
	}
}

// Build assembles the overview for a viewer. A failing metrics source drops
// the usage section instead of failing the page.
func (b *OverviewBuilder) Build(ctx context.Context, viewer ViewerContext) (Overview, error) {
	overview := Overview{}

	counts, err := b.recordCounts(ctx, viewer)
	if err != nil {
		return Overview{}, err
	}
	if len(counts) > 0 {
		html, err := b.renderer.Bar("Records by resource", "", []ChartSeries{{Name: "records", Points: counts}})
		if err != nil {
			return Overview{}, fmt.Errorf("render record counts: %w", err)
		}
		overview.Charts = append(overview.Charts, RenderedChart{Title: "Records by resource", Type: "bar", HTML: html})
	}

	if b.metrics != nil {
		metrics, err := b.metrics.OverviewMetrics(ctx, b.window())
		if err != nil {
			b.service.telemetry.Record(ctx, "admin.overview.metrics_error", map[string]any{"error": err.Error()})
		} else {
			overview.Cards = append(overview.Cards, metrics.Cards...)
			if len(metrics.PageViews) > 0 {
				html, err := b.renderer.Line("Page views", "", []ChartSeries{{Name: "views", Points: metrics.PageViews}})
				if err != nil {
					return Overview{}, fmt.Errorf("render page views: %w", err)
				}
				overview.Charts = append(overview.Charts, RenderedChart{Title: "Page views", Type: "line", HTML: html})
			}
			if len(metrics.Actions) > 0 {
				html, err := b.renderer.Pie("Actions", ChartSeries{Name: "actions", Points: metrics.Actions})
				if err != nil {
					return Overview{}, fmt.Errorf("render actions: %w", err)
				}
				overview.Charts = append(overview.Charts, RenderedChart{Title: "Actions", Type: "pie", HTML: html})
			}
		}
	}

	items, err := b.feed.Recent(ctx, viewer, 10)
	if err != nil {
		return Overview{}, fmt.Errorf("load activity feed: %w", err)
	}
	overview.Activity = items
	return overview, nil
}

// recordCounts totals each accessible resource through the regular list
// path so authorization still applies.
func (b *OverviewBuilder) recordCounts(ctx context.Context, viewer ViewerContext) ([]ChartPoint, error) {
	var points []ChartPoint
	for _, resource := range b.service.Resources(viewer) {
		result, err := b.service.ListRecords(ctx, ListRecordsRequest{
			ResourceID: resource.ID,
			Viewer:     viewer,
			PerPage:    1,
		})
		if err != nil {
			return nil, fmt.Errorf("count records for %s: %w", resource.ID, err)
		}
		points = append(points, ChartPoint{Label: resource.Label, Value: float64(result.Total)})
	}
	return points, nil
}
