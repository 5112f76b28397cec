package insights

import (
	"context"
	"time"

	admin "github.com/goliatone/go-admin/components/admin"
)

// SourceOptions selects which clients feed the overview page. Nil clients
// skip their section instead of failing it.
type SourceOptions struct {
	Usage     UsageClient
	Actions   ActionClient
	Headlines HeadlineClient

	// Interval forwarded to usage queries, e.g. "day".
	Interval string
	// TopActions caps the action breakdown. Zero keeps the upstream default.
	TopActions int
}

// NewOverviewSource adapts insight clients into the admin metrics source.
func NewOverviewSource(opts SourceOptions) admin.MetricsSource {
	return &overviewSource{opts: opts}
}

// NewClientSource adapts a full client into the admin metrics source.
func NewClientSource(client Client) admin.MetricsSource {
	return NewOverviewSource(SourceOptions{
		Usage:     client,
		Actions:   client,
		Headlines: client,
	})
}

type overviewSource struct {
	opts SourceOptions
}

// OverviewMetrics fetches headline cards, the page-view series, and the
// action breakdown for the window. The first upstream failure aborts the
// fetch; the overview page degrades to its local sections.
func (s *overviewSource) OverviewMetrics(ctx context.Context, window admin.MetricsWindow) (admin.OverviewMetrics, error) {
	var out admin.OverviewMetrics

	if s.opts.Headlines != nil {
		report, err := s.opts.Headlines.FetchHeadlines(ctx, HeadlineQuery{From: window.From, To: window.To})
		if err != nil {
			return admin.OverviewMetrics{}, err
		}
		for _, card := range report.Cards {
			out.Cards = append(out.Cards, admin.MetricCard{
				Label: card.Label,
				Value: card.Value,
				Delta: card.Delta,
				Trend: card.Trend,
			})
		}
	}

	if s.opts.Usage != nil {
		report, err := s.opts.Usage.FetchUsage(ctx, UsageQuery{
			From:     window.From,
			To:       window.To,
			Interval: s.opts.Interval,
		})
		if err != nil {
			return admin.OverviewMetrics{}, err
		}
		for _, point := range report.Points {
			out.PageViews = append(out.PageViews, admin.ChartPoint{
				Label: point.Day.Format(time.DateOnly),
				Value: float64(point.Views),
			})
		}
	}

	if s.opts.Actions != nil {
		report, err := s.opts.Actions.FetchActions(ctx, ActionQuery{
			From:  window.From,
			To:    window.To,
			Limit: s.opts.TopActions,
		})
		if err != nil {
			return admin.OverviewMetrics{}, err
		}
		for _, count := range report.Counts {
			out.Actions = append(out.Actions, admin.ChartPoint{
				Label: count.Name,
				Value: float64(count.Count),
			})
		}
	}

	return out, nil
}
