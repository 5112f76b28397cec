package insights

import (
	"context"
	"time"
)

// UsageQuery bounds a page-view series request.
type UsageQuery struct {
	From     time.Time
	To       time.Time
	Interval string
}

// UsagePoint is one bucket of the page-view series.
type UsagePoint struct {
	Day   time.Time
	Views int
}

// UsageReport is the page-view series an upstream service returns.
type UsageReport struct {
	Interval string
	Points   []UsagePoint
}

// ActionQuery bounds an action-count request.
type ActionQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}

// ActionCount is one admin operation and how often it ran.
type ActionCount struct {
	Name  string
	Count int
}

// ActionReport aggregates admin operations, busiest first.
type ActionReport struct {
	Counts []ActionCount
}

// HeadlineQuery bounds a KPI card request.
type HeadlineQuery struct {
	From time.Time
	To   time.Time
}

// Headline is one KPI figure with an optional trend annotation.
type Headline struct {
	Label string
	Value string
	Delta string
	Trend string
}

// HeadlineReport carries the KPI cards for the overview header.
type HeadlineReport struct {
	Cards []Headline
}

// UsageClient fetches page-view series from upstream analytics services.
type UsageClient interface {
	FetchUsage(ctx context.Context, query UsageQuery) (UsageReport, error)
}

// ActionClient fetches admin operation counts from audit backends.
type ActionClient interface {
	FetchActions(ctx context.Context, query ActionQuery) (ActionReport, error)
}

// HeadlineClient fetches KPI headline figures from BI systems.
type HeadlineClient interface {
	FetchHeadlines(ctx context.Context, query HeadlineQuery) (HeadlineReport, error)
}

// Client is a convenience union for services that implement all insight calls.
type Client interface {
	UsageClient
	ActionClient
	HeadlineClient
}
