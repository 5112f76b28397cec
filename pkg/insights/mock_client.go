package insights

import (
	"context"
	"sync"
)

// MockData seeds deterministic insight responses for tests or local demos.
type MockData struct {
	Usage     UsageReport
	Actions   ActionReport
	Headlines HeadlineReport
}

// MockClient implements Client using in-memory fixtures.
type MockClient struct {
	data MockData
	mu   sync.RWMutex
}

// NewMockClient builds a mock insights client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data}
}

// FetchUsage returns the configured usage report ignoring query filters.
func (c *MockClient) FetchUsage(context.Context, UsageQuery) (UsageReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneUsage(c.data.Usage), nil
}

// FetchActions returns the configured action report ignoring query filters.
func (c *MockClient) FetchActions(context.Context, ActionQuery) (ActionReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneActions(c.data.Actions), nil
}

// FetchHeadlines returns the configured headline cards ignoring query filters.
func (c *MockClient) FetchHeadlines(context.Context, HeadlineQuery) (HeadlineReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneHeadlines(c.data.Headlines), nil
}

func cloneUsage(report UsageReport) UsageReport {
	out := UsageReport{Interval: report.Interval, Points: make([]UsagePoint, len(report.Points))}
	copy(out.Points, report.Points)
	return out
}

func cloneActions(report ActionReport) ActionReport {
	out := ActionReport{Counts: make([]ActionCount, len(report.Counts))}
	copy(out.Counts, report.Counts)
	return out
}

func cloneHeadlines(report HeadlineReport) HeadlineReport {
	out := HeadlineReport{Cards: make([]Headline, len(report.Cards))}
	copy(out.Cards, report.Cards)
	return out
}
