package queries

import (
	"context"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

type listService interface {
	ListRecords(ctx context.Context, req admin.ListRecordsRequest) (admin.ListResult, error)
}

// ListRecordsQuery executes read-only record listing.
type ListRecordsQuery struct {
	service listService
}

// NewListRecordsQuery builds the query.
func NewListRecordsQuery(service listService) *ListRecordsQuery {
	return &ListRecordsQuery{service: service}
}

var _ gocommand.Querier[admin.ListRecordsRequest, admin.ListResult] = (*ListRecordsQuery)(nil)

// Query resolves one page of records for the viewer.
func (q *ListRecordsQuery) Query(ctx context.Context, req admin.ListRecordsRequest) (admin.ListResult, error) {
	return q.service.ListRecords(ctx, req)
}
