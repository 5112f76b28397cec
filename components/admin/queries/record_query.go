package queries

import (
	"context"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

type getService interface {
	GetRecord(ctx context.Context, req admin.GetRecordRequest) (admin.Record, error)
}

// RecordQuery fetches a single record.
type RecordQuery struct {
	service getService
}

// NewRecordQuery builds the query.
func NewRecordQuery(service getService) *RecordQuery {
	return &RecordQuery{service: service}
}

var _ gocommand.Querier[admin.GetRecordRequest, admin.Record] = (*RecordQuery)(nil)

// Query resolves an individual record for the viewer.
func (q *RecordQuery) Query(ctx context.Context, req admin.GetRecordRequest) (admin.Record, error) {
	return q.service.GetRecord(ctx, req)
}
