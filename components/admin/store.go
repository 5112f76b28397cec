package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRecordStore keeps records in memory, ordered by insertion. It backs
// the examples and tests; production panels plug their own RecordStore.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]Record
	now     func() time.Time
}

// NewMemoryRecordStore builds an empty store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make(map[string][]Record),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecord stores a new record with a generated id.
func (s *MemoryRecordStore) CreateRecord(ctx context.Context, input CreateRecordInput) (Record, error) {
	record := Record{
		ID:         uuid.NewString(),
		ResourceID: input.ResourceID,
		Params:     cloneParams(input.Params),
	}
	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt

	s.mu.Lock()
	s.records[input.ResourceID] = append(s.records[input.ResourceID], record)
	s.mu.Unlock()
	return cloneRecord(record), nil
}

// UpdateRecord merges params over the stored record.
func (s *MemoryRecordStore) UpdateRecord(ctx context.Context, input UpdateRecordInput) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.records[input.ResourceID]
	for i := range records {
		if records[i].ID != input.RecordID {
			continue
		}
		if records[i].Params == nil {
			records[i].Params = make(map[string]any, len(input.Params))
		}
		for key, value := range input.Params {
			records[i].Params[key] = value
		}
		records[i].UpdatedAt = s.now()
		return cloneRecord(records[i]), nil
	}
	return Record{}, fmt.Errorf("record %s/%s: %w", input.ResourceID, input.RecordID, ErrRecordNotFound)
}

// DeleteRecord removes a record.
func (s *MemoryRecordStore) DeleteRecord(ctx context.Context, resourceID, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.records[resourceID]
	for i := range records {
		if records[i].ID == recordID {
			s.records[resourceID] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("record %s/%s: %w", resourceID, recordID, ErrRecordNotFound)
}

// FindRecord returns a copy of the stored record.
func (s *MemoryRecordStore) FindRecord(ctx context.Context, resourceID, recordID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records[resourceID] {
		if record.ID == recordID {
			return cloneRecord(record), nil
		}
	}
	return Record{}, fmt.Errorf("record %s/%s: %w", resourceID, recordID, ErrRecordNotFound)
}

// ListRecords filters, sorts, and paginates in memory.
func (s *MemoryRecordStore) ListRecords(ctx context.Context, input ListRecordsInput) (ListResult, error) {
	s.mu.RLock()
	records := s.records[input.ResourceID]
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if matchesQuery(record, input.Query) && matchesFilters(record, input.Filters) {
			filtered = append(filtered, cloneRecord(record))
		}
	}
	s.mu.RUnlock()

	sortRecords(filtered, input.SortBy, input.Direction)

	total := len(filtered)
	start := input.Offset
	if start > total {
		start = total
	}
	end := total
	if input.Limit > 0 && start+input.Limit < total {
		end = start + input.Limit
	}
	return ListResult{Records: filtered[start:end], Total: total}, nil
}

func matchesQuery(record Record, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, value := range record.Params {
		if s, ok := value.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func matchesFilters(record Record, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" {
			continue
		}
		value, ok := record.Params[key]
		if !ok || fmt.Sprint(value) != want {
			return false
		}
	}
	return true
}

func sortRecords(records []Record, sortBy string, direction SortDirection) {
	if sortBy == "" {
		return
	}
	less := func(a, b Record) bool {
		return compareValues(sortValue(a, sortBy), sortValue(b, sortBy)) < 0
	}
	sort.SliceStable(records, func(i, j int) bool {
		if direction == SortDesc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}

func sortValue(record Record, sortBy string) any {
	switch sortBy {
	case "id":
		return record.ID
	case "created_at":
		return record.CreatedAt
	case "updated_at":
		return record.UpdatedAt
	default:
		return record.Params[sortBy]
	}
}

func compareValues(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if af, aok := numeric(a); aok {
		if bf, bok := numeric(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func cloneRecord(record Record) Record {
	record.Params = cloneParams(record.Params)
	return record
}

func cloneParams(params map[string]any) map[string]any {
	if params == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(params))
	for key, value := range params {
		out[key] = value
	}
	return out
}
