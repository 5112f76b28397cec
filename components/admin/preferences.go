package admin

import (
	"context"
	"sync"
)

// InMemoryPreferenceStore keeps list preferences per viewer and resource.
type InMemoryPreferenceStore struct {
	mu   sync.RWMutex
	data map[string]ListPreferences
}

// NewInMemoryPreferenceStore builds an empty preference store.
func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{data: make(map[string]ListPreferences)}
}

// ListPreferences returns the saved preferences, or the zero value when the
// viewer has none.
func (s *InMemoryPreferenceStore) ListPreferences(ctx context.Context, viewer ViewerContext, resourceID string) (ListPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePreferences(s.data[preferenceKey(viewer, resourceID)]), nil
}

// SaveListPreferences stores preferences keyed by viewer and resource.
func (s *InMemoryPreferenceStore) SaveListPreferences(ctx context.Context, viewer ViewerContext, resourceID string, prefs ListPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[preferenceKey(viewer, resourceID)] = clonePreferences(prefs)
	return nil
}

func preferenceKey(viewer ViewerContext, resourceID string) string {
	return viewer.UserID + "::" + resourceID
}

// normalizePreferences clamps paging and copies the slices so callers cannot
// mutate stored state.
func normalizePreferences(prefs ListPreferences) ListPreferences {
	if prefs.PerPage < 0 {
		prefs.PerPage = 0
	}
	if prefs.PerPage > MaxPerPage {
		prefs.PerPage = MaxPerPage
	}
	if prefs.Direction != string(SortAsc) && prefs.Direction != string(SortDesc) {
		prefs.Direction = ""
	}
	return clonePreferences(prefs)
}

func clonePreferences(prefs ListPreferences) ListPreferences {
	if prefs.ColumnOrder != nil {
		order := make([]string, len(prefs.ColumnOrder))
		copy(order, prefs.ColumnOrder)
		prefs.ColumnOrder = order
	}
	if prefs.HiddenColumns != nil {
		hidden := make([]string, len(prefs.HiddenColumns))
		copy(hidden, prefs.HiddenColumns)
		prefs.HiddenColumns = hidden
	}
	return prefs
}
