// Package store provides worklog.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	entries  map[string]worklog.Entry
	rates    map[string]worklog.Rates
	requests map[string]worklog.AccessRequest
}

var _ worklog.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		entries:  make(map[string]worklog.Entry),
		rates:    make(map[string]worklog.Rates),
		requests: make(map[string]worklog.AccessRequest),
	}
}

// SaveEntry upserts an entry, computed fields included.
func (m *Memory) SaveEntry(_ context.Context, e worklog.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *Memory) GetEntry(_ context.Context, id string) (worklog.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		return worklog.Entry{}, worklog.ErrEntryNotFound
	}
	return e, nil
}

// ListEntries returns a user's entries ordered by shift date descending,
// matching the SQLite store's ordering.
func (m *Memory) ListEntries(_ context.Context, userID string) ([]worklog.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []worklog.Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := shiftDate(out[i]), shiftDate(out[j])
		if !di.Equal(dj) {
			return dj.Before(di)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out, nil
}

func shiftDate(e worklog.Entry) worklog.Day {
	switch {
	case e.Particular != nil:
		return e.Particular.Date
	case e.Tutorial != nil:
		return e.Tutorial.StartDate
	default:
		return worklog.Day{}
	}
}

func (m *Memory) DeleteEntry(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return worklog.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

// Reset drops all stored data. Exposed for the maintenance endpoint.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]worklog.Entry)
	m.rates = make(map[string]worklog.Rates)
	m.requests = make(map[string]worklog.AccessRequest)
	return nil
}

func (m *Memory) SaveRates(_ context.Context, userID string, r worklog.Rates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates[userID] = r
	return nil
}

func (m *Memory) GetRates(_ context.Context, userID string) (worklog.Rates, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rates[userID]
	if !ok {
		return worklog.Rates{}, worklog.ErrSettingsNotFound
	}
	return r, nil
}

func (m *Memory) SaveAccessRequest(_ context.Context, req worklog.AccessRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *Memory) ListAccessRequests(_ context.Context) ([]worklog.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]worklog.AccessRequest, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) SetAccessRequestStatus(_ context.Context, id string, status worklog.RequestStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return worklog.ErrAccessRequestNotFound
	}
	r.Status = status
	m.requests[id] = r
	return nil
}
