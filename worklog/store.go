/*
store.go - Persistence interfaces for entries, rates, and access requests

PURPOSE:
  Defines the boundary between the pure engine and whatever database backs
  it. The engine itself never touches a store: the calling layer loads
  entries and rates, invokes Calculate once per create/edit, and persists
  the merged result. Aggregation reads stored amounts and nothing else.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite store
  - worklog/store: In-memory store for tests and dry runs
*/
package worklog

import "context"

// EntryStore persists work log entries. SaveEntry is an upsert: the entry,
// including its Computed fields, replaces any previous version wholesale.
type EntryStore interface {
	SaveEntry(ctx context.Context, e Entry) error

	// GetEntry returns ErrEntryNotFound for an unknown ID.
	GetEntry(ctx context.Context, id string) (Entry, error)

	// ListEntries returns a user's entries, most recent shift first.
	ListEntries(ctx context.Context, userID string) ([]Entry, error)

	DeleteEntry(ctx context.Context, id string) error
}

// SettingsStore persists per-user rates.
type SettingsStore interface {
	SaveRates(ctx context.Context, userID string, r Rates) error

	// GetRates returns ErrSettingsNotFound when the user was never seeded.
	GetRates(ctx context.Context, userID string) (Rates, error)
}

// AccessStore persists sign-up approval records.
type AccessStore interface {
	SaveAccessRequest(ctx context.Context, req AccessRequest) error
	ListAccessRequests(ctx context.Context) ([]AccessRequest, error)

	// SetAccessRequestStatus returns ErrAccessRequestNotFound for an
	// unknown ID.
	SetAccessRequestStatus(ctx context.Context, id string, status RequestStatus) error
}

// Store is the full persistence surface the server wires together.
type Store interface {
	EntryStore
	SettingsStore
	AccessStore
}
