package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog/store"
)

func particularEntry(id, userID string, date worklog.Day, createdAt time.Time) worklog.Entry {
	return worklog.Entry{
		ID:         id,
		UserID:     userID,
		Type:       worklog.EntryParticular,
		Particular: &worklog.Particular{Date: date, Hours: decimal.NewFromInt(2)},
		CreatedAt:  createdAt,
	}
}

func TestMemory_EntryLifecycle(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	e := particularEntry("e1", "alice", worklog.NewDay(2023, time.March, 10), time.Now())
	e.Computed = worklog.Computed{Amount: worklog.NewAmount(20, worklog.UnitEuros)}

	require.NoError(t, m.SaveEntry(ctx, e))

	got, err := m.GetEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	assert.True(t, got.Computed.Amount.Value.Equal(decimal.NewFromInt(20)))

	// Upsert replaces in place.
	e.Description = "evening session"
	require.NoError(t, m.SaveEntry(ctx, e))
	got, err = m.GetEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "evening session", got.Description)

	require.NoError(t, m.DeleteEntry(ctx, "e1"))
	_, err = m.GetEntry(ctx, "e1")
	assert.True(t, worklog.IsNotFound(err))
}

func TestMemory_GetEntry_NotFound(t *testing.T) {
	_, err := store.NewMemory().GetEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, worklog.ErrEntryNotFound)
}

func TestMemory_DeleteEntry_NotFound(t *testing.T) {
	err := store.NewMemory().DeleteEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, worklog.ErrEntryNotFound)
}

func TestMemory_ListEntries_OrderedAndScopedToUser(t *testing.T) {
	// GIVEN: Entries for two users with mixed dates
	ctx := context.Background()
	m := store.NewMemory()
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.SaveEntry(ctx, particularEntry("old", "alice", worklog.NewDay(2023, time.January, 5), base)))
	require.NoError(t, m.SaveEntry(ctx, particularEntry("new", "alice", worklog.NewDay(2023, time.March, 5), base)))
	require.NoError(t, m.SaveEntry(ctx, worklog.Entry{
		ID: "stay", UserID: "alice", Type: worklog.EntryTutorial,
		Tutorial:  &worklog.Tutorial{StartDate: worklog.NewDay(2023, time.February, 1), EndDate: worklog.NewDay(2023, time.February, 3)},
		CreatedAt: base,
	}))
	require.NoError(t, m.SaveEntry(ctx, particularEntry("other", "bob", worklog.NewDay(2023, time.June, 1), base)))

	// WHEN: Listing alice's entries
	got, err := m.ListEntries(ctx, "alice")
	require.NoError(t, err)

	// THEN: Newest shift first, bob's entry absent
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "stay", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
}

func TestMemory_ListEntries_TiesBreakOnCreatedAt(t *testing.T) {
	// GIVEN: Two entries on the same shift date
	ctx := context.Background()
	m := store.NewMemory()
	d := worklog.NewDay(2023, time.March, 10)
	t0 := time.Date(2023, time.March, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, m.SaveEntry(ctx, particularEntry("first", "alice", d, t0)))
	require.NoError(t, m.SaveEntry(ctx, particularEntry("second", "alice", d, t0.Add(time.Hour))))

	got, err := m.ListEntries(ctx, "alice")
	require.NoError(t, err)

	// THEN: Most recently created first
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].ID)
}

func TestMemory_Rates(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	_, err := m.GetRates(ctx, "alice")
	assert.ErrorIs(t, err, worklog.ErrSettingsNotFound)

	r := worklog.Rates{HourlyRate: decimal.NewFromInt(12), IsGross: true}
	require.NoError(t, m.SaveRates(ctx, "alice", r))

	got, err := m.GetRates(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.HourlyRate.Equal(decimal.NewFromInt(12)))
	assert.True(t, got.IsGross)

	// Upsert
	r.HourlyRate = decimal.NewFromInt(15)
	require.NoError(t, m.SaveRates(ctx, "alice", r))
	got, err = m.GetRates(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.HourlyRate.Equal(decimal.NewFromInt(15)))
}

func TestMemory_AccessRequests(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	t0 := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.SaveAccessRequest(ctx, worklog.AccessRequest{
		ID: "r2", Email: "late@example.com", Status: worklog.StatusPending, CreatedAt: t0.Add(time.Hour),
	}))
	require.NoError(t, m.SaveAccessRequest(ctx, worklog.AccessRequest{
		ID: "r1", Email: "early@example.com", Status: worklog.StatusPending, CreatedAt: t0,
	}))

	got, err := m.ListAccessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)

	require.NoError(t, m.SetAccessRequestStatus(ctx, "r1", worklog.StatusApproved))
	got, err = m.ListAccessRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, worklog.StatusApproved, got[0].Status)

	err = m.SetAccessRequestStatus(ctx, "missing", worklog.StatusRejected)
	assert.ErrorIs(t, err, worklog.ErrAccessRequestNotFound)
}

func TestMemory_Reset(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	require.NoError(t, m.SaveEntry(ctx, particularEntry("e1", "alice", worklog.NewDay(2023, time.March, 10), time.Now())))
	require.NoError(t, m.SaveRates(ctx, "alice", worklog.Rates{HourlyRate: decimal.NewFromInt(10)}))
	require.NoError(t, m.SaveAccessRequest(ctx, worklog.AccessRequest{ID: "r1", Status: worklog.StatusPending}))

	require.NoError(t, m.Reset(ctx))

	entries, err := m.ListEntries(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = m.GetRates(ctx, "alice")
	assert.ErrorIs(t, err, worklog.ErrSettingsNotFound)
	reqs, err := m.ListAccessRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}
