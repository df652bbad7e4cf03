/*
errors.go - Centralized error types for the work log engine

PURPOSE:
  All sentinel errors in one place. The calculation and aggregation paths
  are total functions and never return errors; these sentinels belong to
  the storage boundary around them.

USAGE:
  Callers branch with errors.Is:

    rates, err := store.GetRates(ctx, userID)
    if errors.Is(err, worklog.ErrSettingsNotFound) {
        rates = worklog.Rates{} // unconfigured user earns at rate 0
    }
*/
package worklog

import "errors"

var (
	// ErrEntryNotFound is returned when a work log ID does not exist.
	ErrEntryNotFound = errors.New("work log entry not found")

	// ErrSettingsNotFound is returned when a user has no saved rates.
	ErrSettingsNotFound = errors.New("user settings not found")

	// ErrAccessRequestNotFound is returned when an access request ID does
	// not exist.
	ErrAccessRequestNotFound = errors.New("access request not found")

	// ErrUnknownEntryType is returned by input validation for a type tag
	// that is neither particular nor tutorial. The calculator itself does
	// not error on it; it returns the zero result.
	ErrUnknownEntryType = errors.New("unknown work log entry type")
)

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrSettingsNotFound) ||
		errors.Is(err, ErrAccessRequestNotFound)
}
