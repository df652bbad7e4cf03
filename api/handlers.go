/*
handlers.go - HTTP API handlers for the work log engine

PURPOSE:
  Exposes the work log engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the domain logic.

ENDPOINTS:
  Work logs:
    GET    /api/work-logs?userId=    List a user's work logs
    POST   /api/work-logs            Create (runs the calculator)
    GET    /api/work-logs/{id}       Get one work log
    PUT    /api/work-logs/{id}       Edit (re-runs the calculator)
    DELETE /api/work-logs/{id}       Delete

  Settings:
    GET    /api/users/{id}/settings  Get rates (seeded defaults if absent)
    PUT    /api/users/{id}/settings  Save rates

  Summary:
    GET    /api/users/{id}/summary   All-time stats + monthly buckets

  Access requests:
    POST   /api/access-requests             Submit a sign-up request
    GET    /api/access-requests             List all requests
    POST   /api/access-requests/{id}/approve
    POST   /api/access-requests/{id}/reject

LIFECYCLE RULE:
  The calculator runs exactly once per create/edit, synchronously, before
  the entry is persisted. Nothing ever recalculates a stored amount; the
  summary endpoints only fold stored values.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. The access-request records are data the
  original deployment's identity provider consumed; identity itself is
  out of scope here.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/factory"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store worklog.Store
	Log   zerolog.Logger
}

// NewHandler creates a new handler with the given store.
func NewHandler(store worklog.Store, log zerolog.Logger) *Handler {
	return &Handler{Store: store, Log: log}
}

// resetter is the optional dev-only capability of a store.
type resetter interface {
	Reset(ctx context.Context) error
}

// =============================================================================
// WORK LOG HANDLERS
// =============================================================================

// ListWorkLogs returns a user's work logs, most recent first.
func (h *Handler) ListWorkLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId query parameter is required", nil)
		return
	}

	entries, err := h.Store.ListEntries(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list work logs", err)
		return
	}

	dtos := make([]WorkLogDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toWorkLogDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateWorkLog creates a work log entry. The calculator runs before the
// entry is persisted, so the stored record already carries its amount.
func (h *Handler) CreateWorkLog(w http.ResponseWriter, r *http.Request) {
	var req SaveWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := req.toEntry(newID())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid work log", err)
		return
	}
	entry.CreatedAt = time.Now().UTC()

	saved, err := h.calculateAndSave(r, entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save work log", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkLogDTO(saved))
}

// GetWorkLog returns one work log entry.
func (h *Handler) GetWorkLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.Store.GetEntry(r.Context(), id)
	if worklog.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Work log not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load work log", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkLogDTO(entry))
}

// UpdateWorkLog replaces a work log entry and recomputes its amount.
func (h *Handler) UpdateWorkLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.Store.GetEntry(r.Context(), id)
	if worklog.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Work log not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load work log", err)
		return
	}

	var req SaveWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := req.toEntry(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid work log", err)
		return
	}
	entry.CreatedAt = existing.CreatedAt

	saved, err := h.calculateAndSave(r, entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save work log", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkLogDTO(saved))
}

// DeleteWorkLog removes a work log entry.
func (h *Handler) DeleteWorkLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteEntry(r.Context(), id)
	if worklog.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Work log not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete work log", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// calculateAndSave runs the earnings calculator under the user's rates and
// persists the merged entry. A user without saved settings calculates at
// zero rates; the customary defaults are a seeding concern, not a
// calculation fallback.
func (h *Handler) calculateAndSave(r *http.Request, entry worklog.Entry) (worklog.Entry, error) {
	rates, err := h.Store.GetRates(r.Context(), entry.UserID)
	if errors.Is(err, worklog.ErrSettingsNotFound) {
		rates = worklog.Rates{}
	} else if err != nil {
		return worklog.Entry{}, err
	}

	entry.Computed = worklog.Calculate(entry, rates)

	if err := h.Store.SaveEntry(r.Context(), entry); err != nil {
		return worklog.Entry{}, err
	}

	h.Log.Debug().
		Str("entry", entry.ID).
		Str("type", string(entry.Type)).
		Str("amount", entry.Computed.Amount.Value.String()).
		Msg("work log saved")
	return entry, nil
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns a user's rates. A user who never saved settings gets
// the seeded defaults, matching what the profile form pre-fills.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	rates, err := h.Store.GetRates(r.Context(), userID)
	if errors.Is(err, worklog.ErrSettingsNotFound) {
		rates = factory.DefaultRates()
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(userID, rates))
}

// SaveSettings upserts a user's rates.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Store.SaveRates(r.Context(), userID, dto.toRates()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(userID, dto.toRates()))
}

// =============================================================================
// SUMMARY HANDLER
// =============================================================================

// GetSummary returns all-time statistics plus the per-month breakdown for
// a user. Everything is derived from stored amounts; nothing recomputes.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	entries, err := h.Store.ListEntries(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load work logs", err)
		return
	}

	total := worklog.Aggregate(entries, worklog.AllTime())
	buckets := worklog.BucketByMonth(entries)

	months := make([]MonthSummaryDTO, len(buckets))
	for i, b := range buckets {
		entryDTOs := make([]WorkLogDTO, len(b.Entries))
		for j, e := range b.Entries {
			entryDTOs[j] = toWorkLogDTO(e)
		}
		months[i] = MonthSummaryDTO{
			Month:   b.Month,
			Stats:   toStatsDTO(b.Stats),
			Entries: entryDTOs,
		}
	}

	writeJSON(w, http.StatusOK, SummaryDTO{
		Total:  toStatsDTO(total),
		Months: months,
	})
}

// =============================================================================
// ACCESS REQUEST HANDLERS
// =============================================================================

// SubmitAccessRequest records a sign-up request in pending state.
func (h *Handler) SubmitAccessRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required", nil)
		return
	}

	ar := worklog.AccessRequest{
		ID:        newID(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    worklog.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.SaveAccessRequest(r.Context(), ar); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save access request", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccessRequestDTO(ar))
}

// ListAccessRequests returns all access requests.
func (h *Handler) ListAccessRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Store.ListAccessRequests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list access requests", err)
		return
	}

	dtos := make([]AccessRequestDTO, len(requests))
	for i, ar := range requests {
		dtos[i] = toAccessRequestDTO(ar)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ApproveAccessRequest marks a request approved.
func (h *Handler) ApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	h.setAccessRequestStatus(w, r, worklog.StatusApproved)
}

// RejectAccessRequest marks a request rejected.
func (h *Handler) RejectAccessRequest(w http.ResponseWriter, r *http.Request) {
	h.setAccessRequestStatus(w, r, worklog.StatusRejected)
}

func (h *Handler) setAccessRequestStatus(w http.ResponseWriter, r *http.Request, status worklog.RequestStatus) {
	id := chi.URLParam(r, "id")

	err := h.Store.SetAccessRequestStatus(r.Context(), id, status)
	if worklog.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Access request not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update access request", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
}

// =============================================================================
// DEV HANDLERS
// =============================================================================

// ResetDatabase wipes all data. Only available when the store supports it.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	rs, ok := h.Store.(resetter)
	if !ok {
		writeError(w, http.StatusNotImplemented, "Reset not supported by this store", nil)
		return
	}
	if err := rs.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.Log.Warn().Msg("database reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// newID generates a sortable unique identifier: UTC timestamp plus a
// random suffix.
func newID() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102150405"), hex.EncodeToString(suffix))
}
