package handler

import (
	"net/http"
	"strconv"

	"github.com/hexplot/mergefarm/internal/eventlog"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 256
)

// RecentEventsResponse carries the most recent journal entries, oldest first
type RecentEventsResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// HandleRecentEvents returns recent game events from the in-memory journal
func HandleRecentEvents(journal *eventlog.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			limit = n
		}
		if limit > maxRecentLimit {
			limit = maxRecentLimit
		}

		entries := journal.Recent(limit)
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, RecentEventsResponse{Events: entries})
	}
}
