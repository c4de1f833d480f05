package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campus-conduct/drl-server/internal/period"
)

type periodReq struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

func (pr periodReq) toPeriod() (period.Period, error) {
	p := period.Period{ID: strings.TrimSpace(pr.ID), Name: strings.TrimSpace(pr.Name), IsDefault: pr.IsDefault}
	var err error
	if p.StartDate, err = parseDate(pr.StartDate); err != nil {
		return period.Period{}, err
	}
	if p.EndDate, err = parseDate(pr.EndDate); err != nil {
		return period.Period{}, err
	}
	return p, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	// the form sends plain dates; accept full timestamps too
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// GET /periods
func ListPeriodsHandler(store period.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, periods)
	}
}

// POST /periods and PUT /periods/{id} (create or replace; admin only)
func PutPeriodHandler(store period.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req periodReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if id := chi.URLParam(r, "id"); id != "" {
			req.ID = id
		}
		p, err := req.toPeriod()
		if err != nil {
			http.Error(w, "bad date: "+err.Error(), http.StatusBadRequest)
			return
		}
		if p.ID == "" || p.Name == "" {
			http.Error(w, "id and name required", http.StatusBadRequest)
			return
		}
		if err := store.Put(r.Context(), p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, p)
	}
}

// DELETE /periods/{id} (admin only)
func DeletePeriodHandler(store period.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
