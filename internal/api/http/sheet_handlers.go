package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/campus-conduct/drl-server/internal/criteria"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

type saveSheetReq struct {
	Tiers  map[string]map[string]float64 `json:"tiers"`
	Proofs map[string]string             `json:"proofs,omitempty"`
}

type saveSheetResp struct {
	Sheet    sheet.Sheet        `json:"sheet"`
	Warnings []criteria.Warning `json:"warnings,omitempty"`
}

func decodeSaveInput(r *http.Request) (sheet.SaveInput, error) {
	var req saveSheetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return sheet.SaveInput{}, fmt.Errorf("bad json: %w", err)
	}
	in := sheet.SaveInput{Proofs: req.Proofs}
	if len(req.Tiers) > 0 {
		in.Tiers = make(map[sheet.Tier]map[string]float64, len(req.Tiers))
	}
	for name, m := range req.Tiers {
		tier := sheet.Tier(name)
		switch tier {
		case sheet.TierSelf, sheet.TierClass, sheet.TierBch, sheet.TierFaculty:
			in.Tiers[tier] = m
		default:
			return sheet.SaveInput{}, fmt.Errorf("unknown tier %q", name)
		}
	}
	return in, nil
}

// GET /sheets/{studentID}/{periodID}
func ViewSheetHandler(svc *sheet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.View(r.Context(), actorFrom(r),
			chi.URLParam(r, "studentID"), chi.URLParam(r, "periodID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, v)
	}
}

// PUT /sheets/{studentID}/{periodID}  (draft save; status unchanged)
func SaveSheetHandler(svc *sheet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeSaveInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		actor := actorFrom(r)
		sh, warns, err := svc.Save(r.Context(), actor,
			chi.URLParam(r, "studentID"), chi.URLParam(r, "periodID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, saveSheetResp{Sheet: sheet.Redacted(sh, actor.Role), Warnings: warns})
	}
}

// POST /sheets/{studentID}/{periodID}/submit
func SubmitSheetHandler(svc *sheet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeSaveInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		actor := actorFrom(r)
		sh, warns, err := svc.Submit(r.Context(), actor,
			chi.URLParam(r, "studentID"), chi.URLParam(r, "periodID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, saveSheetResp{Sheet: sheet.Redacted(sh, actor.Role), Warnings: warns})
	}
}

// POST /sheets/{studentID}/{periodID}/unsubmit
func UnsubmitSheetHandler(svc *sheet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		sh, err := svc.Unsubmit(r.Context(), actor,
			chi.URLParam(r, "studentID"), chi.URLParam(r, "periodID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, sheet.Redacted(sh, actor.Role))
	}
}

// GET /sheets?period=&student=&status=&limit=&offset=
func ListSheetsHandler(svc *sheet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := sheet.ListOpts{
			PeriodID:  strings.TrimSpace(q.Get("period")),
			StudentID: strings.TrimSpace(q.Get("student")),
			Status:    sheet.Status(q.Get("status")),
		}
		if n, err := strconv.Atoi(q.Get("limit")); err == nil {
			opts.Limit = n
		}
		if n, err := strconv.Atoi(q.Get("offset")); err == nil {
			opts.Offset = n
		}
		sheets, err := svc.List(r.Context(), actorFrom(r), opts)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, sheets)
	}
}
