package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campus-conduct/drl-server/internal/export"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

// GET /reports/{periodID}/export  -> XLSX of the period's totals
func ExportPeriodHandler(store sheet.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periodID := chi.URLParam(r, "periodID")
		f, err := export.PeriodReport(r.Context(), store, periodID)
		if err != nil {
			http.Error(w, "report: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="DRL_%s.xlsx"`, periodID))
		if err := f.Write(w); err != nil {
			// headers are gone; nothing sane to send beyond logging upstream
			return
		}
	}
}
