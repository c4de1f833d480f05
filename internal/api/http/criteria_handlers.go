package http

import (
	"net/http"

	"github.com/campus-conduct/drl-server/internal/criteria"
)

// GET /criteria  -> the rubric, sectioned, in form order
func CatalogHandler(c *criteria.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"groups": c.Groups()})
	}
}
