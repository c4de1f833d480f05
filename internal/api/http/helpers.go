package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "github.com/campus-conduct/drl-server/internal/auth/middleware"
	"github.com/campus-conduct/drl-server/internal/criteria"
	"github.com/campus-conduct/drl-server/internal/rbac"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

// actorFrom builds the explicit actor for core calls from what the JWT
// middleware put into the request context.
func actorFrom(r *http.Request) sheet.Actor {
	ctx := r.Context()
	return sheet.Actor{
		ID:      authmw.SubjectFromContext(ctx),
		Role:    rbac.RoleFromContext(ctx),
		ClassID: authmw.ClassFromContext(ctx),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps core errors onto HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	var ve *criteria.ValidationError
	var te *sheet.IllegalTransitionError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.As(err, &te):
		http.Error(w, te.Error(), http.StatusConflict)
	case errors.Is(err, sheet.ErrLocked):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, sheet.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, sheet.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
