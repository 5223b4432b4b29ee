package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// activityNameParam достаёт path-параметр name. Имена активностей содержат
// пробелы, поэтому chi может вернуть сегмент в percent-encoded виде.
func activityNameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handler) handleActivityList(w http.ResponseWriter, r *http.Request) {
	activities := h.Roster.ListActivities(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(activities)
}

func (h *Handler) handleActivitySignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	name := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Roster.Enroll(ctx, name, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := messageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleActivityUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	name := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Roster.Withdraw(ctx, name, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := messageResponse{Message: fmt.Sprintf("Unregistered %s from %s", email, name)}
	_ = json.NewEncoder(w).Encode(resp)
}
