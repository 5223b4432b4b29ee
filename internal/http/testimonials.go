package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"school-activities-service/internal/service"
)

func (h *Handler) handleTestimonialList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "testimonial_list"

	testimonials, err := h.Testimonials.ListApproved(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(testimonials)
}

func (h *Handler) handleTestimonialSubmit(w http.ResponseWriter, r *http.Request) {
	const handlerName = "testimonial_submit"

	var req submitTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrValidation("invalid JSON"))
		return
	}

	if err := ValidateSubmitTestimonialRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	created, err := h.Testimonials.Submit(ctx, req.Author, req.Text)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	_ = json.NewEncoder(w).Encode(created)
}

func (h *Handler) handleTestimonialApprove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "testimonial_approve"

	id, err := ParseTestimonialIDParam(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	t, err := h.Testimonials.ToggleApproval(ctx, id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := approvalResponse{ID: t.ID, Approved: t.Approved}
	_ = json.NewEncoder(w).Encode(resp)
}
