package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"school-activities-service/internal/model"
	"school-activities-service/internal/service"
)

// RosterService описывает контракт сервиса ростера для HTTP-слоя.
type RosterService interface {
	ListActivities(ctx context.Context) map[string]model.Activity
	Enroll(ctx context.Context, activityName, email string) error
	Withdraw(ctx context.Context, activityName, email string) error
}

// TestimonialService описывает контракт сервиса отзывов для HTTP-слоя.
type TestimonialService interface {
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	Submit(ctx context.Context, author, text string) (model.Testimonial, error)
	ToggleApproval(ctx context.Context, id int64) (model.Testimonial, error)
}

type Handler struct {
	Roster       RosterService
	Testimonials TestimonialService
	StaticDir    string
	Log          *slog.Logger
}

func NewHandler(roster RosterService, testimonials TestimonialService, staticDir string, log *slog.Logger) *Handler {
	return &Handler{
		Roster:       roster,
		Testimonials: testimonials,
		StaticDir:    staticDir,
		Log:          log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Фронтенд — браузерное приложение, поэтому CORS открыт для API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleRoot)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticDir))))

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivityList)
		r.Post("/{name}/signup", h.handleActivitySignup)
		r.Delete("/{name}/unregister", h.handleActivityUnregister)
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", h.handleTestimonialList)
		r.Post("/", h.handleTestimonialSubmit)
		r.Put("/{id}/approve", h.handleTestimonialApprove)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
