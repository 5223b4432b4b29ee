package http

import (
	"strconv"

	"school-activities-service/internal/service"
)

// Activities

// ValidateEmailQuery Валидация query-параметра email для signup/unregister
func ValidateEmailQuery(email string) error {
	if email == "" {
		return service.ErrValidation("email query parameter is required")
	}
	return nil
}

// Testimonials

// ValidateSubmitTestimonialRequest POST /testimonials — тело запроса
func ValidateSubmitTestimonialRequest(req submitTestimonialRequest) error {
	if req.Author == "" {
		return service.ErrValidation("author is required")
	}
	if req.Text == "" {
		return service.ErrValidation("text is required")
	}
	return nil
}

// ParseTestimonialIDParam Разбор path-параметра id для /testimonials/{id}/approve
func ParseTestimonialIDParam(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.ErrValidation("id must be an integer")
	}
	return id, nil
}
