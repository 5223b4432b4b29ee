package service

import (
	"context"
	"errors"
	"time"

	"school-activities-service/internal/model"
	"school-activities-service/internal/repository"
)

// TestimonialRepository описывает контракт хранилища отзывов для бизнес-слоя.
type TestimonialRepository interface {
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	Insert(ctx context.Context, t model.Testimonial) (model.Testimonial, error)
	ToggleApproval(ctx context.Context, id int64) (model.Testimonial, error)
}

// TestimonialService содержит бизнес-логику подачи и модерации отзывов.
type TestimonialService struct {
	repo TestimonialRepository
}

// NewTestimonialService создаёт новый сервис для операций над отзывами.
func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// ListApproved возвращает одобренные отзывы, новые первыми.
func (s *TestimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	res, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list testimonials",
			Status:  500,
			Err:     err,
		}
	}
	return res, nil
}

// Submit создаёт новый отзыв: approved=false, created_at — текущее время UTC.
// Пустые author и text отклоняются как ошибка валидации.
func (s *TestimonialService) Submit(ctx context.Context, author, text string) (model.Testimonial, error) {
	if author == "" {
		return model.Testimonial{}, ErrValidation("author is required")
	}
	if text == "" {
		return model.Testimonial{}, ErrValidation("text is required")
	}

	t := model.Testimonial{
		Author:    author,
		Text:      text,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, t)
	if err != nil {
		return model.Testimonial{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to submit testimonial",
			Status:  500,
			Err:     err,
		}
	}
	return created, nil
}

// ToggleApproval переключает флаг approved отзыва (true→false, false→true)
// и возвращает его обновлённое состояние.
func (s *TestimonialService) ToggleApproval(ctx context.Context, id int64) (model.Testimonial, error) {
	t, err := s.repo.ToggleApproval(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return model.Testimonial{}, ErrNotFound("testimonial not found")
		}
		return model.Testimonial{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to toggle approval",
			Status:  500,
			Err:     err,
		}
	}
	return t, nil
}
