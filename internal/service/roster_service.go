// Package service содержит бизнес-логику ростера активностей и модерации отзывов.
package service

import (
	"context"
	"errors"

	"school-activities-service/internal/model"
	"school-activities-service/internal/repository"
)

// RosterRepository описывает контракт хранилища ростера для бизнес-слоя.
type RosterRepository interface {
	List(ctx context.Context) map[string]model.Activity
	Enroll(ctx context.Context, activityName, email string) error
	Withdraw(ctx context.Context, activityName, email string) error
}

// RosterService содержит бизнес-логику записи и отписки студентов.
type RosterService struct {
	repo RosterRepository
}

// NewRosterService создаёт новый сервис для операций над ростером.
func NewRosterService(repo RosterRepository) *RosterService {
	return &RosterService{repo: repo}
}

// ListActivities возвращает снапшот всех активностей с их участниками.
func (s *RosterService) ListActivities(ctx context.Context) map[string]model.Activity {
	return s.repo.List(ctx)
}

// Enroll записывает студента на активность. Повторная запись того же email
// возвращает доменную ошибку ALREADY_ENROLLED.
func (s *RosterService) Enroll(ctx context.Context, activityName, email string) error {
	if activityName == "" {
		return ErrValidation("activity name is required")
	}
	if email == "" {
		return ErrValidation("email is required")
	}

	if err := s.repo.Enroll(ctx, activityName, email); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return ErrNotFound("activity not found")
		}
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return ErrDomain("ALREADY_ENROLLED", "student is already signed up for this activity")
		}
		return &AppError{
			Code:    "INTERNAL",
			Message: "failed to sign up",
			Status:  500,
			Err:     err,
		}
	}
	return nil
}

// Withdraw отписывает студента от активности. Если email не записан,
// возвращает доменную ошибку NOT_ENROLLED.
func (s *RosterService) Withdraw(ctx context.Context, activityName, email string) error {
	if activityName == "" {
		return ErrValidation("activity name is required")
	}
	if email == "" {
		return ErrValidation("email is required")
	}

	if err := s.repo.Withdraw(ctx, activityName, email); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return ErrNotFound("activity not found")
		}
		if errors.Is(err, repository.ErrNotEnrolled) {
			return ErrDomain("NOT_ENROLLED", "student is not signed up for this activity")
		}
		return &AppError{
			Code:    "INTERNAL",
			Message: "failed to unregister",
			Status:  500,
			Err:     err,
		}
	}
	return nil
}
