package repository

import (
	"context"
	"sync"

	"school-activities-service/internal/model"
)

// RosterRepo хранит ростер активностей в памяти процесса.
// Состояние живёт до перезапуска: при старте ростер заполняется
// сидовыми данными заново, записи прошлого запуска теряются.
type RosterRepo struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewRosterRepo создаёт ростер из переданного набора активностей.
func NewRosterRepo(seed []model.Activity) *RosterRepo {
	activities := make(map[string]*model.Activity, len(seed))
	for _, a := range seed {
		a.Participants = append([]string(nil), a.Participants...)
		activities[a.Name] = &a
	}
	return &RosterRepo{activities: activities}
}

// List возвращает снапшот всего ростера. Списки участников копируются,
// чтобы вызывающий не мог менять внутреннее состояние.
func (r *RosterRepo) List(ctx context.Context) map[string]model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		snap := *a
		snap.Participants = append([]string(nil), a.Participants...)
		res[name] = snap
	}
	return res
}

// Enroll добавляет email в конец списка участников активности
// (порядок списка — порядок записи). Вместимость max_participants
// не проверяется: лимит носит справочный характер.
func (r *RosterRepo) Enroll(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyEnrolled
		}
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Withdraw удаляет email из списка участников активности.
func (r *RosterRepo) Withdraw(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}

	return ErrNotEnrolled
}
