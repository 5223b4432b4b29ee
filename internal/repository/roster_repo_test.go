package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"school-activities-service/internal/model"
	"school-activities-service/internal/repository"
)

func newTestRoster() *repository.RosterRepo {
	return repository.NewRosterRepo([]model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
	})
}

func TestRosterRepo_EnrollDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	err := repo.Enroll(ctx, "Chess Club", "kate@mergington.edu")
	assert.NoError(t, err)

	// Повторная запись того же email не проходит и не меняет ростер
	err = repo.Enroll(ctx, "Chess Club", "kate@mergington.edu")
	assert.True(t, errors.Is(err, repository.ErrAlreadyEnrolled))

	activities := repo.List(ctx)
	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "kate@mergington.edu"},
		activities["Chess Club"].Participants,
	)
}

func TestRosterRepo_EnrollUnknownActivity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	err := repo.Enroll(ctx, "Robotics Club", "kate@mergington.edu")
	assert.True(t, errors.Is(err, repository.ErrActivityNotFound))

	err = repo.Withdraw(ctx, "Robotics Club", "kate@mergington.edu")
	assert.True(t, errors.Is(err, repository.ErrActivityNotFound))
}

func TestRosterRepo_WithdrawNotEnrolled(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	err := repo.Withdraw(ctx, "Chess Club", "kate@mergington.edu")
	assert.True(t, errors.Is(err, repository.ErrNotEnrolled))

	activities := repo.List(ctx)
	assert.Len(t, activities["Chess Club"].Participants, 2)
}

func TestRosterRepo_EnrollWithdrawEnroll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	assert.NoError(t, repo.Enroll(ctx, "Math Club", "kate@mergington.edu"))
	assert.NoError(t, repo.Withdraw(ctx, "Math Club", "kate@mergington.edu"))
	assert.NoError(t, repo.Enroll(ctx, "Math Club", "kate@mergington.edu"))

	count := 0
	for _, p := range repo.List(ctx)["Math Club"].Participants {
		if p == "kate@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRosterRepo_WithdrawRemovesExactEntry(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	assert.NoError(t, repo.Withdraw(ctx, "Chess Club", "michael@mergington.edu"))

	activities := repo.List(ctx)
	assert.Equal(t, []string{"daniel@mergington.edu"}, activities["Chess Club"].Participants)
}

func TestRosterRepo_ListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newTestRoster()

	snap := repo.List(ctx)
	chess := snap["Chess Club"]
	chess.Participants[0] = "mutated@mergington.edu"
	delete(snap, "Math Club")

	// Внутреннее состояние ростера не затронуто изменениями снапшота
	fresh := repo.List(ctx)
	assert.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
	assert.Contains(t, fresh, "Math Club")
}

func TestSeedActivities(t *testing.T) {
	seed := repository.SeedActivities()
	assert.Len(t, seed, 9)

	names := make(map[string]struct{}, len(seed))
	for _, a := range seed {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Schedule)
		assert.Greater(t, a.MaxParticipants, 0)
		names[a.Name] = struct{}{}
	}
	// Имена уникальны: они служат ключами ростера
	assert.Len(t, names, 9)
}
