package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"school-activities-service/internal/model"
	"school-activities-service/internal/repository"
	"school-activities-service/internal/service"
	"school-activities-service/internal/service/mocks"
)

func TestRosterService_Enroll(t *testing.T) {
	tests := []struct {
		name         string
		activityName string
		email        string
		setupMocks   func(rr *mocks.RosterRepository)
		wantCode     string
		wantStatus   int
	}{
		{
			name:         "Success",
			activityName: "Chess Club",
			email:        "kate@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Enroll", mock.Anything, "Chess Club", "kate@mergington.edu").Return(nil)
			},
		},
		{
			name:         "Validation: empty email",
			activityName: "Chess Club",
			email:        "",
			setupMocks:   func(rr *mocks.RosterRepository) {},
			wantCode:     "VALIDATION",
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:         "Not Found: unknown activity",
			activityName: "Robotics Club",
			email:        "kate@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Enroll", mock.Anything, "Robotics Club", "kate@mergington.edu").
					Return(repository.ErrActivityNotFound)
			},
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "Domain: already enrolled",
			activityName: "Chess Club",
			email:        "michael@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Enroll", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(repository.ErrAlreadyEnrolled)
			},
			wantCode:   "ALREADY_ENROLLED",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := new(mocks.RosterRepository)
			tt.setupMocks(rr)

			svc := service.NewRosterService(rr)
			err := svc.Enroll(context.Background(), tt.activityName, tt.email)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				var appErr *service.AppError
				assert.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			}
			rr.AssertExpectations(t)
		})
	}
}

func TestRosterService_Withdraw(t *testing.T) {
	tests := []struct {
		name         string
		activityName string
		email        string
		setupMocks   func(rr *mocks.RosterRepository)
		wantCode     string
		wantStatus   int
	}{
		{
			name:         "Success",
			activityName: "Chess Club",
			email:        "michael@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Withdraw", mock.Anything, "Chess Club", "michael@mergington.edu").Return(nil)
			},
		},
		{
			name:         "Validation: empty email",
			activityName: "Chess Club",
			email:        "",
			setupMocks:   func(rr *mocks.RosterRepository) {},
			wantCode:     "VALIDATION",
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:         "Not Found: unknown activity",
			activityName: "Robotics Club",
			email:        "kate@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Withdraw", mock.Anything, "Robotics Club", "kate@mergington.edu").
					Return(repository.ErrActivityNotFound)
			},
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "Domain: not enrolled",
			activityName: "Chess Club",
			email:        "kate@mergington.edu",
			setupMocks: func(rr *mocks.RosterRepository) {
				rr.On("Withdraw", mock.Anything, "Chess Club", "kate@mergington.edu").
					Return(repository.ErrNotEnrolled)
			},
			wantCode:   "NOT_ENROLLED",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := new(mocks.RosterRepository)
			tt.setupMocks(rr)

			svc := service.NewRosterService(rr)
			err := svc.Withdraw(context.Background(), tt.activityName, tt.email)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				var appErr *service.AppError
				assert.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			}
			rr.AssertExpectations(t)
		})
	}
}

func TestRosterService_ListActivities(t *testing.T) {
	roster := map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}

	rr := new(mocks.RosterRepository)
	rr.On("List", mock.Anything).Return(roster)

	svc := service.NewRosterService(rr)
	got := svc.ListActivities(context.Background())

	assert.Equal(t, roster, got)
	rr.AssertExpectations(t)
}
