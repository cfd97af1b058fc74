package services_test

import (
	"context"
	"errors"
	"testing"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	mock_services "work_exchange/internal/services/mocks"
	mock_storage "work_exchange/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type workerFixture struct {
	workers  *mock_repositories.MockWorkerRepository
	storage  *mock_storage.MockPhotoStorage
	notifier *mock_services.MockNotifier
	service  services.WorkerService
}

func newWorkerFixture(t *testing.T) workerFixture {
	ctrl := gomock.NewController(t)

	f := workerFixture{
		workers:  mock_repositories.NewMockWorkerRepository(ctrl),
		storage:  mock_storage.NewMockPhotoStorage(ctrl),
		notifier: mock_services.NewMockNotifier(ctrl),
	}
	f.service = services.NewWorkerService(configs.App{MaxTextLength: 10}, f.workers, f.storage, f.notifier, zap.NewNop().Sugar())

	return f
}

func TestSaveProfile_NewWorkerGoesToModeration(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	draft := fsm.Draft{
		Name:            "иван петров",
		Phone:           "0501234567",
		PassportPhotoID: "file-1",
		Occupations:     []string{"painter"},
		About:           "Крашу стены двадцать лет",
		MinSalary:       50,
		Notifications:   true,
	}

	f.workers.EXPECT().GetOneByTelegramID(int64(77)).Return(nil, repositories.ErrNotFound)
	f.storage.EXPECT().SavePassport(ctx, "https://files/passport.jpg").Return("key.jpg", nil)
	f.workers.EXPECT().Create(gomock.Any()).DoAndReturn(returnWorker)
	f.notifier.EXPECT().WorkerSubmitted(gomock.Any()).Return(nil)

	worker, err := f.service.SaveProfile(ctx, services.Profile{TelegramID: 77, Username: "ivan"}, draft, "https://files/passport.jpg")

	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", worker.Name)
	assert.Equal(t, "Крашу стен", worker.About)
	assert.Equal(t, "key.jpg", worker.PassportPhotoKey)
	assert.Equal(t, models.ApprovalStatusPending, worker.Approval)
	assert.True(t, worker.IsSearching)
}

func TestSaveProfile_PassportUploadFailureIsNotFatal(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	existing := &models.Worker{ID: 5, TelegramID: 77, Approval: models.ApprovalStatusDeclined, AboutHeb: "old"}

	f.workers.EXPECT().GetOneByTelegramID(int64(77)).Return(existing, nil)
	f.storage.EXPECT().SavePassport(ctx, gomock.Any()).Return("", errors.New("s3 is down"))
	f.workers.EXPECT().Update(gomock.Any()).DoAndReturn(returnWorker)
	f.notifier.EXPECT().WorkerSubmitted(gomock.Any()).Return(nil)

	worker, err := f.service.SaveProfile(ctx, services.Profile{TelegramID: 77}, fsm.Draft{Name: "Ivan", PassportPhotoID: "file-2"}, "https://files/p.jpg")

	require.NoError(t, err)
	assert.Empty(t, worker.PassportPhotoKey)
	assert.Equal(t, "file-2", worker.PassportPhotoFileID)
	assert.Empty(t, worker.AboutHeb)
	assert.Equal(t, models.ApprovalStatusPending, worker.Approval)
}

func TestRestartProfile_ResetsApprovalAndOccupations(t *testing.T) {
	f := newWorkerFixture(t)

	worker := &models.Worker{
		ID:          5,
		Occupations: []string{"painter", "tile"},
		AboutHeb:    "צבע עם ניסיון",
		IsSearching: false,
		Approval:    models.ApprovalStatusDeclined,
	}

	f.workers.EXPECT().GetOneByTelegramID(int64(77)).Return(worker, nil)
	f.workers.EXPECT().Update(gomock.Any()).DoAndReturn(returnWorker)

	worker, err := f.service.RestartProfile(77)

	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, worker.Approval)
	assert.Empty(t, worker.Occupations)
	assert.Empty(t, worker.AboutHeb)
	assert.True(t, worker.IsSearching)
}

func TestRestartProfile_RefusesProfileUnderModeration(t *testing.T) {
	f := newWorkerFixture(t)

	f.workers.EXPECT().GetOneByTelegramID(int64(77)).
		Return(&models.Worker{ID: 5, Occupations: []string{"painter"}, Approval: models.ApprovalStatusPending}, nil)
	f.workers.EXPECT().Update(gomock.Any()).Times(0)

	worker, err := f.service.RestartProfile(77)

	assert.ErrorIs(t, err, services.ErrProfilePending)
	assert.Nil(t, worker)
}

func TestToggleSearching(t *testing.T) {
	f := newWorkerFixture(t)

	f.workers.EXPECT().GetOneByTelegramID(int64(77)).Return(&models.Worker{IsSearching: true, Approval: models.ApprovalStatusApproved}, nil)
	f.workers.EXPECT().Update(gomock.Any()).DoAndReturn(returnWorker)

	worker, err := f.service.ToggleSearching(77)

	require.NoError(t, err)
	assert.False(t, worker.IsSearching)
}

func TestToggles_RequireApprovedProfile(t *testing.T) {
	tests := []struct {
		name     string
		approval models.ApprovalStatus
		wantErr  error
	}{
		{"pending", models.ApprovalStatusPending, services.ErrProfilePending},
		{"declined", models.ApprovalStatusDeclined, services.ErrProfileInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkerFixture(t)

			f.workers.EXPECT().GetOneByTelegramID(int64(77)).
				Return(&models.Worker{IsSearching: true, Notifications: true, Approval: tt.approval}, nil).Times(2)
			f.workers.EXPECT().Update(gomock.Any()).Times(0)

			_, err := f.service.ToggleSearching(77)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = f.service.ToggleNotifications(77)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
