package services_test

import (
	"strings"
	"testing"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/services"
	mock_services "work_exchange/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type reviewFixture struct {
	reviews   *mock_repositories.MockReviewRepository
	workers   *mock_repositories.MockWorkerRepository
	employers *mock_repositories.MockEmployerRepository
	notifier  *mock_services.MockNotifier
	service   services.ReviewService
}

func newReviewFixture(t *testing.T) reviewFixture {
	ctrl := gomock.NewController(t)

	f := reviewFixture{
		reviews:   mock_repositories.NewMockReviewRepository(ctrl),
		workers:   mock_repositories.NewMockWorkerRepository(ctrl),
		employers: mock_repositories.NewMockEmployerRepository(ctrl),
		notifier:  mock_services.NewMockNotifier(ctrl),
	}
	f.service = services.NewReviewService(configs.App{MaxTextLength: 20}, f.reviews, f.workers, f.employers, f.notifier, zap.NewNop().Sugar())

	return f
}

func TestSubmit_CreatesPendingReview(t *testing.T) {
	f := newReviewFixture(t)

	f.employers.EXPECT().GetOne(int64(9)).Return(&models.Employer{ID: 9}, nil)
	f.reviews.EXPECT().GetOneByParties(models.RoleWorker, int64(1), int64(9)).Return(nil, repositories.ErrNotFound)
	f.reviews.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Review) (*models.Review, error) {
		r.ID = 12
		return r, nil
	})
	f.notifier.EXPECT().ReviewSubmitted(gomock.Any()).Return(nil)

	review, err := f.service.Submit(models.RoleWorker, 1, 9, 5, "  отлично  ")

	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, review.Approval)
	assert.Equal(t, int64(1), review.WorkerID)
	assert.Equal(t, int64(9), review.EmployerID)
	assert.Equal(t, "отлично", review.Comment)
}

func TestSubmit_TruncatesLongComment(t *testing.T) {
	f := newReviewFixture(t)

	f.workers.EXPECT().GetOne(int64(1)).Return(&models.Worker{ID: 1}, nil)
	f.reviews.EXPECT().GetOneByParties(models.RoleEmployer, int64(1), int64(9)).Return(nil, repositories.ErrNotFound)
	f.reviews.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Review) (*models.Review, error) {
		return r, nil
	})
	f.notifier.EXPECT().ReviewSubmitted(gomock.Any()).Return(nil)

	review, err := f.service.Submit(models.RoleEmployer, 9, 1, 4, strings.Repeat("מ", 50))

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("מ", 20), review.Comment)
}

func TestSubmit_DuplicateIsNoop(t *testing.T) {
	f := newReviewFixture(t)

	f.workers.EXPECT().GetOne(int64(1)).Return(&models.Worker{ID: 1}, nil)
	f.reviews.EXPECT().GetOneByParties(models.RoleEmployer, int64(1), int64(9)).Return(&models.Review{ID: 3}, nil)

	review, err := f.service.Submit(models.RoleEmployer, 9, 1, 4, "")

	assert.ErrorIs(t, err, services.ErrDuplicate)
	assert.Nil(t, review)
}

func TestSubmit_DuplicateRaceIsNoop(t *testing.T) {
	f := newReviewFixture(t)

	f.workers.EXPECT().GetOne(int64(1)).Return(&models.Worker{ID: 1}, nil)
	f.reviews.EXPECT().GetOneByParties(models.RoleEmployer, int64(1), int64(9)).Return(nil, repositories.ErrNotFound)
	f.reviews.EXPECT().Create(gomock.Any()).Return(nil, repositories.ErrDuplicate)

	_, err := f.service.Submit(models.RoleEmployer, 9, 1, 4, "")

	assert.ErrorIs(t, err, services.ErrDuplicate)
}

func TestSubmit_RateOutOfRange(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Submit(models.RoleWorker, 1, 9, 6, "")

	assert.ErrorIs(t, err, services.ErrNotAllowed)
}

func TestRating_UsesCounterpartReviews(t *testing.T) {
	f := newReviewFixture(t)

	f.reviews.EXPECT().GetAverageRate(models.RoleWorker, int64(9)).Return(4.5, 2, nil)

	rating, err := f.service.Rating(models.RoleEmployer, 9)

	require.NoError(t, err)
	assert.Equal(t, services.Rating{Average: 4.5, Count: 2}, rating)
}
