package services_test

import (
	"testing"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listingFixture struct {
	workers   *mock_repositories.MockWorkerRepository
	jobs      *mock_repositories.MockJobRepository
	proposals *mock_repositories.MockProposalRepository
	reviews   *mock_repositories.MockReviewRepository
	service   services.ListingService
}

func newListingFixture(t *testing.T) listingFixture {
	ctrl := gomock.NewController(t)

	f := listingFixture{
		workers:   mock_repositories.NewMockWorkerRepository(ctrl),
		jobs:      mock_repositories.NewMockJobRepository(ctrl),
		proposals: mock_repositories.NewMockProposalRepository(ctrl),
		reviews:   mock_repositories.NewMockReviewRepository(ctrl),
	}
	f.service = services.NewListingService(configs.App{PerPage: 5}, f.workers, f.jobs, f.proposals, f.reviews)

	return f
}

func TestPage_SuitableJobsForWorker(t *testing.T) {
	f := newListingFixture(t)

	worker := &models.Worker{ID: 1, Occupations: []string{"painter"}, MinSalary: 40, IsSearching: true, Approval: models.ApprovalStatusApproved}
	job := &models.Job{ID: 2, Occupations: []string{"painter", "tile"}, MinSalary: 50, IsActive: true, Approval: models.ApprovalStatusApproved}

	f.workers.EXPECT().GetOne(int64(1)).Return(worker, nil)
	f.jobs.EXPECT().GetManySuitableForWorker(worker).Return([]*models.Job{job}, nil)

	page, err := f.service.Page(models.RoleWorker, 1, services.DestinationSuitableJobs, 1)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(2), page.Items[0].ID())
	assert.True(t, worker.MatchesJob(job))
}

func TestPage_ClampsToLastPage(t *testing.T) {
	f := newListingFixture(t)

	workers := make([]*models.Worker, 7)
	for i := range workers {
		workers[i] = &models.Worker{ID: int64(i + 1)}
	}
	f.workers.EXPECT().GetManyListed().Return(workers, nil)

	page, err := f.service.Page(models.RoleEmployer, 9, services.DestinationAllWorkers, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(6), page.Items[0].ID())
}

func TestPage_InboxProposalsAreCounterpartInitiated(t *testing.T) {
	f := newListingFixture(t)

	f.proposals.EXPECT().GetMany(models.ProposalKindEmployer, models.RoleWorker, int64(1)).Return([]*models.Proposal{{ID: 4}}, nil)

	page, err := f.service.Page(models.RoleWorker, 1, services.DestinationInboxProposals, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Items[0].ID())
}

func TestPage_InboxReviewsOnlyApproved(t *testing.T) {
	f := newListingFixture(t)

	f.reviews.EXPECT().GetMany(models.RoleWorker, models.RoleEmployer, int64(9), true).Return([]*models.Review{}, nil)

	page, err := f.service.Page(models.RoleEmployer, 9, services.DestinationInboxReviews, 1)

	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
}

func TestPage_DestinationOfOtherRole(t *testing.T) {
	f := newListingFixture(t)

	_, err := f.service.Page(models.RoleWorker, 1, services.DestinationAllWorkers, 1)

	assert.ErrorIs(t, err, services.ErrNotAllowed)
}
