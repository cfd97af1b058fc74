package services

import (
	"fmt"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/pagination"
)

// Destination names one of the paginated lists a user can open.
type Destination string

const (
	DestinationAllJobs         Destination = "jobs"
	DestinationSuitableJobs    Destination = "s_jobs"
	DestinationActiveJobs      Destination = "a_jobs"
	DestinationArchiveJobs     Destination = "r_jobs"
	DestinationDeclinedJobs    Destination = "d_jobs"
	DestinationAllWorkers      Destination = "workers"
	DestinationSuitableWorkers Destination = "s_workers"
	DestinationInboxProposals  Destination = "in_p"
	DestinationOutboxProposals Destination = "out_p"
	DestinationInboxReviews    Destination = "in_r"
	DestinationOutboxReviews   Destination = "out_r"
)

var destinations = map[models.Role][]Destination{
	models.RoleWorker: {
		DestinationAllJobs,
		DestinationSuitableJobs,
		DestinationInboxProposals,
		DestinationOutboxProposals,
		DestinationInboxReviews,
		DestinationOutboxReviews,
	},
	models.RoleEmployer: {
		DestinationActiveJobs,
		DestinationArchiveJobs,
		DestinationDeclinedJobs,
		DestinationAllWorkers,
		DestinationSuitableWorkers,
		DestinationInboxProposals,
		DestinationOutboxProposals,
		DestinationInboxReviews,
		DestinationOutboxReviews,
	},
}

// Available reports whether the role can open the destination.
func (d Destination) Available(role models.Role) bool {
	for _, destination := range destinations[role] {
		if destination == d {
			return true
		}
	}
	return false
}

// Entry is one row of a listing; exactly one field is set.
type Entry struct {
	Job      *models.Job
	Worker   *models.Worker
	Proposal *models.Proposal
	Review   *models.Review
}

// ID is the id of whichever record the entry holds.
func (e Entry) ID() int64 {
	switch {
	case e.Job != nil:
		return e.Job.ID
	case e.Worker != nil:
		return e.Worker.ID
	case e.Proposal != nil:
		return e.Proposal.ID
	case e.Review != nil:
		return e.Review.ID
	}
	return 0
}

type listingService struct {
	appConfig          configs.App
	workerRepository   repositories.WorkerRepository
	jobRepository      repositories.JobRepository
	proposalRepository repositories.ProposalRepository
	reviewRepository   repositories.ReviewRepository
}

type ListingService interface {
	Page(role models.Role, partyID int64, destination Destination, page int) (pagination.Page[Entry], error)
}

func NewListingService(
	appConfig configs.App,
	workerRepository repositories.WorkerRepository,
	jobRepository repositories.JobRepository,
	proposalRepository repositories.ProposalRepository,
	reviewRepository repositories.ReviewRepository,
) ListingService {
	return &listingService{
		appConfig:          appConfig,
		workerRepository:   workerRepository,
		jobRepository:      jobRepository,
		proposalRepository: proposalRepository,
		reviewRepository:   reviewRepository,
	}
}

func (s *listingService) Page(role models.Role, partyID int64, destination Destination, page int) (pagination.Page[Entry], error) {
	if !destination.Available(role) {
		return pagination.Page[Entry]{}, fmt.Errorf("destination %q for %s: %w", destination, role, ErrNotAllowed)
	}

	entries, err := s.entries(role, partyID, destination)
	if err != nil {
		return pagination.Page[Entry]{}, fmt.Errorf("failed to list %s: %w", destination, err)
	}

	return pagination.Paginate(entries, page, s.appConfig.PerPage), nil
}

func (s *listingService) entries(role models.Role, partyID int64, destination Destination) ([]Entry, error) {
	switch destination {
	case DestinationAllJobs:
		return jobEntries(s.jobRepository.GetManyVisible())
	case DestinationSuitableJobs:
		worker, err := s.workerRepository.GetOne(partyID)
		if err != nil {
			return nil, err
		}
		return jobEntries(s.jobRepository.GetManySuitableForWorker(worker))
	case DestinationActiveJobs:
		return jobEntries(s.jobRepository.GetManyByEmployer(partyID, repositories.EmployerJobsActive))
	case DestinationArchiveJobs:
		return jobEntries(s.jobRepository.GetManyByEmployer(partyID, repositories.EmployerJobsArchive))
	case DestinationDeclinedJobs:
		return jobEntries(s.jobRepository.GetManyByEmployer(partyID, repositories.EmployerJobsDeclined))
	case DestinationAllWorkers:
		return workerEntries(s.workerRepository.GetManyListed())
	case DestinationSuitableWorkers:
		return workerEntries(s.workerRepository.GetManySuitableForEmployer(partyID))
	case DestinationInboxProposals:
		return proposalEntries(s.proposalRepository.GetMany(proposalKind(role.Counterpart()), role, partyID))
	case DestinationOutboxProposals:
		return proposalEntries(s.proposalRepository.GetMany(proposalKind(role), role, partyID))
	case DestinationInboxReviews:
		return reviewEntries(s.reviewRepository.GetMany(role.Counterpart(), role, partyID, true))
	case DestinationOutboxReviews:
		return reviewEntries(s.reviewRepository.GetMany(role, role, partyID, false))
	}

	return nil, ErrNotAllowed
}

func proposalKind(initiator models.Role) models.ProposalKind {
	if initiator == models.RoleEmployer {
		return models.ProposalKindEmployer
	}
	return models.ProposalKindWorker
}

func jobEntries(jobs []*models.Job, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(jobs))
	for _, job := range jobs {
		entries = append(entries, Entry{Job: job})
	}
	return entries, nil
}

func workerEntries(workers []*models.Worker, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(workers))
	for _, worker := range workers {
		entries = append(entries, Entry{Worker: worker})
	}
	return entries, nil
}

func proposalEntries(proposals []*models.Proposal, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(proposals))
	for _, proposal := range proposals {
		entries = append(entries, Entry{Proposal: proposal})
	}
	return entries, nil
}

func reviewEntries(reviews []*models.Review, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(reviews))
	for _, review := range reviews {
		entries = append(entries, Entry{Review: review})
	}
	return entries, nil
}
