package services

import (
	"errors"
	"fmt"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

type proposalService struct {
	proposalRepository repositories.ProposalRepository
	jobRepository      repositories.JobRepository
	workerRepository   repositories.WorkerRepository
	notifier           Notifier
	logger             *zap.SugaredLogger
}

type ProposalService interface {
	// ProposeToJob returns the existing proposal for the pair, or a new one and created=true.
	ProposeToJob(worker *models.Worker, jobID int64) (proposal *models.Proposal, created bool, err error)
	ProposeToWorker(employer *models.Employer, workerID int64) (proposal *models.Proposal, created bool, err error)
	Resend(proposalID int64, initiator models.Role, partyID int64) (*models.Proposal, error)
	Respond(proposalID int64, recipient models.Role, partyID int64, accept bool) (*models.Proposal, error)
	// Get returns a proposal the party takes part in.
	Get(proposalID int64, role models.Role, partyID int64) (*models.Proposal, error)
}

func NewProposalService(
	proposalRepository repositories.ProposalRepository,
	jobRepository repositories.JobRepository,
	workerRepository repositories.WorkerRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
) ProposalService {
	return &proposalService{
		proposalRepository: proposalRepository,
		jobRepository:      jobRepository,
		workerRepository:   workerRepository,
		notifier:           notifier,
		logger:             logger,
	}
}

func (s *proposalService) ProposeToJob(worker *models.Worker, jobID int64) (*models.Proposal, bool, error) {
	job, err := s.jobRepository.GetOne(jobID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get job: %w", err)
	}

	existing, err := s.proposalRepository.GetOneByWorkerAndJob(worker.ID, job.ID)
	if err == nil {
		return existing, false, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get proposal: %w", err)
	}

	proposal := &models.Proposal{
		Kind:       models.ProposalKindWorker,
		WorkerID:   worker.ID,
		EmployerID: job.EmployerID,
		JobID:      job.ID,
		Status:     gate(job.IsVisible()),
	}

	proposal, err = s.proposalRepository.Create(proposal)
	if errors.Is(err, repositories.ErrDuplicate) {
		existing, err := s.proposalRepository.GetOneByWorkerAndJob(worker.ID, job.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to get proposal: %w", err)
		}
		return existing, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to create proposal: %w", err)
	}

	s.afterSend(proposal)

	return proposal, true, nil
}

func (s *proposalService) ProposeToWorker(employer *models.Employer, workerID int64) (*models.Proposal, bool, error) {
	worker, err := s.workerRepository.GetOne(workerID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get worker: %w", err)
	}

	existing, err := s.proposalRepository.GetOneByEmployerAndWorker(employer.ID, worker.ID)
	if err == nil {
		return existing, false, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get proposal: %w", err)
	}

	proposal := &models.Proposal{
		Kind:       models.ProposalKindEmployer,
		WorkerID:   worker.ID,
		EmployerID: employer.ID,
		Status:     gate(worker.IsListed()),
	}

	proposal, err = s.proposalRepository.Create(proposal)
	if errors.Is(err, repositories.ErrDuplicate) {
		existing, err := s.proposalRepository.GetOneByEmployerAndWorker(employer.ID, worker.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to get proposal: %w", err)
		}
		return existing, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to create proposal: %w", err)
	}

	s.afterSend(proposal)

	return proposal, true, nil
}

func (s *proposalService) Resend(proposalID int64, initiator models.Role, partyID int64) (*models.Proposal, error) {
	proposal, err := s.proposalRepository.GetOne(proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if proposal.Initiator() != initiator || proposal.PartyID(initiator) != partyID {
		return nil, ErrNotAllowed
	}

	if !proposal.IsDeclined() {
		return nil, fmt.Errorf("resend from %s: %w", proposal.Status, ErrInvalidTransition)
	}

	proposal.Status = gate(counterpartAvailable(proposal))
	proposal.IsProceeded = false

	proposal, err = s.proposalRepository.Update(proposal)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}

	s.afterSend(proposal)

	return proposal, nil
}

func (s *proposalService) Respond(proposalID int64, recipient models.Role, partyID int64, accept bool) (*models.Proposal, error) {
	proposal, err := s.proposalRepository.GetOne(proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if proposal.Recipient() != recipient || proposal.PartyID(recipient) != partyID {
		return nil, ErrNotAllowed
	}

	if !proposal.IsPending() {
		return nil, fmt.Errorf("respond to %s: %w", proposal.Status, ErrInvalidTransition)
	}

	if accept {
		proposal.Status = models.ProposalStatusAccepted
	} else {
		proposal.Status = models.ProposalStatusDeclined
	}

	proposal, err = s.proposalRepository.Update(proposal)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	s.logger.Infow("proposal answered", "proposal_id", proposal.ID, "status", proposal.Status)

	if err := s.notifier.ProposalAnswered(proposal); err != nil {
		s.logger.Errorw("failed to schedule proposal answer notification", "proposal_id", proposal.ID, "error", err)
	}

	return proposal, nil
}

func (s *proposalService) Get(proposalID int64, role models.Role, partyID int64) (*models.Proposal, error) {
	proposal, err := s.proposalRepository.GetOne(proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if proposal.PartyID(role) != partyID {
		return nil, ErrNotAllowed
	}

	return proposal, nil
}

func (s *proposalService) afterSend(proposal *models.Proposal) {
	if !proposal.IsPending() {
		s.logger.Infow("proposal declined, counterpart unavailable", "proposal_id", proposal.ID, "kind", proposal.Kind)
		return
	}

	s.logger.Infow("proposal sent", "proposal_id", proposal.ID, "kind", proposal.Kind)

	if err := s.notifier.ProposalCreated(proposal); err != nil {
		s.logger.Errorw("failed to schedule proposal notification", "proposal_id", proposal.ID, "error", err)
	}
}

// gate maps counterpart availability to the status a sent proposal starts in.
func gate(available bool) models.ProposalStatus {
	if available {
		return models.ProposalStatusPending
	}
	return models.ProposalStatusDeclined
}

func counterpartAvailable(proposal *models.Proposal) bool {
	if proposal.Kind == models.ProposalKindWorker {
		return proposal.Job != nil && proposal.Job.IsVisible()
	}
	return proposal.Worker != nil && proposal.Worker.IsListed()
}
