package services

import (
	"fmt"
	"strings"

	"work_exchange/configs"
	"work_exchange/internal"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/fsm"

	"go.uber.org/zap"
)

type jobService struct {
	appConfig     configs.App
	jobRepository repositories.JobRepository
	notifier      Notifier
	logger        *zap.SugaredLogger
}

type JobService interface {
	Create(employer *models.Employer, draft fsm.Draft) (*models.Job, error)
	Get(jobID int64) (*models.Job, error)
	ToggleNotifications(jobID, employerID int64) (*models.Job, error)
	// ToggleActive moves a job between the active list and the archive.
	ToggleActive(jobID, employerID int64) (*models.Job, error)
}

func NewJobService(appConfig configs.App, jobRepository repositories.JobRepository, notifier Notifier, logger *zap.SugaredLogger) JobService {
	return &jobService{
		appConfig:     appConfig,
		jobRepository: jobRepository,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *jobService) Create(employer *models.Employer, draft fsm.Draft) (*models.Job, error) {
	job, err := s.jobRepository.Create(&models.Job{
		EmployerID:    employer.ID,
		Occupations:   draft.Occupations,
		MinSalary:     draft.MinSalary,
		Description:   internal.Truncate(strings.TrimSpace(draft.Description), s.appConfig.MaxTextLength),
		Notifications: draft.Notifications,
		IsActive:      true,
		Approval:      models.ApprovalStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	s.logger.Infow("job submitted", "job_id", job.ID, "employer_id", employer.ID)

	if err := s.notifier.JobSubmitted(job); err != nil {
		s.logger.Errorw("failed to schedule job moderation", "job_id", job.ID, "error", err)
	}

	return job, nil
}

func (s *jobService) Get(jobID int64) (*models.Job, error) {
	return s.jobRepository.GetOne(jobID)
}

func (s *jobService) ToggleNotifications(jobID, employerID int64) (*models.Job, error) {
	job, err := s.owned(jobID, employerID)
	if err != nil {
		return nil, err
	}

	job.Notifications = !job.Notifications

	return s.jobRepository.Update(job)
}

func (s *jobService) ToggleActive(jobID, employerID int64) (*models.Job, error) {
	job, err := s.owned(jobID, employerID)
	if err != nil {
		return nil, err
	}

	job.IsActive = !job.IsActive

	return s.jobRepository.Update(job)
}

func (s *jobService) owned(jobID, employerID int64) (*models.Job, error) {
	job, err := s.jobRepository.GetOne(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if job.EmployerID != employerID {
		return nil, ErrNotAllowed
	}

	return job, nil
}
