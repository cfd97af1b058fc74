package services

import (
	"context"
	"fmt"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

// ModerationTarget is the kind of record an admin decision applies to.
type ModerationTarget string

const (
	ModerationTargetWorker         ModerationTarget = "worker"
	ModerationTargetJob            ModerationTarget = "job"
	ModerationTargetEmployerReview ModerationTarget = "e_review"
	ModerationTargetWorkerReview   ModerationTarget = "w_review"
)

type ModerationAction string

const (
	ModerationActionAccept  ModerationAction = "accept"
	ModerationActionDecline ModerationAction = "decline"
)

func (a ModerationAction) approval() (models.ApprovalStatus, bool) {
	switch a {
	case ModerationActionAccept:
		return models.ApprovalStatusApproved, true
	case ModerationActionDecline:
		return models.ApprovalStatusDeclined, true
	}
	return "", false
}

type moderationService struct {
	workerRepository repositories.WorkerRepository
	jobRepository    repositories.JobRepository
	reviewRepository repositories.ReviewRepository
	translateService TranslateService
	notifier         Notifier
	logger           *zap.SugaredLogger
}

type ModerationService interface {
	// Decide applies an admin decision. Repeating the current decision returns
	// ErrAlreadyDecided and changes nothing; flipping a decision is allowed.
	Decide(ctx context.Context, target ModerationTarget, action ModerationAction, id int64) (models.ApprovalStatus, error)
}

func NewModerationService(
	workerRepository repositories.WorkerRepository,
	jobRepository repositories.JobRepository,
	reviewRepository repositories.ReviewRepository,
	translateService TranslateService,
	notifier Notifier,
	logger *zap.SugaredLogger,
) ModerationService {
	return &moderationService{
		workerRepository: workerRepository,
		jobRepository:    jobRepository,
		reviewRepository: reviewRepository,
		translateService: translateService,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *moderationService) Decide(ctx context.Context, target ModerationTarget, action ModerationAction, id int64) (models.ApprovalStatus, error) {
	approval, ok := action.approval()
	if !ok {
		return "", fmt.Errorf("unknown moderation action %q: %w", action, ErrNotAllowed)
	}

	switch target {
	case ModerationTargetWorker:
		return s.decideWorker(ctx, id, approval)
	case ModerationTargetJob:
		return s.decideJob(ctx, id, approval)
	case ModerationTargetEmployerReview:
		return s.decideReview(ctx, models.RoleEmployer, id, approval)
	case ModerationTargetWorkerReview:
		return s.decideReview(ctx, models.RoleWorker, id, approval)
	}

	return "", fmt.Errorf("unknown moderation target %q: %w", target, ErrNotAllowed)
}

func (s *moderationService) decideWorker(ctx context.Context, id int64, approval models.ApprovalStatus) (models.ApprovalStatus, error) {
	worker, err := s.workerRepository.GetOne(id)
	if err != nil {
		return "", fmt.Errorf("failed to get worker: %w", err)
	}

	if worker.Approval == approval {
		return worker.Approval, ErrAlreadyDecided
	}

	worker.Approval = approval
	if approval.IsApproved() {
		if translated, ok := s.translateService.Translate(ctx, worker.About, models.LanguageHebrew); ok {
			worker.AboutHeb = translated
		}
	}

	worker, err = s.workerRepository.Update(worker)
	if err != nil {
		return "", fmt.Errorf("failed to update worker: %w", err)
	}
	s.logger.Infow("worker moderated", "worker_id", worker.ID, "approval", worker.Approval)

	if err := s.notifier.WorkerModerated(worker); err != nil {
		s.logger.Errorw("failed to schedule worker notifications", "worker_id", worker.ID, "error", err)
	}

	return worker.Approval, nil
}

func (s *moderationService) decideJob(ctx context.Context, id int64, approval models.ApprovalStatus) (models.ApprovalStatus, error) {
	job, err := s.jobRepository.GetOne(id)
	if err != nil {
		return "", fmt.Errorf("failed to get job: %w", err)
	}

	if job.Approval == approval {
		return job.Approval, ErrAlreadyDecided
	}

	job.Approval = approval
	if approval.IsApproved() && job.DescriptionRus == "" {
		if translated, ok := s.translateService.Translate(ctx, job.Description, models.LanguageRussian); ok {
			job.DescriptionRus = translated
		}
	}

	job, err = s.jobRepository.Update(job)
	if err != nil {
		return "", fmt.Errorf("failed to update job: %w", err)
	}
	s.logger.Infow("job moderated", "job_id", job.ID, "approval", job.Approval)

	if err := s.notifier.JobModerated(job); err != nil {
		s.logger.Errorw("failed to schedule job notifications", "job_id", job.ID, "error", err)
	}

	return job.Approval, nil
}

func (s *moderationService) decideReview(ctx context.Context, author models.Role, id int64, approval models.ApprovalStatus) (models.ApprovalStatus, error) {
	review, err := s.reviewRepository.GetOne(id)
	if err != nil {
		return "", fmt.Errorf("failed to get review: %w", err)
	}

	if review.Author != author {
		return "", fmt.Errorf("review %d is written by %s: %w", id, review.Author, ErrNotFound)
	}

	if review.Approval == approval {
		return review.Approval, ErrAlreadyDecided
	}

	review.Approval = approval
	if approval.IsApproved() && review.CommentTranslated == "" && review.Comment != "" {
		if translated, ok := s.translateService.Translate(ctx, review.Comment, review.Ratee().Language()); ok {
			review.CommentTranslated = translated
		}
	}

	review, err = s.reviewRepository.Update(review)
	if err != nil {
		return "", fmt.Errorf("failed to update review: %w", err)
	}
	s.logger.Infow("review moderated", "review_id", review.ID, "author", review.Author, "approval", review.Approval)

	if err := s.notifier.ReviewModerated(review); err != nil {
		s.logger.Errorw("failed to schedule review notifications", "review_id", review.ID, "error", err)
	}

	return review.Approval, nil
}
