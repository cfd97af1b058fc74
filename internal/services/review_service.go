package services

import (
	"errors"
	"fmt"
	"strings"

	"work_exchange/configs"
	"work_exchange/internal"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

// Rating is the mean of approved reviews about a party.
type Rating struct {
	Average float64
	Count   int
}

type reviewService struct {
	appConfig          configs.App
	reviewRepository   repositories.ReviewRepository
	workerRepository   repositories.WorkerRepository
	employerRepository repositories.EmployerRepository
	notifier           Notifier
	logger             *zap.SugaredLogger
}

type ReviewService interface {
	// Submit stores a pending review. A second review of the same counterpart
	// returns ErrDuplicate and notifies nobody.
	Submit(author models.Role, authorID, rateeID int64, rate int, comment string) (*models.Review, error)
	HasReviewed(author models.Role, authorID, rateeID int64) (bool, error)
	Rating(ratee models.Role, rateeID int64) (Rating, error)
	Get(reviewID int64, role models.Role, partyID int64) (*models.Review, error)
}

func NewReviewService(
	appConfig configs.App,
	reviewRepository repositories.ReviewRepository,
	workerRepository repositories.WorkerRepository,
	employerRepository repositories.EmployerRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
) ReviewService {
	return &reviewService{
		appConfig:          appConfig,
		reviewRepository:   reviewRepository,
		workerRepository:   workerRepository,
		employerRepository: employerRepository,
		notifier:           notifier,
		logger:             logger,
	}
}

func (s *reviewService) Submit(author models.Role, authorID, rateeID int64, rate int, comment string) (*models.Review, error) {
	if rate < models.MinRate || rate > models.MaxRate {
		return nil, fmt.Errorf("rate %d out of range: %w", rate, ErrNotAllowed)
	}

	review := &models.Review{
		Author:   author,
		Rate:     rate,
		Comment:  internal.Truncate(strings.TrimSpace(comment), s.appConfig.MaxTextLength),
		Approval: models.ApprovalStatusPending,
	}

	if author == models.RoleWorker {
		review.WorkerID, review.EmployerID = authorID, rateeID
		if _, err := s.employerRepository.GetOne(rateeID); err != nil {
			return nil, fmt.Errorf("failed to get employer: %w", err)
		}
	} else {
		review.WorkerID, review.EmployerID = rateeID, authorID
		if _, err := s.workerRepository.GetOne(rateeID); err != nil {
			return nil, fmt.Errorf("failed to get worker: %w", err)
		}
	}

	_, err := s.reviewRepository.GetOneByParties(author, review.WorkerID, review.EmployerID)
	if err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	review, err = s.reviewRepository.Create(review)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	s.logger.Infow("review submitted", "review_id", review.ID, "author", review.Author)

	if err := s.notifier.ReviewSubmitted(review); err != nil {
		s.logger.Errorw("failed to schedule review moderation", "review_id", review.ID, "error", err)
	}

	return review, nil
}

func (s *reviewService) HasReviewed(author models.Role, authorID, rateeID int64) (bool, error) {
	workerID, employerID := authorID, rateeID
	if author == models.RoleEmployer {
		workerID, employerID = rateeID, authorID
	}

	_, err := s.reviewRepository.GetOneByParties(author, workerID, employerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

func (s *reviewService) Rating(ratee models.Role, rateeID int64) (Rating, error) {
	average, count, err := s.reviewRepository.GetAverageRate(ratee.Counterpart(), rateeID)
	if err != nil {
		return Rating{}, fmt.Errorf("failed to get average rate: %w", err)
	}

	return Rating{Average: average, Count: count}, nil
}

func (s *reviewService) Get(reviewID int64, role models.Role, partyID int64) (*models.Review, error) {
	review, err := s.reviewRepository.GetOne(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if review.PartyID(role) != partyID {
		return nil, ErrNotAllowed
	}

	return review, nil
}
