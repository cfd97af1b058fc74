package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"work_exchange/configs"
	"work_exchange/internal"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/fsm"
	"work_exchange/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Profile identifies the Telegram account behind an update.
type Profile struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// DisplayName is the name Telegram shows for the account.
func (p Profile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type workerService struct {
	appConfig        configs.App
	workerRepository repositories.WorkerRepository
	photoStorage     storage.PhotoStorage
	notifier         Notifier
	logger           *zap.SugaredLogger
}

type WorkerService interface {
	GetByTelegramID(telegramID int64) (*models.Worker, error)
	Get(workerID int64) (*models.Worker, error)
	// SaveProfile commits a finished profile flow and sends it to moderation.
	// passportURL is optional; a failed upload keeps the Telegram file id only.
	SaveProfile(ctx context.Context, profile Profile, draft fsm.Draft, passportURL string) (*models.Worker, error)
	// RestartProfile prepares a profile for a new round of moderation.
	// A profile that is still being moderated is refused with ErrProfilePending.
	RestartProfile(telegramID int64) (*models.Worker, error)
	ToggleNotifications(telegramID int64) (*models.Worker, error)
	ToggleSearching(telegramID int64) (*models.Worker, error)
}

func NewWorkerService(
	appConfig configs.App,
	workerRepository repositories.WorkerRepository,
	photoStorage storage.PhotoStorage,
	notifier Notifier,
	logger *zap.SugaredLogger,
) WorkerService {
	return &workerService{
		appConfig:        appConfig,
		workerRepository: workerRepository,
		photoStorage:     photoStorage,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *workerService) GetByTelegramID(telegramID int64) (*models.Worker, error) {
	return s.workerRepository.GetOneByTelegramID(telegramID)
}

func (s *workerService) Get(workerID int64) (*models.Worker, error) {
	return s.workerRepository.GetOne(workerID)
}

func (s *workerService) SaveProfile(ctx context.Context, profile Profile, draft fsm.Draft, passportURL string) (*models.Worker, error) {
	worker, err := s.workerRepository.GetOneByTelegramID(profile.TelegramID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	isNew := worker == nil
	if isNew {
		worker = &models.Worker{TelegramID: profile.TelegramID}
	}

	worker.Username = profile.Username
	worker.Name = cases.Title(language.Russian, cases.NoLower).String(strings.TrimSpace(draft.Name))
	worker.Phone = draft.Phone
	worker.PassportPhotoFileID = draft.PassportPhotoID
	worker.Occupations = draft.Occupations
	worker.About = internal.Truncate(draft.About, s.appConfig.MaxTextLength)
	worker.AboutHeb = ""
	worker.MinSalary = draft.MinSalary
	worker.ObjectPhotos = draft.ObjectPhotos
	worker.Notifications = draft.Notifications
	worker.IsSearching = true
	worker.Approval = models.ApprovalStatusPending

	if passportURL != "" {
		key, err := s.photoStorage.SavePassport(ctx, passportURL)
		if err != nil {
			s.logger.Warnw("failed to store passport photo", "telegram_id", profile.TelegramID, "error", err)
		} else {
			worker.PassportPhotoKey = key
		}
	}

	if isNew {
		worker, err = s.workerRepository.Create(worker)
	} else {
		worker, err = s.workerRepository.Update(worker)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save worker: %w", err)
	}
	s.logger.Infow("worker profile submitted", "worker_id", worker.ID)

	if err := s.notifier.WorkerSubmitted(worker); err != nil {
		s.logger.Errorw("failed to schedule worker moderation", "worker_id", worker.ID, "error", err)
	}

	return worker, nil
}

func (s *workerService) RestartProfile(telegramID int64) (*models.Worker, error) {
	worker, err := s.workerRepository.GetOneByTelegramID(telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	if worker.Approval.IsPending() {
		return nil, ErrProfilePending
	}

	worker.Approval = models.ApprovalStatusPending
	worker.Occupations = nil
	worker.AboutHeb = ""
	worker.IsSearching = true

	return s.workerRepository.Update(worker)
}

func (s *workerService) ToggleNotifications(telegramID int64) (*models.Worker, error) {
	worker, err := s.approvedWorker(telegramID)
	if err != nil {
		return nil, err
	}

	worker.Notifications = !worker.Notifications

	return s.workerRepository.Update(worker)
}

func (s *workerService) ToggleSearching(telegramID int64) (*models.Worker, error) {
	worker, err := s.approvedWorker(telegramID)
	if err != nil {
		return nil, err
	}

	worker.IsSearching = !worker.IsSearching

	return s.workerRepository.Update(worker)
}

// approvedWorker loads a worker whose profile may be changed from the controls.
func (s *workerService) approvedWorker(telegramID int64) (*models.Worker, error) {
	worker, err := s.workerRepository.GetOneByTelegramID(telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	switch {
	case worker.Approval.IsPending():
		return nil, ErrProfilePending
	case !worker.Approval.IsApproved():
		return nil, ErrProfileInactive
	}

	return worker, nil
}
