package services

import (
	"errors"
	"fmt"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

type userService struct {
	userRepository     repositories.UserRepository
	workerRepository   repositories.WorkerRepository
	employerRepository repositories.EmployerRepository
	logger             *zap.SugaredLogger
}

type UserService interface {
	Get(telegramID int64) (*models.TelegramUser, error)
	// ChooseRole records the side the user picked. The role is locked once a profile exists for it.
	ChooseRole(telegramID int64, role models.Role) (*models.TelegramUser, error)
	HasProfile(user *models.TelegramUser) (bool, error)
	RefreshUsername(profile Profile) error
}

func NewUserService(
	userRepository repositories.UserRepository,
	workerRepository repositories.WorkerRepository,
	employerRepository repositories.EmployerRepository,
	logger *zap.SugaredLogger,
) UserService {
	return &userService{
		userRepository:     userRepository,
		workerRepository:   workerRepository,
		employerRepository: employerRepository,
		logger:             logger,
	}
}

func (s *userService) Get(telegramID int64) (*models.TelegramUser, error) {
	return s.userRepository.GetOneByTelegramID(telegramID)
}

func (s *userService) ChooseRole(telegramID int64, role models.Role) (*models.TelegramUser, error) {
	user, err := s.userRepository.GetOneByTelegramID(telegramID)
	if errors.Is(err, repositories.ErrNotFound) {
		user, err = s.userRepository.Create(&models.TelegramUser{TelegramID: telegramID, Role: role})
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		s.logger.Infow("user registered", "telegram_id", telegramID, "role", role)
		return user, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == role {
		return user, nil
	}

	hasProfile, err := s.HasProfile(user)
	if err != nil {
		return nil, err
	}
	if hasProfile {
		return user, ErrRoleLocked
	}

	user.Role = role

	return s.userRepository.Update(user)
}

func (s *userService) HasProfile(user *models.TelegramUser) (bool, error) {
	var err error
	if user.Role == models.RoleEmployer {
		_, err = s.employerRepository.GetOneByTelegramID(user.TelegramID)
	} else {
		_, err = s.workerRepository.GetOneByTelegramID(user.TelegramID)
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get profile: %w", err)
	}

	return true, nil
}

func (s *userService) RefreshUsername(profile Profile) error {
	worker, err := s.workerRepository.GetOneByTelegramID(profile.TelegramID)
	if err == nil {
		if worker.Username == profile.Username {
			return nil
		}

		worker.Username = profile.Username
		if _, err := s.workerRepository.Update(worker); err != nil {
			return fmt.Errorf("failed to update worker username: %w", err)
		}
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to get worker: %w", err)
	}

	employer, err := s.employerRepository.GetOneByTelegramID(profile.TelegramID)
	if err == nil {
		if employer.Username == profile.Username {
			return nil
		}

		employer.Username = profile.Username
		if _, err := s.employerRepository.Update(employer); err != nil {
			return fmt.Errorf("failed to update employer username: %w", err)
		}
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to get employer: %w", err)
	}

	return nil
}
