package services

import (
	"errors"
	"fmt"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

type employerService struct {
	employerRepository repositories.EmployerRepository
	logger             *zap.SugaredLogger
}

type EmployerService interface {
	GetByTelegramID(telegramID int64) (*models.Employer, error)
	Get(employerID int64) (*models.Employer, error)
	// SavePhone creates the employer on first use. The name always follows the Telegram profile.
	SavePhone(profile Profile, phone string) (*models.Employer, error)
}

func NewEmployerService(employerRepository repositories.EmployerRepository, logger *zap.SugaredLogger) EmployerService {
	return &employerService{
		employerRepository: employerRepository,
		logger:             logger,
	}
}

func (s *employerService) GetByTelegramID(telegramID int64) (*models.Employer, error) {
	return s.employerRepository.GetOneByTelegramID(telegramID)
}

func (s *employerService) Get(employerID int64) (*models.Employer, error) {
	return s.employerRepository.GetOne(employerID)
}

func (s *employerService) SavePhone(profile Profile, phone string) (*models.Employer, error) {
	employer, err := s.employerRepository.GetOneByTelegramID(profile.TelegramID)
	if errors.Is(err, repositories.ErrNotFound) {
		employer, err = s.employerRepository.Create(&models.Employer{
			TelegramID: profile.TelegramID,
			Username:   profile.Username,
			Name:       profile.DisplayName(),
			Phone:      phone,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create employer: %w", err)
		}

		s.logger.Infow("employer registered", "employer_id", employer.ID)
		return employer, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}

	employer.Username = profile.Username
	employer.Name = profile.DisplayName()
	employer.Phone = phone

	return s.employerRepository.Update(employer)
}
