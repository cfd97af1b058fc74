package repositories

import (
	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type employerRepository struct {
	repository
}

type EmployerRepository interface {
	Create(request *models.Employer) (*models.Employer, error)
	Update(request *models.Employer) (*models.Employer, error)
	GetOne(employerID int64) (*models.Employer, error)
	GetOneByTelegramID(telegramID int64) (*models.Employer, error)
	GetManyMatchingWorker(worker *models.Worker) ([]*models.Employer, error)
}

func NewEmployerRepository(db *pg.DB) EmployerRepository {
	return &employerRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *employerRepository) Create(request *models.Employer) (*models.Employer, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *employerRepository) Update(request *models.Employer) (*models.Employer, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *employerRepository) GetOne(employerID int64) (*models.Employer, error) {
	employer := &models.Employer{}

	err := r.db.Model(employer).
		Where("id = ?", employerID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return employer, nil
}

func (r *employerRepository) GetOneByTelegramID(telegramID int64) (*models.Employer, error) {
	employer := &models.Employer{}

	err := r.db.Model(employer).
		Where("telegram_id = ?", telegramID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return employer, nil
}

func (r *employerRepository) GetManyMatchingWorker(worker *models.Worker) ([]*models.Employer, error) {
	employers := make([]*models.Employer, 0)

	err := r.db.Model(&employers).
		Where(`EXISTS (
			SELECT 1 FROM jobs
			WHERE jobs.employer_id = employer.id
				AND jobs.is_active
				AND jobs.notifications
				AND jobs.approval = ?
				AND jobs.min_salary >= ?
				AND jobs.occupations && ?
		)`, models.ApprovalStatusApproved, worker.MinSalary, pg.Array(worker.Occupations)).
		OrderExpr("employer.id ASC").
		Select()

	return employers, err
}
