package repositories

import (
	"time"

	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type workerRepository struct {
	repository
}

type WorkerRepository interface {
	Create(request *models.Worker) (*models.Worker, error)
	Update(request *models.Worker) (*models.Worker, error)
	GetOne(workerID int64) (*models.Worker, error)
	GetOneByTelegramID(telegramID int64) (*models.Worker, error)
	GetManyListed() ([]*models.Worker, error)
	GetManyMatchingJob(job *models.Job) ([]*models.Worker, error)
	GetManySuitableForEmployer(employerID int64) ([]*models.Worker, error)
}

func NewWorkerRepository(db *pg.DB) WorkerRepository {
	return &workerRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *workerRepository) Create(request *models.Worker) (*models.Worker, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *workerRepository) Update(request *models.Worker) (*models.Worker, error) {
	request.UpdatedAt = time.Now()

	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *workerRepository) GetOne(workerID int64) (*models.Worker, error) {
	worker := &models.Worker{}

	err := r.db.Model(worker).
		Where("id = ?", workerID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return worker, nil
}

func (r *workerRepository) GetOneByTelegramID(telegramID int64) (*models.Worker, error) {
	worker := &models.Worker{}

	err := r.db.Model(worker).
		Where("telegram_id = ?", telegramID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return worker, nil
}

func (r *workerRepository) GetManyListed() ([]*models.Worker, error) {
	workers := make([]*models.Worker, 0)

	err := r.db.Model(&workers).
		Where("approval = ?", models.ApprovalStatusApproved).
		Where("is_searching").
		OrderExpr("created_at DESC").
		Select()

	return workers, err
}

func (r *workerRepository) GetManyMatchingJob(job *models.Job) ([]*models.Worker, error) {
	workers := make([]*models.Worker, 0)

	err := r.db.Model(&workers).
		Where("approval = ?", models.ApprovalStatusApproved).
		Where("is_searching").
		Where("notifications").
		Where("min_salary <= ?", job.MinSalary).
		Where("occupations && ?", pg.Array(job.Occupations)).
		OrderExpr("id ASC").
		Select()

	return workers, err
}

func (r *workerRepository) GetManySuitableForEmployer(employerID int64) ([]*models.Worker, error) {
	workers := make([]*models.Worker, 0)

	err := r.db.Model(&workers).
		Where("worker.approval = ?", models.ApprovalStatusApproved).
		Where("worker.is_searching").
		Where(`EXISTS (
			SELECT 1 FROM jobs
			WHERE jobs.employer_id = ?
				AND jobs.is_active
				AND jobs.approval = ?
				AND jobs.min_salary >= worker.min_salary
				AND jobs.occupations && worker.occupations
		)`, employerID, models.ApprovalStatusApproved).
		OrderExpr("worker.created_at DESC").
		Select()

	return workers, err
}
