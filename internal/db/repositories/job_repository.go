package repositories

import (
	"time"

	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

// EmployerJobsFilter selects one of the employer's own job lists.
type EmployerJobsFilter string

const (
	EmployerJobsActive   EmployerJobsFilter = "active"
	EmployerJobsArchive  EmployerJobsFilter = "archive"
	EmployerJobsDeclined EmployerJobsFilter = "declined"
)

type jobRepository struct {
	repository
}

type JobRepository interface {
	Create(request *models.Job) (*models.Job, error)
	Update(request *models.Job) (*models.Job, error)
	GetOne(jobID int64) (*models.Job, error)
	GetManyVisible() ([]*models.Job, error)
	GetManySuitableForWorker(worker *models.Worker) ([]*models.Job, error)
	GetManyByEmployer(employerID int64, filter EmployerJobsFilter) ([]*models.Job, error)
}

func NewJobRepository(db *pg.DB) JobRepository {
	return &jobRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *jobRepository) Create(request *models.Job) (*models.Job, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *jobRepository) Update(request *models.Job) (*models.Job, error) {
	request.UpdatedAt = time.Now()

	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *jobRepository) GetOne(jobID int64) (*models.Job, error) {
	job := &models.Job{}

	err := r.db.Model(job).
		Relation("Employer").
		Where("job.id = ?", jobID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return job, nil
}

func (r *jobRepository) GetManyVisible() ([]*models.Job, error) {
	jobs := make([]*models.Job, 0)

	err := r.db.Model(&jobs).
		Relation("Employer").
		Where("job.is_active").
		Where("job.approval = ?", models.ApprovalStatusApproved).
		OrderExpr("job.created_at DESC").
		Select()

	return jobs, err
}

func (r *jobRepository) GetManySuitableForWorker(worker *models.Worker) ([]*models.Job, error) {
	jobs := make([]*models.Job, 0)

	err := r.db.Model(&jobs).
		Relation("Employer").
		Where("job.is_active").
		Where("job.approval = ?", models.ApprovalStatusApproved).
		Where("job.min_salary >= ?", worker.MinSalary).
		Where("job.occupations && ?", pg.Array(worker.Occupations)).
		OrderExpr("job.created_at DESC").
		Select()

	return jobs, err
}

func (r *jobRepository) GetManyByEmployer(employerID int64, filter EmployerJobsFilter) ([]*models.Job, error) {
	jobs := make([]*models.Job, 0)

	q := r.db.Model(&jobs).
		Relation("Employer").
		Where("job.employer_id = ?", employerID)

	switch filter {
	case EmployerJobsActive:
		q = q.Where("job.is_active").
			Where("job.approval IN (?, ?)", models.ApprovalStatusApproved, models.ApprovalStatusPending)
	case EmployerJobsArchive:
		q = q.Where("NOT job.is_active").
			Where("job.approval = ?", models.ApprovalStatusApproved)
	case EmployerJobsDeclined:
		q = q.Where("job.approval = ?", models.ApprovalStatusDeclined)
	}

	err := q.OrderExpr("job.updated_at DESC").Select()

	return jobs, err
}
