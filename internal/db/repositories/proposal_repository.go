package repositories

import (
	"time"

	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type proposalRepository struct {
	repository
}

type ProposalRepository interface {
	// Create returns ErrDuplicate when a proposal for the same parties already exists.
	Create(request *models.Proposal) (*models.Proposal, error)
	Update(request *models.Proposal) (*models.Proposal, error)
	GetOne(proposalID int64) (*models.Proposal, error)
	GetOneByWorkerAndJob(workerID, jobID int64) (*models.Proposal, error)
	GetOneByEmployerAndWorker(employerID, workerID int64) (*models.Proposal, error)
	GetMany(kind models.ProposalKind, side models.Role, partyID int64) ([]*models.Proposal, error)
	CountReportedBetween(workerID, employerID, exceptID int64) (int, error)
}

func NewProposalRepository(db *pg.DB) ProposalRepository {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proposalRepository) Create(request *models.Proposal) (*models.Proposal, error) {
	result, err := r.db.Model(request).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() == 0 {
		return nil, ErrDuplicate
	}

	return r.GetOne(request.ID)
}

func (r *proposalRepository) Update(request *models.Proposal) (*models.Proposal, error) {
	request.UpdatedAt = time.Now()

	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *proposalRepository) GetOne(proposalID int64) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	err := r.selectWithParties(proposal).
		Where("proposal.id = ?", proposalID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return proposal, nil
}

func (r *proposalRepository) GetOneByWorkerAndJob(workerID, jobID int64) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	err := r.selectWithParties(proposal).
		Where("proposal.kind = ?", models.ProposalKindWorker).
		Where("proposal.worker_id = ?", workerID).
		Where("proposal.job_id = ?", jobID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return proposal, nil
}

func (r *proposalRepository) GetOneByEmployerAndWorker(employerID, workerID int64) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	err := r.selectWithParties(proposal).
		Where("proposal.kind = ?", models.ProposalKindEmployer).
		Where("proposal.employer_id = ?", employerID).
		Where("proposal.worker_id = ?", workerID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return proposal, nil
}

func (r *proposalRepository) GetMany(kind models.ProposalKind, side models.Role, partyID int64) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	q := r.selectWithParties(&proposals).
		Where("proposal.kind = ?", kind)

	if side == models.RoleEmployer {
		q = q.Where("proposal.employer_id = ?", partyID)
	} else {
		q = q.Where("proposal.worker_id = ?", partyID)
	}

	err := q.OrderExpr("proposal.updated_at DESC").Select()

	return proposals, err
}

// CountReportedBetween counts accepted proposals between the pair that were already reported to admins.
func (r *proposalRepository) CountReportedBetween(workerID, employerID, exceptID int64) (int, error) {
	return r.db.Model((*models.Proposal)(nil)).
		Where("worker_id = ?", workerID).
		Where("employer_id = ?", employerID).
		Where("status = ?", models.ProposalStatusAccepted).
		Where("is_proceeded").
		Where("id != ?", exceptID).
		Count()
}

func (r *proposalRepository) selectWithParties(model interface{}) *pg.Query {
	return r.db.Model(model).
		Relation("Worker").
		Relation("Employer").
		Relation("Job")
}
