package repositories

import (
	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type reviewRepository struct {
	repository
}

type ReviewRepository interface {
	// Create returns ErrDuplicate when the author already reviewed the counterpart.
	Create(request *models.Review) (*models.Review, error)
	Update(request *models.Review) (*models.Review, error)
	GetOne(reviewID int64) (*models.Review, error)
	GetOneByParties(author models.Role, workerID, employerID int64) (*models.Review, error)
	GetMany(author models.Role, side models.Role, partyID int64, onlyApproved bool) ([]*models.Review, error)
	GetAverageRate(author models.Role, rateeID int64) (float64, int, error)
}

func NewReviewRepository(db *pg.DB) ReviewRepository {
	return &reviewRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *reviewRepository) Create(request *models.Review) (*models.Review, error) {
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

func (r *reviewRepository) Update(request *models.Review) (*models.Review, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *reviewRepository) GetOne(reviewID int64) (*models.Review, error) {
	review := &models.Review{}

	err := r.db.Model(review).
		Relation("Worker").
		Relation("Employer").
		Where("review.id = ?", reviewID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return review, nil
}

func (r *reviewRepository) GetOneByParties(author models.Role, workerID, employerID int64) (*models.Review, error) {
	review := &models.Review{}

	err := r.db.Model(review).
		Relation("Worker").
		Relation("Employer").
		Where("review.author = ?", author).
		Where("review.worker_id = ?", workerID).
		Where("review.employer_id = ?", employerID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return review, nil
}

func (r *reviewRepository) GetMany(author models.Role, side models.Role, partyID int64, onlyApproved bool) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0)

	q := r.db.Model(&reviews).
		Relation("Worker").
		Relation("Employer").
		Where("review.author = ?", author)

	if side == models.RoleEmployer {
		q = q.Where("review.employer_id = ?", partyID)
	} else {
		q = q.Where("review.worker_id = ?", partyID)
	}

	if onlyApproved {
		q = q.Where("review.approval = ?", models.ApprovalStatusApproved)
	}

	err := q.OrderExpr("review.created_at DESC").Select()

	return reviews, err
}

// GetAverageRate returns the mean rate of approved reviews written by author about the ratee.
func (r *reviewRepository) GetAverageRate(author models.Role, rateeID int64) (float64, int, error) {
	var result struct {
		Average float64
		Count   int
	}

	rateeColumn := "worker_id"
	if author == models.RoleWorker {
		rateeColumn = "employer_id"
	}

	_, err := r.db.QueryOne(&result, `
		SELECT COALESCE(AVG(rate), 0) AS average, COUNT(*) AS count
		FROM reviews
		WHERE author = ? AND ? = ? AND approval = ?
	`, author, pg.Ident(rateeColumn), rateeID, models.ApprovalStatusApproved)
	if err != nil {
		return 0, 0, err
	}

	return result.Average, result.Count, nil
}
