package repositories

import (
	"time"

	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type broadcastRepository struct {
	repository
}

type BroadcastRepository interface {
	Update(request *models.Broadcast) (*models.Broadcast, error)
	GetManyDue(now time.Time) ([]*models.Broadcast, error)
}

func NewBroadcastRepository(db *pg.DB) BroadcastRepository {
	return &broadcastRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *broadcastRepository) Update(request *models.Broadcast) (*models.Broadcast, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	broadcast := &models.Broadcast{}

	err = r.db.Model(broadcast).
		Relation("Buttons", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("position ASC"), nil
		}).
		Where("id = ?", request.ID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return broadcast, nil
}

func (r *broadcastRepository) GetManyDue(now time.Time) ([]*models.Broadcast, error) {
	broadcasts := make([]*models.Broadcast, 0)

	err := r.db.Model(&broadcasts).
		Relation("Buttons", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("position ASC"), nil
		}).
		Where("notify_at <= ?", now).
		Where("is_valid").
		Where("NOT started").
		OrderExpr("notify_at ASC").
		Select()

	return broadcasts, err
}
