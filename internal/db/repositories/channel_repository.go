package repositories

import (
	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type channelRepository struct {
	repository
}

type ChannelRepository interface {
	GetManyActive(audience models.Audience) ([]*models.Channel, error)
}

func NewChannelRepository(db *pg.DB) ChannelRepository {
	return &channelRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *channelRepository) GetManyActive(audience models.Audience) ([]*models.Channel, error) {
	channels := make([]*models.Channel, 0)

	err := r.db.Model(&channels).
		Where("audience = ?", audience).
		Where("is_active").
		OrderExpr("id ASC").
		Select()

	return channels, err
}
