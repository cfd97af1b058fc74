package repositories

import (
	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	Create(request *models.TelegramUser) (*models.TelegramUser, error)
	Update(request *models.TelegramUser) (*models.TelegramUser, error)
	GetOneByTelegramID(telegramID int64) (*models.TelegramUser, error)
	GetManyByRole(roles ...models.Role) ([]*models.TelegramUser, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) Create(request *models.TelegramUser) (*models.TelegramUser, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByTelegramID(request.TelegramID)
}

func (r *userRepository) Update(request *models.TelegramUser) (*models.TelegramUser, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOneByTelegramID(request.TelegramID)
}

func (r *userRepository) GetOneByTelegramID(telegramID int64) (*models.TelegramUser, error) {
	user := &models.TelegramUser{}

	err := r.db.Model(user).
		Where("telegram_id = ?", telegramID).
		Select()
	if err != nil {
		return nil, notFound(err)
	}

	return user, nil
}

func (r *userRepository) GetManyByRole(roles ...models.Role) ([]*models.TelegramUser, error) {
	users := make([]*models.TelegramUser, 0)

	err := r.db.Model(&users).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, role := range roles {
				q = q.WhereOr("role = ?", role)
			}
			return q, nil
		}).
		OrderExpr("id ASC").
		Select()

	return users, err
}
