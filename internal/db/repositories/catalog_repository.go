package repositories

import (
	"work_exchange/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type catalogRepository struct {
	repository
}

type CatalogRepository interface {
	GetTexts() ([]*models.Text, error)
	GetButtons() ([]*models.Button, error)
	GetOccupations() ([]*models.Occupation, error)
	UpsertTexts(texts []*models.Text) error
	UpsertButtons(buttons []*models.Button) error
	UpsertOccupations(occupations []*models.Occupation) error
}

func NewCatalogRepository(db *pg.DB) CatalogRepository {
	return &catalogRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *catalogRepository) GetTexts() ([]*models.Text, error) {
	texts := make([]*models.Text, 0)
	err := r.db.Model(&texts).OrderExpr("position ASC, id ASC").Select()
	return texts, err
}

func (r *catalogRepository) GetButtons() ([]*models.Button, error) {
	buttons := make([]*models.Button, 0)
	err := r.db.Model(&buttons).OrderExpr("position ASC, id ASC").Select()
	return buttons, err
}

func (r *catalogRepository) GetOccupations() ([]*models.Occupation, error) {
	occupations := make([]*models.Occupation, 0)
	err := r.db.Model(&occupations).OrderExpr("position ASC, id ASC").Select()
	return occupations, err
}

func (r *catalogRepository) UpsertTexts(texts []*models.Text) error {
	if len(texts) == 0 {
		return nil
	}
	return r.upsert(&texts)
}

func (r *catalogRepository) UpsertButtons(buttons []*models.Button) error {
	if len(buttons) == 0 {
		return nil
	}
	return r.upsert(&buttons)
}

func (r *catalogRepository) UpsertOccupations(occupations []*models.Occupation) error {
	if len(occupations) == 0 {
		return nil
	}
	return r.upsert(&occupations)
}

// upsert keeps rows edited in the admin panel and only fills in missing slugs.
func (r *catalogRepository) upsert(model interface{}) error {
	_, err := r.db.Model(model).
		OnConflict("(slug) DO NOTHING").
		Insert()
	return err
}
