package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestCatalog(t *testing.T, now *time.Time) (*catalog, *mock_repositories.MockCatalogRepository) {
	ctrl := gomock.NewController(t)
	repository := mock_repositories.NewMockCatalogRepository(ctrl)

	c := NewCatalog(repository, time.Minute, zap.NewNop().Sugar()).(*catalog)
	c.now = func() time.Time { return *now }

	return c, repository
}

func TestCatalog_TextPrefersDatabaseRows(t *testing.T) {
	now := time.Now()
	c, repository := newTestCatalog(t, &now)

	repository.EXPECT().GetTexts().Return([]*models.Text{{Slug: "saved", Rus: "Готово", Heb: "בוצע"}}, nil).Times(1)
	repository.EXPECT().GetButtons().Return(nil, nil).Times(1)
	repository.EXPECT().GetOccupations().Return(nil, nil).Times(1)

	assert.Equal(t, "Готово", c.Text("saved", models.LanguageRussian))
	assert.Equal(t, "בוצע", c.Text("saved", models.LanguageHebrew))
	assert.Equal(t, "Ввод отменён", c.Text("input_cancel", models.LanguageRussian))
	assert.Equal(t, "unknown_slug", c.Text("unknown_slug", models.LanguageRussian))
}

func TestCatalog_ReloadsAfterTTL(t *testing.T) {
	now := time.Now()
	c, repository := newTestCatalog(t, &now)

	repository.EXPECT().GetTexts().Return(nil, nil).Times(2)
	repository.EXPECT().GetButtons().Return([]*models.Button{{Slug: "yes", Rus: "Ага"}}, nil).Times(2)
	repository.EXPECT().GetOccupations().Return(nil, nil).Times(2)

	assert.Equal(t, "Ага", c.Button("yes", models.LanguageRussian))
	assert.Equal(t, "Ага", c.Button("yes", models.LanguageHebrew))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, "Ага", c.Button("yes", models.LanguageRussian))
}

func TestCatalog_KeepsDefaultsWhenDatabaseFails(t *testing.T) {
	now := time.Now()
	c, repository := newTestCatalog(t, &now)

	repository.EXPECT().GetTexts().Return(nil, errors.New("connection refused")).Times(1)

	assert.Equal(t, "Сохранено", c.Text("saved", models.LanguageRussian))
	assert.Len(t, c.Occupations(), len(DefaultOccupations))
}

func TestCatalog_OccupationNames(t *testing.T) {
	now := time.Now()
	c, repository := newTestCatalog(t, &now)

	repository.EXPECT().GetTexts().Return(nil, nil)
	repository.EXPECT().GetButtons().Return(nil, nil)
	repository.EXPECT().GetOccupations().Return([]*models.Occupation{
		{Slug: "painter", Rus: "Маляр", Heb: "צבע"},
		{Slug: "welding", Rus: "Сварщик", Heb: "רתך"},
	}, nil)

	assert.Equal(t, "Маляр, Сварщик", c.OccupationNames([]string{"painter", "welding"}, models.LanguageRussian))
	assert.Equal(t, "רתך, roofer", c.OccupationNames([]string{"welding", "roofer"}, models.LanguageHebrew))
}

func TestCatalog_SkipsOccupationsThatDoNotFitButtons(t *testing.T) {
	now := time.Now()
	c, repository := newTestCatalog(t, &now)

	repository.EXPECT().GetTexts().Return(nil, nil)
	repository.EXPECT().GetButtons().Return(nil, nil)
	repository.EXPECT().GetOccupations().Return([]*models.Occupation{
		{Slug: "tile", Rus: "Плиточник"},
		{Slug: "a:b", Rus: "Сломанный"},
		{Slug: strings.Repeat("x", 60), Rus: "Длинный"},
		{Slug: "", Rus: "Пустой"},
	}, nil)

	occupations := c.Occupations()

	require.Len(t, occupations, 1)
	assert.Equal(t, "tile", occupations[0].Slug)
}
