package catalog

import (
	"strings"
	"sync"
	"time"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"

	"go.uber.org/zap"
)

// maxSlugLength keeps an occupation slug inside a 64 byte callback payload.
const maxSlugLength = 48

// Catalog resolves slug keyed strings and the occupation taxonomy in a given language.
type Catalog interface {
	Text(slug string, lang models.Language) string
	Button(slug string, lang models.Language) string
	Occupations() []*models.Occupation
	OccupationNames(slugs []string, lang models.Language) string
}

type catalog struct {
	repository repositories.CatalogRepository
	ttl        time.Duration
	now        func() time.Time
	logger     *zap.SugaredLogger

	mu          sync.RWMutex
	loadedAt    time.Time
	texts       map[string]*models.Text
	buttons     map[string]*models.Button
	occupations []*models.Occupation
}

func NewCatalog(repository repositories.CatalogRepository, ttl time.Duration, logger *zap.SugaredLogger) Catalog {
	return &catalog{
		repository: repository,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
		texts:      indexTexts(DefaultTexts),
		buttons:    indexButtons(DefaultButtons),
	}
}

func (c *catalog) Text(slug string, lang models.Language) string {
	c.refreshIfStale()

	c.mu.RLock()
	text, ok := c.texts[slug]
	c.mu.RUnlock()

	if !ok {
		c.logger.Warnw("text not found", "slug", slug)
		return slug
	}

	return text.In(lang)
}

func (c *catalog) Button(slug string, lang models.Language) string {
	c.refreshIfStale()

	c.mu.RLock()
	button, ok := c.buttons[slug]
	c.mu.RUnlock()

	if !ok {
		c.logger.Warnw("button not found", "slug", slug)
		return slug
	}

	return button.In(lang)
}

func (c *catalog) Occupations() []*models.Occupation {
	c.refreshIfStale()

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.occupations) == 0 {
		return DefaultOccupations
	}

	return c.occupations
}

func (c *catalog) OccupationNames(slugs []string, lang models.Language) string {
	names := make(map[string]string)
	for _, occupation := range c.Occupations() {
		names[occupation.Slug] = occupation.In(lang)
	}

	parts := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if name, ok := names[slug]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, slug)
		}
	}

	return strings.Join(parts, ", ")
}

func (c *catalog) refreshIfStale() {
	c.mu.RLock()
	fresh := !c.loadedAt.IsZero() && c.now().Sub(c.loadedAt) < c.ttl
	c.mu.RUnlock()

	if fresh {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the timestamp moves even on failure so a broken database is not queried on every lookup
	c.loadedAt = c.now()

	texts, err := c.repository.GetTexts()
	if err != nil {
		c.logger.Errorw("failed to load texts", "error", err)
		return
	}

	buttons, err := c.repository.GetButtons()
	if err != nil {
		c.logger.Errorw("failed to load buttons", "error", err)
		return
	}

	occupations, err := c.repository.GetOccupations()
	if err != nil {
		c.logger.Errorw("failed to load occupations", "error", err)
		return
	}

	c.texts = indexTexts(DefaultTexts, texts)
	c.buttons = indexButtons(DefaultButtons, buttons)
	c.occupations = c.selectable(occupations)
}

// selectable drops occupations whose slug can not be carried in a button.
func (c *catalog) selectable(occupations []*models.Occupation) []*models.Occupation {
	result := make([]*models.Occupation, 0, len(occupations))
	for _, occupation := range occupations {
		slug := occupation.Slug
		if slug == "" || len(slug) > maxSlugLength || strings.Contains(slug, ":") {
			c.logger.Warnw("skipping occupation with unusable slug", "slug", slug)
			continue
		}
		result = append(result, occupation)
	}
	return result
}

func indexTexts(groups ...[]*models.Text) map[string]*models.Text {
	index := make(map[string]*models.Text)
	for _, group := range groups {
		for _, text := range group {
			index[text.Slug] = text
		}
	}
	return index
}

func indexButtons(groups ...[]*models.Button) map[string]*models.Button {
	index := make(map[string]*models.Button)
	for _, group := range groups {
		for _, button := range group {
			index[button.Slug] = button
		}
	}
	return index
}
