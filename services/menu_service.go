package services

import (
	"math"

	"doener-shop/catalog"
	"doener-shop/models"
)

type MenuService struct {
	catalog *catalog.Catalog
	engine  *ConfigEngine
}

func NewMenuService(cat *catalog.Catalog, engine *ConfigEngine) *MenuService {
	return &MenuService{catalog: cat, engine: engine}
}

func (s *MenuService) Sections() []models.MenuSection {
	return s.catalog.Sections()
}

func (s *MenuService) Section(key string) (models.MenuSection, error) {
	section, ok := s.catalog.Section(key)
	if !ok {
		return models.MenuSection{}, validationErr("section", "unknown section %q", key)
	}
	return section, nil
}

// ItemDetail is a menu item together with what the configurator will ask for.
type ItemDetail struct {
	models.MenuItem
	NeedsConfiguration bool     `json:"needs_configuration"`
	SauceOptions       []string `json:"sauce_options,omitempty"`
}

func (s *MenuService) Item(id int) (ItemDetail, error) {
	item, ok := s.catalog.Find(id)
	if !ok {
		return ItemDetail{}, ErrItemNotFound
	}
	detail := ItemDetail{MenuItem: item, NeedsConfiguration: s.engine.NeedsConfiguration(item)}
	if item.OffersSauce {
		detail.SauceOptions = s.catalog.SauceRule(item).Options
	}
	return detail, nil
}

// Search returns one page of matching items and the total match count.
func (s *MenuService) Search(query string, page, limit int) ([]models.MenuItem, models.PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	matches := s.catalog.Search(query)
	total := len(matches)
	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.MenuItem{}, meta
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matches[start:end], meta
}
