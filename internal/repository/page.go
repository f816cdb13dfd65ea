package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// ErrPageContentMissing indicates an attempt to save a page without content.
var ErrPageContentMissing = errors.New("page content is required")

// PageRepository provides access to standalone content pages such as About.
type PageRepository struct {
	db     *gorm.DB
	routes *revalidate.Notifier
}

// NewPageRepository creates a PageRepository instance.
func NewPageRepository(gdb *gorm.DB, routes *revalidate.Notifier) *PageRepository {
	return &PageRepository{db: gdb, routes: routes}
}

// GetBySlug fetches a page for a given slug.
func (r *PageRepository) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &page, nil
}

// Save creates or updates the page stored under slug.
func (r *PageRepository) Save(slug, title, content string) (*db.Page, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrPageContentMissing
	}

	var page db.Page
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page = db.Page{Slug: slug, Title: title, Content: trimmed}
		if err := r.db.Create(&page).Error; err != nil {
			return nil, translateWriteError(err)
		}
		r.routes.Invalidate("/" + slug)
		return &page, nil
	}

	page.Content = trimmed
	if strings.TrimSpace(title) != "" {
		page.Title = title
	}

	if err := r.db.Save(&page).Error; err != nil {
		return nil, translateWriteError(err)
	}

	r.routes.Invalidate("/" + slug)
	return &page, nil
}
