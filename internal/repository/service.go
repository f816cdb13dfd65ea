package repository

import (
	"gorm.io/gorm"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// ServiceRepository 封装服务项相关的数据库操作
type ServiceRepository struct {
	db     *gorm.DB
	routes *revalidate.Notifier
}

// ServiceInput represents fields accepted when creating or updating a service.
type ServiceInput struct {
	Title       string
	Slug        string
	Description string
	Content     string
	Category    string
	Icon        string
	IsFeatured  bool
}

// ServiceFilter describes optional exact-match filters for listing.
type ServiceFilter struct {
	Featured *bool
}

// NewServiceRepository creates a ServiceRepository instance.
func NewServiceRepository(gdb *gorm.DB, routes *revalidate.Notifier) *ServiceRepository {
	return &ServiceRepository{db: gdb, routes: routes}
}

// List returns services ordered by id ascending.
func (r *ServiceRepository) List(filter ServiceFilter) ([]db.Service, error) {
	query := r.db.Model(&db.Service{}).Order("id asc")
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var services []db.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID fetches a service by id.
func (r *ServiceRepository) GetByID(id uint) (*db.Service, error) {
	var service db.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &service, nil
}

// GetBySlug fetches a service for a given slug.
func (r *ServiceRepository) GetBySlug(slug string) (*db.Service, error) {
	var service db.Service
	if err := r.db.Where("slug = ?", slug).First(&service).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &service, nil
}

// Create persists a new service and invalidates the affected routes.
func (r *ServiceRepository) Create(input ServiceInput) (*db.Service, error) {
	service := db.Service{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Content:     input.Content,
		Category:    input.Category,
		Icon:        input.Icon,
		IsFeatured:  input.IsFeatured,
	}

	if err := r.db.Create(&service).Error; err != nil {
		return nil, translateWriteError(err)
	}

	r.routes.Invalidate("/", "/services", "/services/"+service.Slug, "/admin/services")
	return &service, nil
}

// Update applies changes to an existing service.
func (r *ServiceRepository) Update(id uint, input ServiceInput) (*db.Service, error) {
	var existing db.Service
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, translateLookupError(err)
	}

	oldSlug := existing.Slug
	existing.Title = input.Title
	existing.Slug = input.Slug
	existing.Description = input.Description
	existing.Content = input.Content
	existing.Category = input.Category
	existing.Icon = input.Icon
	existing.IsFeatured = input.IsFeatured

	if err := r.db.Save(&existing).Error; err != nil {
		return nil, translateWriteError(err)
	}

	paths := []string{"/", "/services", "/services/" + existing.Slug, "/admin/services"}
	if oldSlug != existing.Slug {
		paths = append(paths, "/services/"+oldSlug)
	}
	r.routes.Invalidate(paths...)
	return &existing, nil
}

// Delete removes a service by id. The row is removed outright so the
// unique slug becomes available again.
func (r *ServiceRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&db.Service{}, id).Error; err != nil {
		return err
	}

	r.routes.Invalidate("/", "/services", "/admin/services")
	return nil
}
