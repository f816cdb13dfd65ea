package repository

import (
	"gorm.io/gorm"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// ProjectRepository 封装工程案例相关的数据库操作
type ProjectRepository struct {
	db     *gorm.DB
	routes *revalidate.Notifier
}

// ProjectInput represents fields accepted when creating or updating a project.
type ProjectInput struct {
	Title       string
	Slug        string
	Description string
	Content     string
	Category    string
	Client      string
	Year        string
	Location    string
	Images      []string
	IsFeatured  bool
}

// ProjectFilter describes optional exact-match filters for listing.
type ProjectFilter struct {
	Featured *bool
	Category string
}

// NewProjectRepository creates a ProjectRepository instance.
func NewProjectRepository(gdb *gorm.DB, routes *revalidate.Notifier) *ProjectRepository {
	return &ProjectRepository{db: gdb, routes: routes}
}

// List returns projects ordered by id descending (newest first).
func (r *ProjectRepository) List(filter ProjectFilter) ([]db.Project, error) {
	query := r.db.Model(&db.Project{}).Order("id desc")
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	var projects []db.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID fetches a project by id.
func (r *ProjectRepository) GetByID(id uint) (*db.Project, error) {
	var project db.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &project, nil
}

// GetBySlug fetches a project for a given slug.
func (r *ProjectRepository) GetBySlug(slug string) (*db.Project, error) {
	var project db.Project
	if err := r.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &project, nil
}

// Create persists a new project and invalidates the affected routes.
func (r *ProjectRepository) Create(input ProjectInput) (*db.Project, error) {
	project := db.Project{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Content:     input.Content,
		Category:    input.Category,
		Client:      input.Client,
		Year:        input.Year,
		Location:    input.Location,
		Images:      db.StringList(input.Images),
		IsFeatured:  input.IsFeatured,
	}

	if err := r.db.Create(&project).Error; err != nil {
		return nil, translateWriteError(err)
	}

	r.routes.Invalidate("/", "/portfolio", "/portfolio/"+project.Slug, "/admin/portfolio")
	return &project, nil
}

// Update applies changes to an existing project.
func (r *ProjectRepository) Update(id uint, input ProjectInput) (*db.Project, error) {
	var existing db.Project
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, translateLookupError(err)
	}

	oldSlug := existing.Slug
	existing.Title = input.Title
	existing.Slug = input.Slug
	existing.Description = input.Description
	existing.Content = input.Content
	existing.Category = input.Category
	existing.Client = input.Client
	existing.Year = input.Year
	existing.Location = input.Location
	existing.Images = db.StringList(input.Images)
	existing.IsFeatured = input.IsFeatured

	if err := r.db.Save(&existing).Error; err != nil {
		return nil, translateWriteError(err)
	}

	paths := []string{"/", "/portfolio", "/portfolio/" + existing.Slug, "/admin/portfolio"}
	if oldSlug != existing.Slug {
		paths = append(paths, "/portfolio/"+oldSlug)
	}
	r.routes.Invalidate(paths...)
	return &existing, nil
}

// Delete removes a project by id. The row is removed outright so the
// unique slug becomes available again.
func (r *ProjectRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&db.Project{}, id).Error; err != nil {
		return err
	}

	r.routes.Invalidate("/", "/portfolio", "/admin/portfolio")
	return nil
}
