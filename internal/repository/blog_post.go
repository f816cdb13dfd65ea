package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// BlogPostRepository 封装博客文章相关的数据库操作
type BlogPostRepository struct {
	db     *gorm.DB
	routes *revalidate.Notifier
}

// BlogPostInput represents fields accepted when creating or updating a post.
// PublishedAt carries the already-normalized publish toggle: nil keeps the
// post a draft, a value publishes it at that instant.
type BlogPostInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Tags        []string
	Image       string
	Author      string
	PublishedAt *time.Time
}

// NewBlogPostRepository creates a BlogPostRepository instance.
func NewBlogPostRepository(gdb *gorm.DB, routes *revalidate.Notifier) *BlogPostRepository {
	return &BlogPostRepository{db: gdb, routes: routes}
}

// List returns all posts, drafts included, newest first by creation time.
func (r *BlogPostRepository) List() ([]db.BlogPost, error) {
	var posts []db.BlogPost
	if err := r.db.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPublished returns published posts ordered by publish time descending.
// limit <= 0 returns all published posts.
func (r *BlogPostRepository) ListPublished(limit int) ([]db.BlogPost, error) {
	query := r.db.Where("published_at IS NOT NULL").Order("published_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var posts []db.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID fetches a post by id.
func (r *BlogPostRepository) GetByID(id uint) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &post, nil
}

// GetBySlug fetches a post for a given slug.
func (r *BlogPostRepository) GetBySlug(slug string) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &post, nil
}

// Create persists a new post and invalidates the affected routes.
func (r *BlogPostRepository) Create(input BlogPostInput) (*db.BlogPost, error) {
	post := db.BlogPost{
		Title:       input.Title,
		Slug:        input.Slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Tags:        db.StringList(input.Tags),
		Image:       input.Image,
		Author:      input.Author,
		PublishedAt: input.PublishedAt,
	}

	if err := r.db.Create(&post).Error; err != nil {
		return nil, translateWriteError(err)
	}

	r.routes.Invalidate("/blog", "/blog/"+post.Slug, "/admin/blog")
	return &post, nil
}

// Update applies changes to an existing post. The publish timestamp is
// replaced wholesale: re-saving a published post as a draft clears it.
func (r *BlogPostRepository) Update(id uint, input BlogPostInput) (*db.BlogPost, error) {
	var existing db.BlogPost
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, translateLookupError(err)
	}

	oldSlug := existing.Slug
	existing.Title = input.Title
	existing.Slug = input.Slug
	existing.Content = input.Content
	existing.Excerpt = input.Excerpt
	existing.Tags = db.StringList(input.Tags)
	existing.Image = input.Image
	existing.Author = input.Author
	existing.PublishedAt = input.PublishedAt

	// Save writes every column, so a nil PublishedAt clears the stored
	// timestamp when the post returns to draft.
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, translateWriteError(err)
	}

	paths := []string{"/blog", "/blog/" + existing.Slug, "/admin/blog"}
	if oldSlug != existing.Slug {
		paths = append(paths, "/blog/"+oldSlug)
	}
	r.routes.Invalidate(paths...)
	return &existing, nil
}

// Delete removes a post by id. The row is removed outright so the
// unique slug becomes available again.
func (r *BlogPostRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&db.BlogPost{}, id).Error; err != nil {
		return err
	}

	r.routes.Invalidate("/blog", "/admin/blog")
	return nil
}
