package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/repository"
)

// Public read handlers degrade on store failure: the error is logged and
// the page renders an empty result set instead of failing the request.

// ShowHome renders the public home page with featured content.
func (a *API) ShowHome(c *gin.Context) {
	featured := true

	services, err := a.services.List(repository.ServiceFilter{Featured: &featured})
	if err != nil {
		log.Error().Err(err).Msg("home: list featured services")
		services = nil
	}

	projects, err := a.projects.List(repository.ProjectFilter{Featured: &featured})
	if err != nil {
		log.Error().Err(err).Msg("home: list featured projects")
		projects = nil
	}

	posts, err := a.posts.ListPublished(3)
	if err != nil {
		log.Error().Err(err).Msg("home: list latest posts")
		posts = nil
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":    "Home",
		"services": services,
		"projects": projects,
		"posts":    posts,
	})
}

// ShowServices renders the full services listing.
func (a *API) ShowServices(c *gin.Context) {
	services, err := a.services.List(repository.ServiceFilter{})
	if err != nil {
		log.Error().Err(err).Msg("services: list")
		services = nil
	}

	a.renderHTML(c, http.StatusOK, "services.html", gin.H{
		"title":      "Our Services",
		"services":   services,
		"categories": distinctServiceCategories(services),
	})
}

// ShowServiceDetail renders one service with markdown content.
func (a *API) ShowServiceDetail(c *gin.Context) {
	slug := c.Param("slug")

	service, err := a.services.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("slug", slug).Msg("services: get by slug")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	content, err := renderMarkdown(service.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("services: render content")
	}

	a.renderHTML(c, http.StatusOK, "service_detail.html", gin.H{
		"title":   service.Title,
		"service": service,
		"content": content,
	})
}

// ShowPortfolio renders the project grid with category tabs. The tab set
// is derived from the categories present in the current result set.
func (a *API) ShowPortfolio(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	all, err := a.projects.List(repository.ProjectFilter{})
	if err != nil {
		log.Error().Err(err).Msg("portfolio: list")
		all = nil
	}

	projects := all
	if category != "" && category != "all" {
		projects = nil
		for _, project := range all {
			if project.Category == category {
				projects = append(projects, project)
			}
		}
	}

	a.renderHTML(c, http.StatusOK, "portfolio.html", gin.H{
		"title":      "Our Portfolio",
		"projects":   projects,
		"categories": distinctProjectCategories(all),
		"active":     category,
	})
}

// ShowPortfolioDetail renders one project with its image gallery.
func (a *API) ShowPortfolioDetail(c *gin.Context) {
	slug := c.Param("slug")

	project, err := a.projects.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("slug", slug).Msg("portfolio: get by slug")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	content, err := renderMarkdown(project.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("portfolio: render content")
	}

	a.renderHTML(c, http.StatusOK, "portfolio_detail.html", gin.H{
		"title":   project.Title,
		"project": project,
		"content": content,
	})
}

// ShowBlog renders published posts with a popular tag cloud.
func (a *API) ShowBlog(c *gin.Context) {
	posts, err := a.posts.ListPublished(0)
	if err != nil {
		log.Error().Err(err).Msg("blog: list published")
		posts = nil
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"title": "Blog",
		"posts": posts,
		"tags":  popularTags(posts, 8),
	})
}

// ShowBlogDetail renders one published post. Drafts are invisible on the
// public site even when the slug is known.
func (a *API) ShowBlogDetail(c *gin.Context) {
	slug := c.Param("slug")

	post, err := a.posts.GetBySlug(slug)
	if err != nil || !post.IsPublished() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("slug", slug).Msg("blog: get by slug")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	content, err := renderMarkdown(post.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("blog: render content")
	}

	a.renderHTML(c, http.StatusOK, "blog_detail.html", gin.H{
		"title":   post.Title,
		"post":    post,
		"content": content,
	})
}

// ShowAbout renders the about page from the pages table.
func (a *API) ShowAbout(c *gin.Context) {
	page, err := a.pages.GetBySlug("about")
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Msg("about: get page")
		}
		a.renderHTML(c, http.StatusOK, "about.html", gin.H{"title": "About Us"})
		return
	}

	content, err := renderMarkdown(page.Content)
	if err != nil {
		log.Error().Err(err).Msg("about: render content")
	}

	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title":   page.Title,
		"page":    page,
		"content": content,
	})
}

// contactForm mirrors the public contact form fields. Required-field
// validation lives here, not in the repository.
type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{"title": "Contact Us"})
}

// SubmitContact stores a contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
			"title": "Contact Us",
			"error": "Please fill in your name, a valid email, a subject and a message.",
			"form":  form,
		})
		return
	}

	if _, err := a.messages.Submit(repository.MessageInput{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}); err != nil {
		log.Error().Err(err).Msg("contact: submit")
		a.renderHTML(c, http.StatusInternalServerError, "contact.html", gin.H{
			"title": "Contact Us",
			"error": "There was a problem sending your message. Please try again.",
			"form":  form,
		})
		return
	}

	setFlash(c, "Thanks for reaching out! We will get back to you shortly.")
	redirect(c, "/contact")
}

func distinctServiceCategories(services []db.Service) []string {
	return distinct(services, func(s db.Service) string { return s.Category })
}

func distinctProjectCategories(projects []db.Project) []string {
	return distinct(projects, func(p db.Project) string { return p.Category })
}

// distinct collects non-empty values in first-seen order.
func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	var values []string
	for _, item := range items {
		v := key(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// popularTags scans posts for tags and keeps the first limit distinct ones.
func popularTags(posts []db.BlogPost, limit int) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if limit > 0 && len(tags) == limit {
				return tags
			}
		}
	}
	return tags
}
