package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/form"
	"github.com/bestconstruction/internal/repository"
)

// blogPostForm mirrors the admin blog form fields before normalization.
type blogPostForm struct {
	Title     string `form:"title" binding:"required"`
	Slug      string `form:"slug"`
	Content   string `form:"content"`
	Excerpt   string `form:"excerpt"`
	Tags      string `form:"tags"`
	Image     string `form:"image"`
	Author    string `form:"author"`
	Published string `form:"published"`
}

// toInput applies the shared normalization rules: comma lists split, the
// checkbox sentinel becomes a bool, the publish toggle stamps now or nil,
// and a blank slug derives from the title.
func (f blogPostForm) toInput(now time.Time) repository.BlogPostInput {
	slug := strings.TrimSpace(f.Slug)
	if slug == "" {
		slug = f.Title
	}

	return repository.BlogPostInput{
		Title:       strings.TrimSpace(f.Title),
		Slug:        form.Slugify(slug),
		Content:     f.Content,
		Excerpt:     strings.TrimSpace(f.Excerpt),
		Tags:        form.SplitList(f.Tags),
		Image:       strings.TrimSpace(f.Image),
		Author:      strings.TrimSpace(f.Author),
		PublishedAt: form.PublishedAt(form.Checkbox(f.Published), now),
	}
}

// ShowBlogList renders the admin blog listing.
func (a *API) ShowBlogList(c *gin.Context) {
	posts, err := a.posts.List()
	if err != nil {
		log.Error().Err(err).Msg("admin blog: list")
		a.renderHTML(c, http.StatusInternalServerError, "blog_manage.html", gin.H{
			"title": "Blog Posts",
			"error": "Failed to load blog posts.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "blog_manage.html", gin.H{
		"title": "Blog Posts",
		"posts": posts,
	})
}

// ShowBlogNew renders an empty blog post form.
func (a *API) ShowBlogNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "blog_form.html", gin.H{
		"title": "New Blog Post",
	})
}

// ShowBlogEdit renders the form pre-filled with an existing post.
func (a *API) ShowBlogEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.GetByID(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Uint("id", id).Msg("admin blog: get")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	a.renderHTML(c, http.StatusOK, "blog_form.html", gin.H{
		"title":   "Edit Blog Post",
		"post":    post,
		"tags":    form.JoinList(post.Tags),
		"editing": true,
	})
}

// CreateBlogPost handles the new-post form submission.
func (a *API) CreateBlogPost(c *gin.Context) {
	var payload blogPostForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "blog_form.html", gin.H{
			"title": "New Blog Post",
			"error": "Title is required.",
			"form":  payload,
		})
		return
	}

	if _, err := a.posts.Create(payload.toInput(time.Now().UTC())); err != nil {
		a.renderBlogFormError(c, "New Blog Post", payload, err)
		return
	}

	setFlash(c, "Blog post created.")
	redirect(c, "/admin/blog")
}

// UpdateBlogPost handles the edit-post form submission.
func (a *API) UpdateBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var payload blogPostForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "blog_form.html", gin.H{
			"title":   "Edit Blog Post",
			"error":   "Title is required.",
			"form":    payload,
			"editing": true,
		})
		return
	}

	if _, err := a.posts.Update(id, payload.toInput(time.Now().UTC())); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		a.renderBlogFormError(c, "Edit Blog Post", payload, err)
		return
	}

	setFlash(c, "Blog post updated.")
	redirect(c, "/admin/blog")
}

// DeleteBlogPost removes a post and reports the outcome as JSON.
func (a *API) DeleteBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("admin blog: delete")
		respondError(c, http.StatusInternalServerError, "failed to delete blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}

func (a *API) renderBlogFormError(c *gin.Context, title string, payload blogPostForm, err error) {
	if errors.Is(err, repository.ErrSlugTaken) {
		a.renderHTML(c, http.StatusConflict, "blog_form.html", gin.H{
			"title": title,
			"error": "That slug is already in use. Pick another one.",
			"form":  payload,
		})
		return
	}

	log.Error().Err(err).Msg("admin blog: save")
	a.renderHTML(c, http.StatusInternalServerError, "blog_form.html", gin.H{
		"title": title,
		"error": "Failed to save the blog post. Please try again.",
		"form":  payload,
	})
}
