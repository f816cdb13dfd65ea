package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/form"
	"github.com/bestconstruction/internal/repository"
)

// projectForm mirrors the admin portfolio form fields.
type projectForm struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
	Content     string `form:"content"`
	Category    string `form:"category"`
	Client      string `form:"client"`
	Year        string `form:"year"`
	Location    string `form:"location"`
	Images      string `form:"images"`
	Featured    string `form:"featured"`
}

func (f projectForm) toInput() repository.ProjectInput {
	slug := strings.TrimSpace(f.Slug)
	if slug == "" {
		slug = f.Title
	}

	return repository.ProjectInput{
		Title:       strings.TrimSpace(f.Title),
		Slug:        form.Slugify(slug),
		Description: strings.TrimSpace(f.Description),
		Content:     f.Content,
		Category:    strings.TrimSpace(f.Category),
		Client:      strings.TrimSpace(f.Client),
		Year:        strings.TrimSpace(f.Year),
		Location:    strings.TrimSpace(f.Location),
		Images:      form.SplitList(f.Images),
		IsFeatured:  form.Checkbox(f.Featured),
	}
}

// ShowPortfolioList renders the admin project listing.
func (a *API) ShowPortfolioList(c *gin.Context) {
	projects, err := a.projects.List(repository.ProjectFilter{})
	if err != nil {
		log.Error().Err(err).Msg("admin portfolio: list")
		a.renderHTML(c, http.StatusInternalServerError, "portfolio_manage.html", gin.H{
			"title": "Projects",
			"error": "Failed to load projects.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "portfolio_manage.html", gin.H{
		"title":    "Projects",
		"projects": projects,
	})
}

// ShowPortfolioNew renders an empty project form.
func (a *API) ShowPortfolioNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "portfolio_form.html", gin.H{
		"title":      "New Project",
		"categories": db.ProjectCategories(),
	})
}

// ShowPortfolioEdit renders the form pre-filled with an existing project.
func (a *API) ShowPortfolioEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	project, err := a.projects.GetByID(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Uint("id", id).Msg("admin portfolio: get")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	a.renderHTML(c, http.StatusOK, "portfolio_form.html", gin.H{
		"title":      "Edit Project",
		"project":    project,
		"images":     form.JoinList(project.Images),
		"categories": db.ProjectCategories(),
		"editing":    true,
	})
}

// CreatePortfolioProject handles the new-project form submission.
func (a *API) CreatePortfolioProject(c *gin.Context) {
	var payload projectForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "portfolio_form.html", gin.H{
			"title":      "New Project",
			"error":      "Title is required.",
			"form":       payload,
			"categories": db.ProjectCategories(),
		})
		return
	}

	if _, err := a.projects.Create(payload.toInput()); err != nil {
		a.renderProjectFormError(c, "New Project", payload, err)
		return
	}

	setFlash(c, "Project created.")
	redirect(c, "/admin/portfolio")
}

// UpdatePortfolioProject handles the edit-project form submission.
func (a *API) UpdatePortfolioProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var payload projectForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "portfolio_form.html", gin.H{
			"title":      "Edit Project",
			"error":      "Title is required.",
			"form":       payload,
			"categories": db.ProjectCategories(),
			"editing":    true,
		})
		return
	}

	if _, err := a.projects.Update(id, payload.toInput()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		a.renderProjectFormError(c, "Edit Project", payload, err)
		return
	}

	setFlash(c, "Project updated.")
	redirect(c, "/admin/portfolio")
}

// DeletePortfolioProject removes a project and reports the outcome as JSON.
func (a *API) DeletePortfolioProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("admin portfolio: delete")
		respondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (a *API) renderProjectFormError(c *gin.Context, title string, payload projectForm, err error) {
	if errors.Is(err, repository.ErrSlugTaken) {
		a.renderHTML(c, http.StatusConflict, "portfolio_form.html", gin.H{
			"title":      title,
			"error":      "That slug is already in use. Pick another one.",
			"form":       payload,
			"categories": db.ProjectCategories(),
		})
		return
	}

	log.Error().Err(err).Msg("admin portfolio: save")
	a.renderHTML(c, http.StatusInternalServerError, "portfolio_form.html", gin.H{
		"title":      title,
		"error":      "Failed to save the project. Please try again.",
		"form":       payload,
		"categories": db.ProjectCategories(),
	})
}
