package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/form"
	"github.com/bestconstruction/internal/repository"
)

// serviceForm mirrors the admin service form fields.
type serviceForm struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
	Content     string `form:"content"`
	Category    string `form:"category"`
	Icon        string `form:"icon"`
	Featured    string `form:"featured"`
}

func (f serviceForm) toInput() repository.ServiceInput {
	slug := strings.TrimSpace(f.Slug)
	if slug == "" {
		slug = f.Title
	}

	return repository.ServiceInput{
		Title:       strings.TrimSpace(f.Title),
		Slug:        form.Slugify(slug),
		Description: strings.TrimSpace(f.Description),
		Content:     f.Content,
		Category:    strings.TrimSpace(f.Category),
		Icon:        strings.TrimSpace(f.Icon),
		IsFeatured:  form.Checkbox(f.Featured),
	}
}

// ShowServiceList renders the admin service listing.
func (a *API) ShowServiceList(c *gin.Context) {
	services, err := a.services.List(repository.ServiceFilter{})
	if err != nil {
		log.Error().Err(err).Msg("admin services: list")
		a.renderHTML(c, http.StatusInternalServerError, "services_manage.html", gin.H{
			"title": "Services",
			"error": "Failed to load services.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "services_manage.html", gin.H{
		"title":    "Services",
		"services": services,
	})
}

// ShowServiceNew renders an empty service form.
func (a *API) ShowServiceNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "service_form.html", gin.H{
		"title": "New Service",
	})
}

// ShowServiceEdit renders the form pre-filled with an existing service.
func (a *API) ShowServiceEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	service, err := a.services.GetByID(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Uint("id", id).Msg("admin services: get")
		}
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	a.renderHTML(c, http.StatusOK, "service_form.html", gin.H{
		"title":   "Edit Service",
		"service": service,
		"editing": true,
	})
}

// CreateService handles the new-service form submission.
func (a *API) CreateService(c *gin.Context) {
	var payload serviceForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "service_form.html", gin.H{
			"title": "New Service",
			"error": "Title is required.",
			"form":  payload,
		})
		return
	}

	if _, err := a.services.Create(payload.toInput()); err != nil {
		a.renderServiceFormError(c, "New Service", payload, err)
		return
	}

	setFlash(c, "Service created.")
	redirect(c, "/admin/services")
}

// UpdateService handles the edit-service form submission.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var payload serviceForm
	if err := c.ShouldBind(&payload); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "service_form.html", gin.H{
			"title":   "Edit Service",
			"error":   "Title is required.",
			"form":    payload,
			"editing": true,
		})
		return
	}

	if _, err := a.services.Update(id, payload.toInput()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		a.renderServiceFormError(c, "Edit Service", payload, err)
		return
	}

	setFlash(c, "Service updated.")
	redirect(c, "/admin/services")
}

// DeleteService removes a service and reports the outcome as JSON.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := a.services.Delete(id); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("admin services: delete")
		respondError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

func (a *API) renderServiceFormError(c *gin.Context, title string, payload serviceForm, err error) {
	if errors.Is(err, repository.ErrSlugTaken) {
		a.renderHTML(c, http.StatusConflict, "service_form.html", gin.H{
			"title": title,
			"error": "That slug is already in use. Pick another one.",
			"form":  payload,
		})
		return
	}

	log.Error().Err(err).Msg("admin services: save")
	a.renderHTML(c, http.StatusInternalServerError, "service_form.html", gin.H{
		"title": title,
		"error": "Failed to save the service. Please try again.",
		"form":  payload,
	})
}
