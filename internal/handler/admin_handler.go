package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/form"
	"github.com/bestconstruction/internal/repository"
)

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	var serviceCount, projectCount, postCount, messageCount int64
	a.db.Model(&db.Service{}).Count(&serviceCount)
	a.db.Model(&db.Project{}).Count(&projectCount)
	a.db.Model(&db.BlogPost{}).Count(&postCount)
	a.db.Model(&db.Message{}).Count(&messageCount)

	unread, err := a.messages.CountUnread()
	if err != nil {
		log.Error().Err(err).Msg("dashboard: count unread")
	}

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":        "Dashboard",
		"serviceCount": serviceCount,
		"projectCount": projectCount,
		"postCount":    postCount,
		"messageCount": messageCount,
		"unreadCount":  unread,
	})
}

// ShowAboutEditor renders the about page editor.
func (a *API) ShowAboutEditor(c *gin.Context) {
	page, err := a.pages.GetBySlug("about")
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Msg("admin about: load")
		a.renderHTML(c, http.StatusInternalServerError, "about_edit.html", gin.H{
			"title": "About Page",
			"error": "Failed to load the about page.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "about_edit.html", gin.H{
		"title": "About Page",
		"page":  page,
	})
}

// SaveAboutPage stores the edited about page content.
func (a *API) SaveAboutPage(c *gin.Context) {
	title := c.PostForm("page_title")
	content := c.PostForm("content")

	if _, err := a.pages.Save("about", title, content); err != nil {
		status := http.StatusInternalServerError
		message := "Failed to save the about page."
		if errors.Is(err, repository.ErrPageContentMissing) {
			status = http.StatusBadRequest
			message = "Content is required."
		} else {
			log.Error().Err(err).Msg("admin about: save")
		}
		a.renderHTML(c, status, "about_edit.html", gin.H{
			"title": "About Page",
			"error": message,
		})
		return
	}

	setFlash(c, "About page saved.")
	redirect(c, "/admin/about")
}

// PreviewSlug returns the slug derived from a title, for the form's
// generate button.
func (a *API) PreviewSlug(c *gin.Context) {
	title := c.Query("title")
	c.JSON(http.StatusOK, gin.H{"slug": form.Slugify(title)})
}
