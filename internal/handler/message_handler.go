package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/repository"
)

// ShowMessages renders the admin inbox, optionally filtered by read state
// via ?filter=read or ?filter=unread.
func (a *API) ShowMessages(c *gin.Context) {
	filter := c.Query("filter")

	var isRead *bool
	switch filter {
	case "read":
		v := true
		isRead = &v
	case "unread":
		v := false
		isRead = &v
	}

	messages, err := a.messages.List(isRead)
	if err != nil {
		log.Error().Err(err).Msg("admin messages: list")
		a.renderHTML(c, http.StatusInternalServerError, "messages.html", gin.H{
			"title": "Messages",
			"error": "Failed to load messages.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "messages.html", gin.H{
		"title":    "Messages",
		"messages": messages,
		"filter":   filter,
	})
}

// MarkMessageRead toggles the read flag on a message. Store failures are
// surfaced to the caller, never silently dropped.
func (a *API) MarkMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	var payload struct {
		IsRead bool `json:"is_read"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := a.messages.MarkRead(id, payload.IsRead)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "message not found")
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("admin messages: mark read")
		respondError(c, http.StatusInternalServerError, "failed to update message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message updated", "item": message})
}
