package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"handymatch/models"
	"handymatch/services/view"
	"handymatch/utils"
)

// ViewHandler exposes the per-client navigation session.
type ViewHandler struct {
	Service *view.Service
}

func NewViewHandler(service *view.Service) *ViewHandler {
	return &ViewHandler{Service: service}
}

// StartSessionHandler creates a fresh navigation session on the home view.
func (h *ViewHandler) StartSessionHandler(c *gin.Context) {
	sess, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create view session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// GetSessionHandler returns the current navigation state.
func (h *ViewHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// NavigateHandler switches the current view.
func (h *ViewHandler) NavigateHandler(c *gin.Context) {
	var input struct {
		View models.ViewState `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Service.Navigate(c.Request.Context(), c.Param("sessionID"), input.View)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SetFilterHandler activates a category filter directly.
func (h *ViewHandler) SetFilterHandler(c *gin.Context) {
	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	category, err := models.ParseCategory(input.Category)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}

	sess, err := h.Service.SetFilter(c.Request.Context(), c.Param("sessionID"), category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ClearFilterHandler drops the active filter and analysis result.
func (h *ViewHandler) ClearFilterHandler(c *gin.Context) {
	sess, err := h.Service.ClearFilter(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *ViewHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, view.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, view.ErrUnknownView):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "View operation failed", err.Error())
	}
}
