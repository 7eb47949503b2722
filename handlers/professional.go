package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"handymatch/models"
	"handymatch/services/professional"
	"handymatch/utils"
)

// ProfessionalHandler exposes sign-up and account deletion.
type ProfessionalHandler struct {
	Registration *professional.RegistrationService
	Deletion     *professional.DeletionService
}

func NewProfessionalHandler(registration *professional.RegistrationService, deletion *professional.DeletionService) *ProfessionalHandler {
	return &ProfessionalHandler{Registration: registration, Deletion: deletion}
}

// RegisterHandler accepts a sign-up form and prepends the new record to
// the directory. Missing required fields fail binding; nothing partial is
// ever stored.
func (h *ProfessionalHandler) RegisterHandler(c *gin.Context) {
	var data models.RegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration data", err.Error())
		return
	}

	pro, err := h.Registration.Register(data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "application received",
		"professional": pro,
	})
}

// StartDeletionHandler runs the simulated profile lookup and opens a
// deletion session pending confirmation.
func (h *ProfessionalHandler) StartDeletionHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Deletion.Start(c.Request.Context(), input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ConfirmDeletionHandler performs the irreversible removal.
func (h *ProfessionalHandler) ConfirmDeletionHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, err := h.Deletion.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	logger.Info("deletion confirmed", zap.String("sessionID", sess.ID))
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// CancelDeletionHandler discards the deletion session, returning the
// client to the search form.
func (h *ProfessionalHandler) CancelDeletionHandler(c *gin.Context) {
	if err := h.Deletion.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel deletion", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
}

func (h *ProfessionalHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, professional.ErrAccountNotFound),
		errors.Is(err, professional.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, professional.ErrInvalidStep):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, professional.ErrUnknownCategory),
		errors.Is(err, professional.ErrInvalidRate),
		errors.Is(err, professional.ErrEmailRequired):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Professional operation failed", err.Error())
	}
}
