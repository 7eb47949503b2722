package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"handymatch/models"
	"handymatch/services/booking"
	"handymatch/utils"
)

// BookingHandler exposes the hire-and-escrow flow.
type BookingHandler struct {
	Service *booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(service *booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// StartSession opens a booking session for a professional.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Service.Start(c.Request.Context(), input.ProfessionalID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// GetSession returns the current state of a booking session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SetHours adjusts the hour estimate on the details step.
func (h *BookingHandler) SetHours(c *gin.Context) {
	var input struct {
		Hours int `json:"hours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Service.SetHours(c.Request.Context(), c.Param("sessionID"), input.Hours)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ConfirmDetails moves the session to payment selection.
func (h *BookingHandler) ConfirmDetails(c *gin.Context) {
	sess, err := h.Service.ConfirmDetails(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SubmitPayment runs the simulated capture and moves the session into escrow.
func (h *BookingHandler) SubmitPayment(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Service.SubmitPayment(c.Request.Context(), c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// CompleteService asserts the work is done and opens the review step.
func (h *BookingHandler) CompleteService(c *gin.Context) {
	sess, err := h.Service.CompleteService(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SubmitReview records the rating and comment and releases the payment.
func (h *BookingHandler) SubmitReview(c *gin.Context) {
	var input struct {
		Rating int    `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, receipt, err := h.Service.SubmitReview(c.Request.Context(), c.Param("sessionID"), input.Rating, input.Review)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "receipt": receipt})
}

// CloseSession discards the session regardless of step.
func (h *BookingHandler) CloseSession(c *gin.Context) {
	if err := h.Service.Close(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to close booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session closed"})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, booking.ErrProfessionalNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, booking.ErrInvalidStep):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, booking.ErrInvalidHours),
		errors.Is(err, booking.ErrInvalidMethod),
		errors.Is(err, booking.ErrInvalidRating),
		errors.Is(err, booking.ErrReviewRequired):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}
