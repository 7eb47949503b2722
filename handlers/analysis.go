package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ai "handymatch/services/intelligence"
	"handymatch/services/view"
	"handymatch/utils"
)

// AnalysisHandler exposes the image-analysis endpoint.
type AnalysisHandler struct {
	Analysis      ai.AnalysisService
	Views         *view.Service
	MaxImageBytes int64
}

func NewAnalysisHandler(analysis ai.AnalysisService, views *view.Service, maxImageBytes int64) *AnalysisHandler {
	return &AnalysisHandler{Analysis: analysis, Views: views, MaxImageBytes: maxImageBytes}
}

// AnalyzeImageHandler accepts a multipart "image" file, rejects oversized
// payloads before any network call, runs the classification and, when a
// view session is supplied, records the result there (which activates the
// category filter and forces the professional list view).
func (h *AnalysisHandler) AnalyzeImageHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing image", "attach the photo as the \"image\" form field")
		return
	}
	if fileHeader.Size > h.MaxImageBytes {
		utils.JSONError(c, http.StatusBadRequest, "Image too large",
			"the photo must be at most 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable image", err.Error())
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, h.MaxImageBytes+1))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable image", err.Error())
		return
	}
	if int64(len(imageData)) > h.MaxImageBytes {
		utils.JSONError(c, http.StatusBadRequest, "Image too large",
			"the photo must be at most 5MB")
		return
	}

	result := h.Analysis.AnalyzeIssue(c.Request.Context(), imageData, fileHeader.Header.Get("Content-Type"))
	if result.Fallback {
		logger.Warn("image analysis degraded to fallback result")
	}

	// Completing an analysis drives the view session straight to the
	// filtered professional list.
	if sessionID := c.Query("sessionID"); sessionID != "" {
		if _, err := h.Views.CompleteAnalysis(c.Request.Context(), sessionID, result); err != nil {
			logger.Warn("failed to record analysis on view session",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}
