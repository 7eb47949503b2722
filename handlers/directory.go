package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handymatch/models"
	"handymatch/services/directory"
	"handymatch/utils"
)

// DirectoryHandler serves the professional list and contact handoff.
type DirectoryHandler struct {
	Directory *directory.Store
}

func NewDirectoryHandler(dir *directory.Store) *DirectoryHandler {
	return &DirectoryHandler{Directory: dir}
}

// professionalDTO decorates a record with its localized category label so
// clients never have to map identifiers themselves.
type professionalDTO struct {
	models.Professional
	CategoryLabel string `json:"categoryLabel"`
}

// ListProfessionalsHandler returns the directory filtered by an optional
// exact category and ordered by the requested criterion (rating by
// default). An unmatched category yields an empty list, not an error.
func (h *DirectoryHandler) ListProfessionalsHandler(c *gin.Context) {
	sortBy, err := directory.ParseSortBy(c.Query("sort"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sort criterion", err.Error())
		return
	}

	var filter *models.Category
	if raw := c.Query("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid category", err.Error())
			return
		}
		filter = &category
	}

	pros := h.Directory.Query(filter, sortBy)
	out := make([]professionalDTO, 0, len(pros))
	for _, p := range pros {
		out = append(out, professionalDTO{Professional: p, CategoryLabel: p.Category.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"professionals": out, "count": len(out)})
}

// ContactHandler returns the chat-app deep link and dial link for a
// professional's phone number.
func (h *DirectoryHandler) ContactHandler(c *gin.Context) {
	id := c.Param("id")
	pro, ok := h.Directory.FindByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Professional not found", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professionalId": pro.ID,
		"whatsapp":       utils.WhatsAppLink(pro.PhoneNumber),
		"phone":          utils.DialLink(pro.PhoneNumber),
	})
}
