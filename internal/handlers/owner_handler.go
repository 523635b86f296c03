package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/middleware"
	"github.com/onligro/salon-scheduler/internal/models"
)

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

// Profile returns the authenticated owner together with their salon,
// nil when no salon has been created yet.
func (h *OwnerHandler) Profile(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var owner models.Owner
	if err := h.db.First(&owner, ownerID).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	var salon *models.Salon
	var s models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&s).Error; err == nil {
		salon = &s
	}

	c.JSON(http.StatusOK, gin.H{
		"owner": owner,
		"salon": salon,
	})
}
