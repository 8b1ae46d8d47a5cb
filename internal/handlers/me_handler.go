package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/middleware"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	}

	// Detalle del rol cuando existe.
	switch access.Role(user.Role) {
	case access.RoleVeterinarian:
		var vet models.Veterinarian
		if err := h.db.Where("user_id = ?", user.ID).First(&vet).Error; err == nil {
			resp["veterinarian"] = vet
		}
	case access.RoleClient:
		var client models.Client
		if err := h.db.Where("user_id = ?", user.ID).First(&client).Error; err == nil {
			resp["client"] = client
		}
	}

	c.JSON(http.StatusOK, resp)
}
