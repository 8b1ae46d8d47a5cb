package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

type VeterinarianHandler struct {
	db   *gorm.DB
	repo domain.Repository
	gate access.Gate
}

func NewVeterinarianHandler(db *gorm.DB, repo domain.Repository, gate access.Gate) *VeterinarianHandler {
	return &VeterinarianHandler{db: db, repo: repo, gate: gate}
}

// ======================================================
// LIST
// ======================================================

func (h *VeterinarianHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Veterinarian{})

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(specialty) LIKE ?",
			like, like, like,
		)
	}

	var vets []models.Veterinarian
	if err := q.
		Order("last_name ASC, first_name ASC").
		Find(&vets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_veterinarians", "Error al listar veterinarios.")
		return
	}

	c.JSON(http.StatusOK, vets)
}

// ======================================================
// DISABLE
// ======================================================

// Disable desactiva al veterinario solo si no le quedan citas
// programadas; mientras existan, la baja se rechaza.
func (h *VeterinarianHandler) Disable(c *gin.Context) {
	_, role := actor(c)

	if !h.gate.Can(role, access.OpVeterinarianDisable) {
		httperr.Forbidden(c, "permission_denied", "Operación no permitida para su rol.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	vet, err := h.repo.GetVeterinarian(c.Request.Context(), uint(id))
	if err != nil {
		httperr.From(c, err)
		return
	}

	count, err := h.repo.CountScheduledForVet(c.Request.Context(), vet.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_check_appointments", "Error al revisar la agenda.")
		return
	}

	if count > 0 {
		httperr.Conflict(c, "veterinarian_has_scheduled_appointments",
			"No se puede desactivar: el veterinario tiene citas programadas.")
		return
	}

	vet.Active = false
	if err := h.db.Save(vet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_veterinarian", "Error al desactivar veterinario.")
		return
	}

	c.JSON(http.StatusOK, vet)
}
