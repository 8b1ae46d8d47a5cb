package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/httpresp"
	"github.com/AustralVet/clinic-scheduler/internal/images"
	"github.com/AustralVet/clinic-scheduler/internal/models"
	"github.com/AustralVet/clinic-scheduler/internal/storage"
)

type PetHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader // nil sin bucket configurado
}

func NewPetHandler(db *gorm.DB, uploader *storage.Uploader) *PetHandler {
	return &PetHandler{db: db, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePetRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Species   string `json:"species" binding:"required"`
	Sex       string `json:"sex" binding:"required"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"`
	Color     string `json:"color"`
}

func parseSpecies(s string) (models.Species, bool) {
	switch models.Species(s) {
	case models.SpeciesDog, models.SpeciesCat, models.SpeciesRabbit, models.SpeciesBird, models.SpeciesOther:
		return models.Species(s), true
	}
	return "", false
}

func parseSex(s string) (models.Sex, bool) {
	switch models.Sex(s) {
	case models.SexMale, models.SexFemale:
		return models.Sex(s), true
	}
	return "", false
}

// ======================================================
// CRUD
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Pet{})

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var pets []models.Pet
	if err := q.Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Error al listar mascotas.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	species, ok := parseSpecies(req.Species)
	if !ok {
		httperr.BadRequest(c, "invalid_species", "Especie desconocida.")
		return
	}

	sex, ok := parseSex(req.Sex)
	if !ok {
		httperr.BadRequest(c, "invalid_sex", "Sexo inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	pet := models.Pet{
		ClientID: req.ClientID,
		Name:     req.Name,
		Species:  species,
		Sex:      sex,
		Breed:    req.Breed,
		Color:    req.Color,
		Active:   true,
	}

	if req.BirthDate != "" {
		if bd, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			pet.BirthDate = &bd
		}
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Error al crear mascota.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

type UpdatePetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Sex       string `json:"sex"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"`
	Color     string `json:"color"`
}

func (h *PetHandler) Update(c *gin.Context) {
	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Mascota no encontrada.")
		return
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Species != "" {
		species, ok := parseSpecies(req.Species)
		if !ok {
			httperr.BadRequest(c, "invalid_species", "Especie desconocida.")
			return
		}
		pet.Species = species
	}
	if req.Sex != "" {
		sex, ok := parseSex(req.Sex)
		if !ok {
			httperr.BadRequest(c, "invalid_sex", "Sexo inválido.")
			return
		}
		pet.Sex = sex
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.Color != "" {
		pet.Color = req.Color
	}
	if req.BirthDate != "" {
		if bd, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			pet.BirthDate = &bd
		}
	}

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Error al actualizar mascota.")
		return
	}

	c.JSON(http.StatusOK, pet)
}

// SetActive activa o desactiva: la baja es lógica, nunca borrado.
func (h *PetHandler) SetActive(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Mascota no encontrada.")
		return
	}

	pet.Active = *req.Active
	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Error al actualizar mascota.")
		return
	}

	c.JSON(http.StatusOK, pet)
}

// ======================================================
// FOTO
// ======================================================

func (h *PetHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.BadRequest(c, "photos_disabled", "El almacenamiento de fotos no está configurado.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Mascota no encontrada.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Debe adjuntar una foto.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Error al leer la foto.")
		return
	}
	defer src.Close()

	encoded, err := images.ToWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen debe ser JPEG o PNG.")
		return
	}

	key := fmt.Sprintf("pets/%d/photo-%d.webp", pet.ID, time.Now().Unix())
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Error al subir la foto.")
		return
	}

	pet.PhotoURL = url
	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Error al guardar la foto.")
		return
	}

	c.JSON(http.StatusOK, pet)
}
