package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
	"github.com/AustralVet/clinic-scheduler/internal/signup"
	"github.com/AustralVet/clinic-scheduler/internal/validators"
)

// ======================================================
// REGISTRO EN DOS PASOS
// ======================================================
//
// Paso 1 valida la cuenta y deja un borrador en redis con expiración;
// nada toca la base hasta que el paso 2 completa el detalle del rol.

type RegistrationHandler struct {
	db     *gorm.DB
	drafts signup.Store
	auth   *AuthHandler
}

func NewRegistrationHandler(db *gorm.DB, drafts signup.Store, auth *AuthHandler) *RegistrationHandler {
	return &RegistrationHandler{db: db, drafts: drafts, auth: auth}
}

// --------- Requests ---------

type RegisterStartRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	RUT      string `json:"rut" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type RegisterCompleteRequest struct {
	Token string `json:"token" binding:"required"`

	// Detalle según rol; veterinario exige licencia.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Specialty string `json:"specialty"`
	License   string `json:"license"`
	WorkPhone string `json:"work_phone"`
}

type RegisterCancelRequest struct {
	Token string `json:"token" binding:"required"`
}

// --------- Paso 1 ---------

func (h *RegistrationHandler) Start(c *gin.Context) {
	var req RegisterStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	role, ok := access.ParseRole(req.Role)
	if !ok {
		httperr.BadRequest(c, "invalid_role", "Tipo de usuario desconocido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	if !validators.IsValidRUT(req.RUT) {
		httperr.BadRequest(c, "invalid_rut", "RUT/DNI inválido.")
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? OR rut = ?", email, req.RUT).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "account_already_exists", "El correo o RUT ya está registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	token := uuid.NewString()
	draft := signup.Draft{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		RUT:          req.RUT,
		Phone:        req.Phone,
		Role:         string(role),
	}

	if err := h.drafts.Put(c.Request.Context(), token, draft, signup.DraftTTL); err != nil {
		httperr.Internal(c, "failed_to_store_draft", "Error al guardar el registro.")
		return
	}

	// Admin y recepcionista no tienen paso 2 con detalle.
	needsDetail := role == access.RoleVeterinarian || role == access.RoleClient

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"needs_detail": needsDetail,
		"expires_in_s": int(signup.DraftTTL.Seconds()),
	})
}

// --------- Paso 2 ---------

func (h *RegistrationHandler) Complete(c *gin.Context) {
	var req RegisterCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	draft, err := h.drafts.Get(c.Request.Context(), req.Token)
	if err != nil {
		httperr.BadRequest(c, "draft_not_found", "El registro expiró o no existe; vuelva al paso 1.")
		return
	}

	role := access.Role(draft.Role)

	if role == access.RoleVeterinarian || role == access.RoleClient {
		if req.FirstName == "" || req.LastName == "" {
			httperr.BadRequest(c, "missing_detail", "Nombre y apellido son obligatorios.")
			return
		}
	}
	if role == access.RoleVeterinarian && req.License == "" {
		httperr.BadRequest(c, "missing_license", "La licencia profesional es obligatoria.")
		return
	}

	user := models.User{
		Name:         draft.Name,
		Email:        draft.Email,
		PasswordHash: draft.PasswordHash,
		RUT:          draft.RUT,
		Phone:        draft.Phone,
		Role:         string(role),
		Active:       true,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch role {
		case access.RoleVeterinarian:
			vet := models.Veterinarian{
				UserID:    user.ID,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Specialty: req.Specialty,
				License:   req.License,
				WorkPhone: req.WorkPhone,
				Active:    true,
			}
			return tx.Create(&vet).Error

		case access.RoleClient:
			client := models.Client{
				UserID:    user.ID,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Address:   req.Address,
			}
			return tx.Create(&client).Error
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Error al completar el registro.")
		return
	}

	_ = h.drafts.Delete(c.Request.Context(), req.Token)

	token, err := h.auth.GenerateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error interno.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// --------- Cancelar ---------

func (h *RegistrationHandler) Cancel(c *gin.Context) {
	var req RegisterCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	_ = h.drafts.Delete(c.Request.Context(), req.Token)

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
