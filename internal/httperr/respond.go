package httperr

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// From traduce cualquier error de los casos de uso a la respuesta JSON
// correspondiente. Los errores de validación nunca tumban el request.
func From(c *gin.Context, err error) {
	if ve, ok := AsValidation(err); ok {
		BadRequest(c, string(ve.Rule), ve.Detail)
		return
	}

	if ne, ok := AsNotFound(err); ok {
		NotFound(c, ne.Entity+"_not_found", fmt.Sprintf("%s %d no existe.", ne.Entity, ne.ID))
		return
	}

	if pe, ok := AsPermission(err); ok {
		Forbidden(c, "permission_denied", fmt.Sprintf("Operación %s no permitida para su rol.", pe.Operation))
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		if be.Code == CodeRetryBooking {
			Conflict(c, be.Code, "La agenda cambió mientras se validaba; reintente la operación.")
			return
		}
		BadRequest(c, be.Code, "Operación rechazada.")
		return
	}

	Internal(c, "internal_error", "Error interno.")
}
