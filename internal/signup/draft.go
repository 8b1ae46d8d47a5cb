package signup

import (
	"context"
	"errors"
	"time"
)

// Vigencia de un registro a medio camino. Pasado el plazo el borrador
// expira y hay que partir de nuevo desde el paso 1.
const DraftTTL = 30 * time.Minute

var ErrDraftNotFound = errors.New("signup: draft not found or expired")

// Draft guarda el paso 1 del registro fuera de la base de datos,
// identificado por un token de sesión. La contraseña viaja ya hasheada.
type Draft struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	RUT          string `json:"rut"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Put(ctx context.Context, token string, d Draft, ttl time.Duration) error
	Get(ctx context.Context, token string) (Draft, error)
	Delete(ctx context.Context, token string) error
}
