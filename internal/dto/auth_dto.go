package dto

import (
	"time"

	"github.com/google/uuid"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginSinPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RegistrarSinPasswordRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=100"`
	Apellido  string  `json:"apellido"  validate:"required,min=1,max=100"`
	DNI       string  `json:"dni"       validate:"required,min=6,max=20"`
	Email     string  `json:"email"     validate:"required,email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Nombre string    `json:"nombre"`
	Rol    string    `json:"rol"`
	Activo bool      `json:"activo"`
}

type UsuarioSinPasswordResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	DNI       string    `json:"dni"`
	Email     string    `json:"email"`
	Telefono  *string   `json:"telefono,omitempty"`
	Direccion *string   `json:"direccion,omitempty"`
	Rol       string    `json:"rol,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}

type LoginSinPasswordResponse struct {
	AccessToken string                     `json:"access_token"`
	TokenType   string                     `json:"token_type"`
	ExpiresIn   int                        `json:"expires_in"`
	User        UsuarioSinPasswordResponse `json:"user"`
	Tipo        string                     `json:"tipo"`
}
