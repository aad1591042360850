package dto

import (
	"time"

	"github.com/google/uuid"
)

// CrearInscripcionRequest carries no total or moneda: both are computed.
type CrearInscripcionRequest struct {
	IDUsuario string  `json:"id_usuario" validate:"required"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Estado    *string `json:"estado"`
}

type ActualizarInscripcionRequest struct {
	Email  *string `json:"email"  validate:"omitempty,email"`
	Estado *string `json:"estado"`
}

type InscripcionResponse struct {
	ID               uuid.UUID                   `json:"id"`
	IDUsuario        uuid.UUID                   `json:"id_usuario"`
	Usuario          *UsuarioSinPasswordResponse `json:"usuario,omitempty"`
	Email            string                      `json:"email"`
	Estado           string                      `json:"estado"`
	Total            float64                     `json:"total"`
	Moneda           string                      `json:"moneda"`
	FechaInscripcion time.Time                   `json:"fecha_inscripcion"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

type ConteoEstado struct {
	Estado string `json:"estado"`
	Count  int64  `json:"count"`
}

type EstadisticasInscripcionResponse struct {
	Total           int64          `json:"total"`
	PorEstado       []ConteoEstado `json:"porEstado"`
	IngresosTotales float64        `json:"ingresosTotales"`
}
