package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearTallerRequest struct {
	Nombre         string          `json:"nombre"          validate:"required,min=2,max=200"`
	Descripcion    *string         `json:"descripcion"`
	IDCategoria    string          `json:"id_categoria"    validate:"required"`
	IDSubcategoria string          `json:"id_subcategoria" validate:"required"`
	IDProfesor     string          `json:"id_profesor"     validate:"required"`
	FechaInicio    time.Time       `json:"fecha_inicio"    validate:"required"`
	FechaFin       time.Time       `json:"fecha_fin"       validate:"required"`
	CupoTotal      int             `json:"cupo_total"      validate:"required,min=1"`
	Precio         decimal.Decimal `json:"precio"          validate:"gte=0"`
	Estado         *string         `json:"estado"          validate:"omitempty,oneof=activo inactivo"`
	ImagenURL      *string         `json:"imagen_url"      validate:"omitempty,url"`
}

type ActualizarTallerRequest struct {
	Nombre         *string          `json:"nombre"          validate:"omitempty,min=2,max=200"`
	Descripcion    *string          `json:"descripcion"`
	IDCategoria    *string          `json:"id_categoria"`
	IDSubcategoria *string          `json:"id_subcategoria"`
	IDProfesor     *string          `json:"id_profesor"`
	FechaInicio    *time.Time       `json:"fecha_inicio"`
	FechaFin       *time.Time       `json:"fecha_fin"`
	CupoTotal      *int             `json:"cupo_total"      validate:"omitempty,min=1"`
	Precio         *decimal.Decimal `json:"precio"`
	Estado         *string          `json:"estado"          validate:"omitempty,oneof=activo inactivo"`
	ImagenURL      *string          `json:"imagen_url"      validate:"omitempty,url"`
}

type ActualizarCupoRequest struct {
	CuposReservados int `json:"cupos_reservados" validate:"required,min=1"`
}

// TallerFiltro is bound from the query string. Dates accept RFC 3339 or
// YYYY-MM-DD; unparsable values are ignored.
type TallerFiltro struct {
	IDCategoria    string `form:"id_categoria"`
	IDSubcategoria string `form:"id_subcategoria"`
	Estado         string `form:"estado"`
	FechaInicio    string `form:"fecha_inicio"`
	FechaFin       string `form:"fecha_fin"`
}

type TallerResponse struct {
	ID             uuid.UUID             `json:"id"`
	Nombre         string                `json:"nombre"`
	Descripcion    *string               `json:"descripcion,omitempty"`
	IDCategoria    uuid.UUID             `json:"id_categoria"`
	Categoria      *CategoriaResponse    `json:"categoria,omitempty"`
	IDSubcategoria uuid.UUID             `json:"id_subcategoria"`
	Subcategoria   *SubcategoriaResponse `json:"subcategoria,omitempty"`
	IDProfesor     uuid.UUID             `json:"id_profesor"`
	Profesor       *ProfesorResponse     `json:"profesor,omitempty"`
	FechaInicio    time.Time             `json:"fecha_inicio"`
	FechaFin       time.Time             `json:"fecha_fin"`
	CupoTotal      int                   `json:"cupo_total"`
	CupoDisponible int                   `json:"cupo_disponible"`
	Precio         float64               `json:"precio"`
	Estado         string                `json:"estado"`
	ImagenURL      *string               `json:"imagen_url,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
