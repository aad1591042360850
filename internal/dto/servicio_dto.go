package dto

import (
	"time"

	"github.com/google/uuid"
)

type CrearServicioRequest struct {
	Titulo         *string `json:"titulo"          validate:"omitempty,max=200"`
	Descripcion    *string `json:"descripcion"`
	IDCategoria    *string `json:"id_categoria"`
	IDSubcategoria *string `json:"id_subcategoria"`
	Estado         *string `json:"estado"          validate:"omitempty,oneof=activo inactivo"`
	ImagenURL      *string `json:"imagen_url"      validate:"omitempty,url"`
}

// ActualizarServicioRequest shares the create shape; every field is optional.
type ActualizarServicioRequest = CrearServicioRequest

// ServicioFiltro is bound from the query string; invalid values are ignored.
type ServicioFiltro struct {
	IDCategoria    string `form:"id_categoria"`
	IDSubcategoria string `form:"id_subcategoria"`
	Estado         string `form:"estado"`
}

type ServicioResponse struct {
	ID             uuid.UUID             `json:"id"`
	Titulo         string                `json:"titulo"`
	Descripcion    string                `json:"descripcion"`
	IDCategoria    *uuid.UUID            `json:"id_categoria"`
	Categoria      *CategoriaResponse    `json:"categoria,omitempty"`
	IDSubcategoria *uuid.UUID            `json:"id_subcategoria"`
	Subcategoria   *SubcategoriaResponse `json:"subcategoria,omitempty"`
	Estado         string                `json:"estado"`
	ImagenURL      string                `json:"imagen_url"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
