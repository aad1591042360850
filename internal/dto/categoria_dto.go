package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Tipo        string  `json:"tipo"        validate:"required,oneof=taller servicio"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"      validate:"omitempty,oneof=activo inactivo"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Tipo        *string `json:"tipo"        validate:"omitempty,oneof=taller servicio"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"      validate:"omitempty,oneof=activo inactivo"`
}

type CrearSubcategoriaRequest struct {
	Nombre      string  `json:"nombre"       validate:"required,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
	IDCategoria string  `json:"id_categoria" validate:"required"`
	Estado      *string `json:"estado"       validate:"omitempty,oneof=activo inactivo"`
}

type ActualizarSubcategoriaRequest struct {
	Nombre      *string `json:"nombre"       validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
	IDCategoria *string `json:"id_categoria"`
	Estado      *string `json:"estado"       validate:"omitempty,oneof=activo inactivo"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoriaCascadaResponse is returned by activar/desactivar, which also move
// every child subcategoria to the same estado.
type CategoriaCascadaResponse struct {
	Categoria              CategoriaResponse `json:"categoria"`
	SubcategoriasAfectadas int64             `json:"subcategorias_afectadas"`
}

type SubcategoriaResponse struct {
	ID          uuid.UUID          `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion *string            `json:"descripcion,omitempty"`
	Estado      string             `json:"estado"`
	IDCategoria uuid.UUID          `json:"id_categoria"`
	Categoria   *CategoriaResponse `json:"categoria,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
