package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Profesores ────────────────────────────────────────────────────────────────

type CrearProfesorRequest struct {
	Nombre       string  `json:"nombre"       validate:"required,min=2,max=150"`
	Descripcion  *string `json:"descripcion"`
	Especialidad *string `json:"especialidad"`
	ImagenURL    *string `json:"imagen_url"   validate:"omitempty,url"`
}

type ActualizarProfesorRequest struct {
	Nombre       *string `json:"nombre"       validate:"omitempty,min=2,max=150"`
	Descripcion  *string `json:"descripcion"`
	Especialidad *string `json:"especialidad"`
	ImagenURL    *string `json:"imagen_url"   validate:"omitempty,url"`
}

type ProfesorResponse struct {
	ID           uuid.UUID `json:"id"`
	Nombre       string    `json:"nombre"`
	Descripcion  *string   `json:"descripcion,omitempty"`
	Especialidad *string   `json:"especialidad,omitempty"`
	ImagenURL    *string   `json:"imagen_url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ── Actividades ───────────────────────────────────────────────────────────────

type CrearActividadRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=150"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarActividadRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=150"`
	Descripcion *string `json:"descripcion"`
}

type ActividadResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ── Premios ───────────────────────────────────────────────────────────────────

type CrearPremioRequest struct {
	Titulo      string    `json:"titulo"      validate:"required,min=2,max=200"`
	Fecha       time.Time `json:"fecha"       validate:"required"`
	Descripcion *string   `json:"descripcion"`
	URLImagen   *string   `json:"url_imagen"  validate:"omitempty,url"`
}

type ActualizarPremioRequest struct {
	Titulo      *string    `json:"titulo"      validate:"omitempty,min=2,max=200"`
	Fecha       *time.Time `json:"fecha"`
	Descripcion *string    `json:"descripcion"`
	URLImagen   *string    `json:"url_imagen"  validate:"omitempty,url"`
}

type PremioResponse struct {
	ID          uuid.UUID `json:"id"`
	Titulo      string    `json:"titulo"`
	Fecha       time.Time `json:"fecha"`
	Descripcion *string   `json:"descripcion,omitempty"`
	URLImagen   *string   `json:"url_imagen,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ── Festivales ────────────────────────────────────────────────────────────────

type CrearFestivalRequest struct {
	Titulo      string    `json:"titulo"       validate:"required,min=2,max=200"`
	Descripcion *string   `json:"descripcion"`
	FechaInicio time.Time `json:"fecha_inicio" validate:"required"`
	FechaFin    time.Time `json:"fecha_fin"    validate:"required"`
	Lugar       string    `json:"lugar"        validate:"required"`
	Organizador string    `json:"organizador"  validate:"required"`
	Tipo        string    `json:"tipo"         validate:"required"`
	IDActividad string    `json:"id_actividad" validate:"required"`
	Estado      *string   `json:"estado"       validate:"omitempty,oneof=activo inactivo"`
	ImagenURL   *string   `json:"imagen_url"   validate:"omitempty,url"`
}

type ActualizarFestivalRequest struct {
	Titulo      *string    `json:"titulo"       validate:"omitempty,min=2,max=200"`
	Descripcion *string    `json:"descripcion"`
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
	Lugar       *string    `json:"lugar"`
	Organizador *string    `json:"organizador"`
	Tipo        *string    `json:"tipo"`
	IDActividad *string    `json:"id_actividad"`
	Estado      *string    `json:"estado"       validate:"omitempty,oneof=activo inactivo"`
	ImagenURL   *string    `json:"imagen_url"   validate:"omitempty,url"`
}

type FestivalResponse struct {
	ID          uuid.UUID          `json:"id"`
	Titulo      string             `json:"titulo"`
	Descripcion *string            `json:"descripcion,omitempty"`
	FechaInicio time.Time          `json:"fecha_inicio"`
	FechaFin    time.Time          `json:"fecha_fin"`
	Lugar       string             `json:"lugar"`
	Organizador string             `json:"organizador"`
	Tipo        string             `json:"tipo"`
	IDActividad uuid.UUID          `json:"id_actividad"`
	Actividad   *ActividadResponse `json:"actividad,omitempty"`
	Estado      string             `json:"estado"`
	ImagenURL   *string            `json:"imagen_url,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
