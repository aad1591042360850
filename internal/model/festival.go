package model

import (
	"time"

	"github.com/google/uuid"
)

type Festival struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo      string    `gorm:"not null"`
	Descripcion *string
	FechaInicio time.Time `gorm:"not null;index"`
	FechaFin    time.Time `gorm:"not null"`
	Lugar       string    `gorm:"not null"`
	Organizador string    `gorm:"not null"`
	Tipo        string    `gorm:"not null;index"`
	ActividadID uuid.UUID `gorm:"type:uuid;not null;index"`
	Actividad   *Actividad
	Estado      string `gorm:"type:varchar(10);not null;default:'activo';index"`
	ImagenURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Festival) TableName() string { return "festivales" }
