package model

import (
	"time"

	"github.com/google/uuid"
)

type Profesor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Descripcion  *string
	Especialidad *string
	ImagenURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Profesor) TableName() string { return "profesores" }
