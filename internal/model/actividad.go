package model

import (
	"time"

	"github.com/google/uuid"
)

// Actividad is the umbrella a Festival belongs to.
type Actividad struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Actividad) TableName() string { return "actividades" }
