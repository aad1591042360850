package model

import (
	"time"

	"github.com/google/uuid"
)

type Premio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo      string    `gorm:"not null"`
	Fecha       time.Time `gorm:"not null;index"`
	Descripcion *string
	URLImagen   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Premio) TableName() string { return "premios" }
