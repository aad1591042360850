package model

import (
	"time"

	"github.com/google/uuid"
)

// Servicio is a service offering. Category and subcategory references are optional.
type Servicio struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo         string     `gorm:"not null;default:'Servicio sin título'"`
	Descripcion    string     `gorm:"not null;default:''"`
	CategoriaID    *uuid.UUID `gorm:"type:uuid;index"`
	Categoria      *Categoria
	SubcategoriaID *uuid.UUID `gorm:"type:uuid;index"`
	Subcategoria   *Subcategoria
	Estado         string `gorm:"type:varchar(10);not null;default:'activo';index"`
	ImagenURL      string `gorm:"not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Servicio) TableName() string { return "servicios" }
