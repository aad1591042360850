package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Taller is a workshop with a date range and a seat capacity.
// CupoDisponible always stays within [0, CupoTotal].
type Taller struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null"`
	Descripcion    *string
	CategoriaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Categoria      *Categoria
	SubcategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Subcategoria   *Subcategoria
	ProfesorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Profesor       *Profesor
	FechaInicio    time.Time       `gorm:"not null;index"`
	FechaFin       time.Time       `gorm:"not null"`
	CupoTotal      int             `gorm:"not null"`
	CupoDisponible int             `gorm:"not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Estado         string          `gorm:"type:varchar(10);not null;default:'activo';index"`
	ImagenURL      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Taller) TableName() string { return "talleres" }
