package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inscripcion ties a passwordless user to the business with a lifecycle Estado:
// "pendiente" | "aprobado" | "rechazado".
type Inscripcion struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Usuario          *UsuarioSinPassword
	Email            string          `gorm:"not null"`
	Estado           string          `gorm:"type:varchar(10);not null;default:'pendiente';index"`
	Total            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Moneda           string          `gorm:"type:varchar(3);not null"`
	FechaInscripcion time.Time       `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Inscripcion) TableName() string { return "inscripciones" }
