package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria groups talleres or servicios. Tipo: "taller" | "servicio".
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Tipo        string    `gorm:"type:varchar(10);not null"`
	Descripcion *string
	Estado      string `gorm:"type:varchar(10);not null;default:'activo';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }

// Subcategoria belongs to exactly one Categoria; Nombre is unique within it.
type Subcategoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null;uniqueIndex:idx_subcategoria_nombre_categoria"`
	Descripcion *string
	Estado      string    `gorm:"type:varchar(10);not null;default:'activo'"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_subcategoria_nombre_categoria"`
	Categoria   *Categoria
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Subcategoria) TableName() string { return "subcategorias" }
