package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles seeded at startup.
const (
	RolUser  = "user"
	RolAdmin = "admin"
)

type Rol struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Rol) TableName() string { return "roles" }

// UsuarioSinPassword is a customer identified by email only.
type UsuarioSinPassword struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	DNI       string    `gorm:"column:dni;uniqueIndex;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Telefono  *string
	Direccion *string
	RolID     uuid.UUID `gorm:"type:uuid;not null"`
	Rol       *Rol
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UsuarioSinPassword) TableName() string { return "usuarios_sin_password" }

// Usuario stores back-office accounts that log in with a password.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
