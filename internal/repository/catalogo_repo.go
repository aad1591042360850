package repository

import (
	"amaru/internal/model"

	"gorm.io/gorm"
)

type ProfesorRepository = CRUDRepository[model.Profesor]
type ActividadRepository = CRUDRepository[model.Actividad]
type PremioRepository = CRUDRepository[model.Premio]

func NewProfesorRepository(db *gorm.DB) ProfesorRepository {
	return newStore[model.Profesor](db, "created_at desc")
}

func NewActividadRepository(db *gorm.DB) ActividadRepository {
	return newStore[model.Actividad](db, "created_at desc")
}

func NewPremioRepository(db *gorm.DB) PremioRepository {
	return newStore[model.Premio](db, "fecha desc, created_at desc")
}
