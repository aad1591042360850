package repository

import (
	"context"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioFiltro struct {
	CategoriaID    *uuid.UUID
	SubcategoriaID *uuid.UUID
	Estado         string
}

type ServicioRepository interface {
	Crear(ctx context.Context, s *model.Servicio) error
	Listar(ctx context.Context, f ServicioFiltro) ([]model.Servicio, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	Actualizar(ctx context.Context, s *model.Servicio, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type servicioRepository struct {
	store[model.Servicio]
}

func NewServicioRepository(db *gorm.DB) ServicioRepository {
	return &servicioRepository{store: newStore[model.Servicio](db, "created_at desc", "Categoria", "Subcategoria")}
}

func (r *servicioRepository) Listar(ctx context.Context, f ServicioFiltro) ([]model.Servicio, error) {
	q := r.read(ctx)
	if f.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *f.CategoriaID)
	}
	if f.SubcategoriaID != nil {
		q = q.Where("subcategoria_id = ?", *f.SubcategoriaID)
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}
	var list []model.Servicio
	err := q.Find(&list).Error
	return list, err
}

func (r *servicioRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}
