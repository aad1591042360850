package repository

import (
	"context"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubcategoriaRepository interface {
	Crear(ctx context.Context, s *model.Subcategoria) error
	// Listar returns every subcategoria, or only those of categoriaID when set.
	Listar(ctx context.Context, categoriaID *uuid.UUID) ([]model.Subcategoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Subcategoria, error)
	ObtenerPorNombre(ctx context.Context, categoriaID uuid.UUID, nombre string) (*model.Subcategoria, error)
	Actualizar(ctx context.Context, s *model.Subcategoria, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	// CambiarEstadoPorCategoria reports only the rows whose estado actually changed.
	CambiarEstadoPorCategoria(ctx context.Context, categoriaID uuid.UUID, estado string) (int64, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type subcategoriaRepository struct {
	store[model.Subcategoria]
}

func NewSubcategoriaRepository(db *gorm.DB) SubcategoriaRepository {
	return &subcategoriaRepository{store: newStore[model.Subcategoria](db, "nombre asc", "Categoria")}
}

func (r *subcategoriaRepository) Listar(ctx context.Context, categoriaID *uuid.UUID) ([]model.Subcategoria, error) {
	q := r.read(ctx)
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}
	var list []model.Subcategoria
	err := q.Find(&list).Error
	return list, err
}

func (r *subcategoriaRepository) ObtenerPorNombre(ctx context.Context, categoriaID uuid.UUID, nombre string) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).
		Where("categoria_id = ? AND lower(nombre) = lower(?)", categoriaID, nombre).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subcategoriaRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}

func (r *subcategoriaRepository) CambiarEstadoPorCategoria(ctx context.Context, categoriaID uuid.UUID, estado string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Subcategoria{}).
		Where("categoria_id = ? AND estado <> ?", categoriaID, estado).
		Update("estado", estado)
	return res.RowsAffected, res.Error
}
