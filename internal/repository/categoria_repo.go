package repository

import (
	"context"
	"time"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaFiltro narrows Listar; zero fields are not applied.
type CategoriaFiltro struct {
	Estado string
	Tipo   string
	Desde  *time.Time
	Hasta  *time.Time
}

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context, f CategoriaFiltro) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	ContarSubcategorias(ctx context.Context, id uuid.UUID) (int64, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaRepository struct {
	store[model.Categoria]
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{store: newStore[model.Categoria](db, "nombre asc")}
}

func (r *categoriaRepository) Listar(ctx context.Context, f CategoriaFiltro) ([]model.Categoria, error) {
	q := r.read(ctx)
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.Desde != nil {
		q = q.Where("created_at >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("created_at <= ?", *f.Hasta)
	}
	var list []model.Categoria
	err := q.Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}

func (r *categoriaRepository) ContarSubcategorias(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Subcategoria{}).Where("categoria_id = ?", id).Count(&n).Error
	return n, err
}
