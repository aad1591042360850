package repository

import (
	"context"
	"time"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TallerFiltro narrows Listar. InicioDesde/InicioHasta bound fecha_inicio.
type TallerFiltro struct {
	CategoriaID    *uuid.UUID
	SubcategoriaID *uuid.UUID
	ProfesorID     *uuid.UUID
	Estado         string
	InicioDesde    *time.Time
	InicioHasta    *time.Time
	SoloConCupo    bool
}

type TallerRepository interface {
	Crear(ctx context.Context, t *model.Taller) error
	Listar(ctx context.Context, f TallerFiltro) ([]model.Taller, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Taller, error)
	Actualizar(ctx context.Context, t *model.Taller, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	// ReservarCupo decrements cupo_disponible by n only if enough seats remain.
	// It reports false when the row was not updated.
	ReservarCupo(ctx context.Context, id uuid.UUID, n int) (bool, error)
	// AjustarCupoTotal sets cupo_total and shifts cupo_disponible by the change,
	// clamped to [0, total], in a single statement.
	AjustarCupoTotal(ctx context.Context, id uuid.UUID, total int) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type tallerRepository struct {
	store[model.Taller]
}

func NewTallerRepository(db *gorm.DB) TallerRepository {
	return &tallerRepository{store: newStore[model.Taller](db, "fecha_inicio asc", "Categoria", "Subcategoria", "Profesor")}
}

func (r *tallerRepository) Listar(ctx context.Context, f TallerFiltro) ([]model.Taller, error) {
	q := r.read(ctx)
	if f.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *f.CategoriaID)
	}
	if f.SubcategoriaID != nil {
		q = q.Where("subcategoria_id = ?", *f.SubcategoriaID)
	}
	if f.ProfesorID != nil {
		q = q.Where("profesor_id = ?", *f.ProfesorID)
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}
	if f.InicioDesde != nil {
		q = q.Where("fecha_inicio >= ?", *f.InicioDesde)
	}
	if f.InicioHasta != nil {
		q = q.Where("fecha_inicio <= ?", *f.InicioHasta)
	}
	if f.SoloConCupo {
		q = q.Where("cupo_disponible > 0")
	}
	var list []model.Taller
	err := q.Find(&list).Error
	return list, err
}

func (r *tallerRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}

func (r *tallerRepository) ReservarCupo(ctx context.Context, id uuid.UUID, n int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Taller{}).
		Where("id = ? AND cupo_disponible >= ?", id, n).
		Update("cupo_disponible", gorm.Expr("cupo_disponible - ?", n))
	return res.RowsAffected == 1, res.Error
}

func (r *tallerRepository) AjustarCupoTotal(ctx context.Context, id uuid.UUID, total int) error {
	res := r.db.WithContext(ctx).Model(&model.Taller{}).Where("id = ?", id).Updates(map[string]interface{}{
		"cupo_disponible": gorm.Expr("GREATEST(0, LEAST(cupo_disponible + ? - cupo_total, ?))", total, total),
		"cupo_total":      total,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
