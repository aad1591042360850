package repository

import (
	"context"

	"amaru/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InscripcionFiltro struct {
	UsuarioID *uuid.UUID
	Estado    string
}

// ConteoEstado is one row of the count-by-estado aggregate.
type ConteoEstado struct {
	Estado string
	Count  int64
}

type EstadisticasInscripcion struct {
	Total     int64
	PorEstado []ConteoEstado
	// Ingresos sums Total over approved inscripciones only.
	Ingresos decimal.Decimal
}

type InscripcionRepository interface {
	Crear(ctx context.Context, i *model.Inscripcion) error
	Listar(ctx context.Context, f InscripcionFiltro) ([]model.Inscripcion, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Inscripcion, error)
	Actualizar(ctx context.Context, i *model.Inscripcion, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Estadisticas(ctx context.Context) (*EstadisticasInscripcion, error)
}

type inscripcionRepository struct {
	store[model.Inscripcion]
}

func NewInscripcionRepository(db *gorm.DB) InscripcionRepository {
	return &inscripcionRepository{store: newStore[model.Inscripcion](db, "fecha_inscripcion desc", "Usuario")}
}

func (r *inscripcionRepository) Listar(ctx context.Context, f InscripcionFiltro) ([]model.Inscripcion, error) {
	q := r.read(ctx)
	if f.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *f.UsuarioID)
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}
	var list []model.Inscripcion
	err := q.Find(&list).Error
	return list, err
}

func (r *inscripcionRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}

func (r *inscripcionRepository) Estadisticas(ctx context.Context) (*EstadisticasInscripcion, error) {
	db := r.db.WithContext(ctx)
	out := &EstadisticasInscripcion{}

	if err := db.Model(&model.Inscripcion{}).Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Inscripcion{}).
		Select("estado, count(*) as count").
		Group("estado").
		Order("estado").
		Scan(&out.PorEstado).Error; err != nil {
		return nil, err
	}

	var ingresos decimal.NullDecimal
	if err := db.Model(&model.Inscripcion{}).
		Where("estado = ?", model.InscripcionAprobado).
		Select("sum(total)").
		Scan(&ingresos).Error; err != nil {
		return nil, err
	}
	if ingresos.Valid {
		out.Ingresos = ingresos.Decimal
	}
	return out, nil
}
