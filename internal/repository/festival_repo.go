package repository

import (
	"context"
	"strings"
	"time"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FestivalFiltro struct {
	ActividadID *uuid.UUID
	Estado      string
	// Tipo matches case-insensitively as a substring.
	Tipo        string
	InicioDesde *time.Time
}

type FestivalRepository interface {
	Crear(ctx context.Context, f *model.Festival) error
	Listar(ctx context.Context, f FestivalFiltro) ([]model.Festival, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Festival, error)
	Actualizar(ctx context.Context, f *model.Festival, cols ...string) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type festivalRepository struct {
	store[model.Festival]
}

func NewFestivalRepository(db *gorm.DB) FestivalRepository {
	return &festivalRepository{store: newStore[model.Festival](db, "fecha_inicio asc", "Actividad")}
}

func (r *festivalRepository) Listar(ctx context.Context, f FestivalFiltro) ([]model.Festival, error) {
	q := r.read(ctx)
	if f.ActividadID != nil {
		q = q.Where("actividad_id = ?", *f.ActividadID)
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}
	if f.Tipo != "" {
		q = q.Where("tipo ILIKE ?", contiene(f.Tipo))
	}
	if f.InicioDesde != nil {
		q = q.Where("fecha_inicio >= ?", *f.InicioDesde)
	}
	var list []model.Festival
	err := q.Find(&list).Error
	return list, err
}

func (r *festivalRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.cambiarEstado(ctx, id, estado)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contiene builds a LIKE pattern matching s literally anywhere in the column.
func contiene(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
