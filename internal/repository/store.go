package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CRUDRepository is the contract shared by every resource without extra queries.
// Missing rows are reported as gorm.ErrRecordNotFound.
type CRUDRepository[T any] interface {
	Crear(ctx context.Context, e *T) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*T, error)
	Listar(ctx context.Context) ([]T, error)
	Actualizar(ctx context.Context, e *T, cols ...string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

// store implements CRUDRepository on GORM. preloads are resolved on every read,
// the relational analogue of populating references.
type store[T any] struct {
	db       *gorm.DB
	order    string
	preloads []string
}

func newStore[T any](db *gorm.DB, order string, preloads ...string) store[T] {
	return store[T]{db: db, order: order, preloads: preloads}
}

func (s store[T]) read(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	if s.order != "" {
		q = q.Order(s.order)
	}
	return q
}

func (s store[T]) Crear(ctx context.Context, e *T) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (s store[T]) ObtenerPorID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	if err := s.read(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s store[T]) Listar(ctx context.Context) ([]T, error) {
	var list []T
	err := s.read(ctx).Find(&list).Error
	return list, err
}

// Actualizar writes only cols (plus updated_at) of the row identified by e's
// primary key. Columns not named keep whatever the store holds now.
func (s store[T]) Actualizar(ctx context.Context, e *T, cols ...string) error {
	if len(cols) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(e).Select(cols).Omit(clause.Associations).Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s store[T]) Eliminar(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// cambiarEstado updates the estado column of a single row.
func (s store[T]) cambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	res := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
