package repository

import (
	"context"
	"errors"

	"amaru/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository covers back-office accounts.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RolRepository resolves roles by name.
type RolRepository interface {
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error)
	// Asegurar returns the role, creating it first when absent.
	Asegurar(ctx context.Context, nombre string) (*model.Rol, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) Asegurar(ctx context.Context, nombre string) (*model.Rol, error) {
	rol, err := r.ObtenerPorNombre(ctx, nombre)
	if err == nil {
		return rol, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rol = &model.Rol{Nombre: nombre}
	if err := r.db.WithContext(ctx).Create(rol).Error; err != nil {
		return nil, err
	}
	return rol, nil
}

// UsuarioSinPasswordRepository covers customers identified by email only.
type UsuarioSinPasswordRepository interface {
	Crear(ctx context.Context, u *model.UsuarioSinPassword) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.UsuarioSinPassword, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.UsuarioSinPassword, error)
	ObtenerPorDNI(ctx context.Context, dni string) (*model.UsuarioSinPassword, error)
	Listar(ctx context.Context, soloActivos bool) ([]model.UsuarioSinPassword, error)
}

type usuarioSinPasswordRepo struct {
	store[model.UsuarioSinPassword]
}

func NewUsuarioSinPasswordRepository(db *gorm.DB) UsuarioSinPasswordRepository {
	return &usuarioSinPasswordRepo{store: newStore[model.UsuarioSinPassword](db, "created_at desc", "Rol")}
}

func (r *usuarioSinPasswordRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.UsuarioSinPassword, error) {
	var u model.UsuarioSinPassword
	if err := r.read(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioSinPasswordRepo) ObtenerPorDNI(ctx context.Context, dni string) (*model.UsuarioSinPassword, error) {
	var u model.UsuarioSinPassword
	if err := r.read(ctx).Where("dni = ?", dni).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioSinPasswordRepo) Listar(ctx context.Context, soloActivos bool) ([]model.UsuarioSinPassword, error) {
	q := r.read(ctx)
	if soloActivos {
		q = q.Where("activo = true")
	}
	var list []model.UsuarioSinPassword
	err := q.Find(&list).Error
	return list, err
}
