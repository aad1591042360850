package service

import (
	"context"
	"strings"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/config"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token tipos distinguish back-office logins from passwordless customers.
const (
	TipoTokenAdmin       = "admin"
	TipoTokenSinPassword = "sin_password"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	RegistrarSinPassword(ctx context.Context, req dto.RegistrarSinPasswordRequest) (*dto.UsuarioSinPasswordResponse, error)
	LoginSinPassword(ctx context.Context, req dto.LoginSinPasswordRequest) (*dto.LoginSinPasswordResponse, error)
	ListarSinPassword(ctx context.Context, soloActivos bool) ([]dto.UsuarioSinPasswordResponse, error)
	ObtenerSinPasswordPorID(ctx context.Context, id string) (*dto.UsuarioSinPasswordResponse, error)
}

type authService struct {
	usuarios    repository.UsuarioRepository
	sinPassword repository.UsuarioSinPasswordRepository
	roles       repository.RolRepository
	cfg         *config.Config
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	sinPassword repository.UsuarioSinPasswordRepository,
	roles repository.RolRepository,
	cfg *config.Config,
) AuthService {
	return &authService{usuarios: usuarios, sinPassword: sinPassword, roles: roles, cfg: cfg}
}

func mapUsuarioSinPassword(u model.UsuarioSinPassword) dto.UsuarioSinPasswordResponse {
	resp := dto.UsuarioSinPasswordResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		DNI:       u.DNI,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Direccion: u.Direccion,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Rol != nil {
		resp.Rol = u.Rol.Nombre
	}
	return resp
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.ObtenerPorEmail(ctx, req.Email)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.Unauthorized("Credenciales inválidas")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Credenciales inválidas")
	}

	token, err := s.generateToken(user.ID, user.Email, user.Rol, TipoTokenAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:     user.ID,
			Email:  user.Email,
			Nombre: user.Nombre,
			Rol:    user.Rol,
			Activo: user.Activo,
		},
	}, nil
}

func (s *authService) RegistrarSinPassword(ctx context.Context, req dto.RegistrarSinPasswordRequest) (*dto.UsuarioSinPasswordResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.sinPassword.ObtenerPorEmail(ctx, email); err == nil {
		return nil, apierror.Conflict("El usuario ya existe")
	} else if !noEncontrado(err) {
		return nil, err
	}
	if _, err := s.sinPassword.ObtenerPorDNI(ctx, req.DNI); err == nil {
		return nil, apierror.Conflict("El DNI ya está registrado")
	} else if !noEncontrado(err) {
		return nil, err
	}

	rol, err := s.roles.ObtenerPorNombre(ctx, model.RolUser)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.BadRequest("Rol %q no configurado", model.RolUser)
		}
		return nil, err
	}

	u := &model.UsuarioSinPassword{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		DNI:       req.DNI,
		Email:     email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		RolID:     rol.ID,
		Activo:    true,
	}
	if err := s.sinPassword.Crear(ctx, u); err != nil {
		return nil, duplicado(err, "El usuario ya existe")
	}
	u.Rol = rol
	resp := mapUsuarioSinPassword(*u)
	return &resp, nil
}

func (s *authService) LoginSinPassword(ctx context.Context, req dto.LoginSinPasswordRequest) (*dto.LoginSinPasswordResponse, error) {
	u, err := s.sinPassword.ObtenerPorEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.Unauthorized("Usuario no encontrado")
		}
		return nil, err
	}
	if !u.Activo {
		return nil, apierror.Unauthorized("Usuario inactivo")
	}

	rol := model.RolUser
	if u.Rol != nil {
		rol = u.Rol.Nombre
	}
	token, err := s.generateToken(u.ID, u.Email, rol, TipoTokenSinPassword)
	if err != nil {
		return nil, err
	}
	return &dto.LoginSinPasswordResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUsuarioSinPassword(*u),
		Tipo:        TipoTokenSinPassword,
	}, nil
}

func (s *authService) ListarSinPassword(ctx context.Context, soloActivos bool) ([]dto.UsuarioSinPasswordResponse, error) {
	list, err := s.sinPassword.Listar(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapUsuarioSinPassword), nil
}

func (s *authService) ObtenerSinPasswordPorID(ctx context.Context, id string) (*dto.UsuarioSinPasswordResponse, error) {
	u, err := obtener(ctx, s.sinPassword.ObtenerPorID, id, "Usuario")
	if err != nil {
		return nil, err
	}
	resp := mapUsuarioSinPassword(*u)
	return &resp, nil
}

func (s *authService) generateToken(id uuid.UUID, email, rol, tipo string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id.String(),
		"email": email,
		"rol":   rol,
		"tipo":  tipo,
		"exp":   now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
