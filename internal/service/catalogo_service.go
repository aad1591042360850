package service

import (
	"context"

	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"
)

// ── Profesores ────────────────────────────────────────────────────────────────

type ProfesorService interface {
	Crear(ctx context.Context, req dto.CrearProfesorRequest) (dto.ProfesorResponse, error)
	Listar(ctx context.Context) ([]dto.ProfesorResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.ProfesorResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarProfesorRequest) (dto.ProfesorResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type profesorService struct{ repo repository.ProfesorRepository }

func NewProfesorService(repo repository.ProfesorRepository) ProfesorService {
	return &profesorService{repo: repo}
}

func mapProfesor(p model.Profesor) dto.ProfesorResponse {
	return dto.ProfesorResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Especialidad: p.Especialidad,
		ImagenURL:    p.ImagenURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (s *profesorService) Crear(ctx context.Context, req dto.CrearProfesorRequest) (dto.ProfesorResponse, error) {
	p := &model.Profesor{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Especialidad: req.Especialidad,
		ImagenURL:    req.ImagenURL,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.ProfesorResponse{}, err
	}
	return mapProfesor(*p), nil
}

func (s *profesorService) Listar(ctx context.Context) ([]dto.ProfesorResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapProfesor), nil
}

func (s *profesorService) ObtenerPorID(ctx context.Context, id string) (dto.ProfesorResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Profesor")
	if err != nil {
		return dto.ProfesorResponse{}, err
	}
	return mapProfesor(*p), nil
}

func (s *profesorService) Actualizar(ctx context.Context, id string, req dto.ActualizarProfesorRequest) (dto.ProfesorResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Profesor")
	if err != nil {
		return dto.ProfesorResponse{}, err
	}
	var cols []string
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
		cols = append(cols, "nombre")
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.Especialidad != nil {
		p.Especialidad = req.Especialidad
		cols = append(cols, "especialidad")
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
		cols = append(cols, "imagen_url")
	}
	if err := s.repo.Actualizar(ctx, p, cols...); err != nil {
		return dto.ProfesorResponse{}, escritura(err, "Profesor", p.ID)
	}
	return mapProfesor(*p), nil
}

func (s *profesorService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Profesor")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, p.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Profesor", p.ID)
	}
	return dto.MensajeResponse{Message: "Profesor eliminado correctamente"}, nil
}

// ── Actividades ───────────────────────────────────────────────────────────────

type ActividadService interface {
	Crear(ctx context.Context, req dto.CrearActividadRequest) (dto.ActividadResponse, error)
	Listar(ctx context.Context) ([]dto.ActividadResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.ActividadResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarActividadRequest) (dto.ActividadResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type actividadService struct{ repo repository.ActividadRepository }

func NewActividadService(repo repository.ActividadRepository) ActividadService {
	return &actividadService{repo: repo}
}

func mapActividad(a model.Actividad) dto.ActividadResponse {
	return dto.ActividadResponse{
		ID:          a.ID,
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *actividadService) Crear(ctx context.Context, req dto.CrearActividadRequest) (dto.ActividadResponse, error) {
	a := &model.Actividad{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, a); err != nil {
		return dto.ActividadResponse{}, err
	}
	return mapActividad(*a), nil
}

func (s *actividadService) Listar(ctx context.Context) ([]dto.ActividadResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapActividad), nil
}

func (s *actividadService) ObtenerPorID(ctx context.Context, id string) (dto.ActividadResponse, error) {
	a, err := obtener(ctx, s.repo.ObtenerPorID, id, "Actividad")
	if err != nil {
		return dto.ActividadResponse{}, err
	}
	return mapActividad(*a), nil
}

func (s *actividadService) Actualizar(ctx context.Context, id string, req dto.ActualizarActividadRequest) (dto.ActividadResponse, error) {
	a, err := obtener(ctx, s.repo.ObtenerPorID, id, "Actividad")
	if err != nil {
		return dto.ActividadResponse{}, err
	}
	var cols []string
	if req.Nombre != nil {
		a.Nombre = *req.Nombre
		cols = append(cols, "nombre")
	}
	if req.Descripcion != nil {
		a.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if err := s.repo.Actualizar(ctx, a, cols...); err != nil {
		return dto.ActividadResponse{}, escritura(err, "Actividad", a.ID)
	}
	return mapActividad(*a), nil
}

func (s *actividadService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	a, err := obtener(ctx, s.repo.ObtenerPorID, id, "Actividad")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, a.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Actividad", a.ID)
	}
	return dto.MensajeResponse{Message: "Actividad eliminada correctamente"}, nil
}

// ── Premios ───────────────────────────────────────────────────────────────────

type PremioService interface {
	Crear(ctx context.Context, req dto.CrearPremioRequest) (dto.PremioResponse, error)
	Listar(ctx context.Context) ([]dto.PremioResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.PremioResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarPremioRequest) (dto.PremioResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type premioService struct{ repo repository.PremioRepository }

func NewPremioService(repo repository.PremioRepository) PremioService {
	return &premioService{repo: repo}
}

func mapPremio(p model.Premio) dto.PremioResponse {
	return dto.PremioResponse{
		ID:          p.ID,
		Titulo:      p.Titulo,
		Fecha:       p.Fecha,
		Descripcion: p.Descripcion,
		URLImagen:   p.URLImagen,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *premioService) Crear(ctx context.Context, req dto.CrearPremioRequest) (dto.PremioResponse, error) {
	p := &model.Premio{
		Titulo:      req.Titulo,
		Fecha:       req.Fecha,
		Descripcion: req.Descripcion,
		URLImagen:   req.URLImagen,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PremioResponse{}, err
	}
	return mapPremio(*p), nil
}

func (s *premioService) Listar(ctx context.Context) ([]dto.PremioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapPremio), nil
}

func (s *premioService) ObtenerPorID(ctx context.Context, id string) (dto.PremioResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Premio")
	if err != nil {
		return dto.PremioResponse{}, err
	}
	return mapPremio(*p), nil
}

func (s *premioService) Actualizar(ctx context.Context, id string, req dto.ActualizarPremioRequest) (dto.PremioResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Premio")
	if err != nil {
		return dto.PremioResponse{}, err
	}
	var cols []string
	if req.Titulo != nil {
		p.Titulo = *req.Titulo
		cols = append(cols, "titulo")
	}
	if req.Fecha != nil {
		p.Fecha = *req.Fecha
		cols = append(cols, "fecha")
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.URLImagen != nil {
		p.URLImagen = req.URLImagen
		cols = append(cols, "url_imagen")
	}
	if err := s.repo.Actualizar(ctx, p, cols...); err != nil {
		return dto.PremioResponse{}, escritura(err, "Premio", p.ID)
	}
	return mapPremio(*p), nil
}

func (s *premioService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	p, err := obtener(ctx, s.repo.ObtenerPorID, id, "Premio")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, p.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Premio", p.ID)
	}
	return dto.MensajeResponse{Message: "Premio eliminado correctamente"}, nil
}
