package service

import (
	"context"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"
)

type FestivalService interface {
	Crear(ctx context.Context, req dto.CrearFestivalRequest) (dto.FestivalResponse, error)
	Listar(ctx context.Context) ([]dto.FestivalResponse, error)
	ListarActivos(ctx context.Context) ([]dto.FestivalResponse, error)
	ListarProximos(ctx context.Context) ([]dto.FestivalResponse, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]dto.FestivalResponse, error)
	ListarPorActividad(ctx context.Context, actividadID string) ([]dto.FestivalResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.FestivalResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarFestivalRequest) (dto.FestivalResponse, error)
	CambiarEstado(ctx context.Context, id, estado string) (dto.FestivalResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type festivalService struct {
	repo          repository.FestivalRepository
	actividadRepo repository.ActividadRepository
	now           func() time.Time
}

func NewFestivalService(repo repository.FestivalRepository, actividadRepo repository.ActividadRepository) FestivalService {
	return &festivalService{repo: repo, actividadRepo: actividadRepo, now: time.Now}
}

func mapFestival(f model.Festival) dto.FestivalResponse {
	resp := dto.FestivalResponse{
		ID:          f.ID,
		Titulo:      f.Titulo,
		Descripcion: f.Descripcion,
		FechaInicio: f.FechaInicio,
		FechaFin:    f.FechaFin,
		Lugar:       f.Lugar,
		Organizador: f.Organizador,
		Tipo:        f.Tipo,
		IDActividad: f.ActividadID,
		Estado:      f.Estado,
		ImagenURL:   f.ImagenURL,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if f.Actividad != nil {
		a := mapActividad(*f.Actividad)
		resp.Actividad = &a
	}
	return resp
}

func (s *festivalService) actividad(ctx context.Context, f *model.Festival, raw string) error {
	id, err := parseID(raw)
	if err != nil {
		return err
	}
	a, ok, err := existe(ctx, s.actividadRepo.ObtenerPorID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.BadRequest("La actividad especificada no existe")
	}
	f.ActividadID, f.Actividad = id, a
	return nil
}

func (s *festivalService) Crear(ctx context.Context, req dto.CrearFestivalRequest) (dto.FestivalResponse, error) {
	f := &model.Festival{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		Lugar:       req.Lugar,
		Organizador: req.Organizador,
		Tipo:        req.Tipo,
		Estado:      model.EstadoActivo,
		ImagenURL:   req.ImagenURL,
	}
	if req.Estado != nil {
		f.Estado = *req.Estado
	}
	if err := s.actividad(ctx, f, req.IDActividad); err != nil {
		return dto.FestivalResponse{}, err
	}
	if err := s.repo.Crear(ctx, f); err != nil {
		return dto.FestivalResponse{}, err
	}
	return mapFestival(*f), nil
}

func (s *festivalService) listar(ctx context.Context, f repository.FestivalFiltro) ([]dto.FestivalResponse, error) {
	list, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapFestival), nil
}

func (s *festivalService) Listar(ctx context.Context) ([]dto.FestivalResponse, error) {
	return s.listar(ctx, repository.FestivalFiltro{})
}

func (s *festivalService) ListarActivos(ctx context.Context) ([]dto.FestivalResponse, error) {
	return s.listar(ctx, repository.FestivalFiltro{Estado: model.EstadoActivo})
}

func (s *festivalService) ListarProximos(ctx context.Context) ([]dto.FestivalResponse, error) {
	desde := s.now()
	return s.listar(ctx, repository.FestivalFiltro{Estado: model.EstadoActivo, InicioDesde: &desde})
}

func (s *festivalService) ListarPorTipo(ctx context.Context, tipo string) ([]dto.FestivalResponse, error) {
	return s.listar(ctx, repository.FestivalFiltro{Tipo: tipo, Estado: model.EstadoActivo})
}

func (s *festivalService) ListarPorActividad(ctx context.Context, actividadID string) ([]dto.FestivalResponse, error) {
	id, err := parseID(actividadID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.FestivalFiltro{ActividadID: &id})
}

func (s *festivalService) ObtenerPorID(ctx context.Context, id string) (dto.FestivalResponse, error) {
	f, err := obtener(ctx, s.repo.ObtenerPorID, id, "Festival")
	if err != nil {
		return dto.FestivalResponse{}, err
	}
	return mapFestival(*f), nil
}

func (s *festivalService) Actualizar(ctx context.Context, id string, req dto.ActualizarFestivalRequest) (dto.FestivalResponse, error) {
	f, err := obtener(ctx, s.repo.ObtenerPorID, id, "Festival")
	if err != nil {
		return dto.FestivalResponse{}, err
	}
	var cols []string
	if req.Titulo != nil {
		f.Titulo = *req.Titulo
		cols = append(cols, "titulo")
	}
	if req.Descripcion != nil {
		f.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.FechaInicio != nil {
		f.FechaInicio = *req.FechaInicio
		cols = append(cols, "fecha_inicio")
	}
	if req.FechaFin != nil {
		f.FechaFin = *req.FechaFin
		cols = append(cols, "fecha_fin")
	}
	if req.Lugar != nil {
		f.Lugar = *req.Lugar
		cols = append(cols, "lugar")
	}
	if req.Organizador != nil {
		f.Organizador = *req.Organizador
		cols = append(cols, "organizador")
	}
	if req.Tipo != nil {
		f.Tipo = *req.Tipo
		cols = append(cols, "tipo")
	}
	if req.Estado != nil {
		f.Estado = *req.Estado
		cols = append(cols, "estado")
	}
	if req.ImagenURL != nil {
		f.ImagenURL = req.ImagenURL
		cols = append(cols, "imagen_url")
	}
	if req.IDActividad != nil {
		if err := s.actividad(ctx, f, *req.IDActividad); err != nil {
			return dto.FestivalResponse{}, err
		}
		cols = append(cols, "actividad_id")
	}
	if err := s.repo.Actualizar(ctx, f, cols...); err != nil {
		return dto.FestivalResponse{}, escritura(err, "Festival", f.ID)
	}
	return mapFestival(*f), nil
}

func (s *festivalService) CambiarEstado(ctx context.Context, id, estado string) (dto.FestivalResponse, error) {
	if err := validarEstado(estado, model.EstadosActivacion); err != nil {
		return dto.FestivalResponse{}, err
	}
	f, err := obtener(ctx, s.repo.ObtenerPorID, id, "Festival")
	if err != nil {
		return dto.FestivalResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, f.ID, estado); err != nil {
		return dto.FestivalResponse{}, escritura(err, "Festival", f.ID)
	}
	f.Estado = estado
	return mapFestival(*f), nil
}

func (s *festivalService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	f, err := obtener(ctx, s.repo.ObtenerPorID, id, "Festival")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, f.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Festival", f.ID)
	}
	return dto.MensajeResponse{Message: "Festival eliminado correctamente"}, nil
}
