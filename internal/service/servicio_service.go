package service

import (
	"context"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"
)

const tituloServicioPorDefecto = "Servicio sin título"

type ServicioService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (dto.ServicioResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioResponse, error)
	ListarActivos(ctx context.Context) ([]dto.ServicioResponse, error)
	Filtrar(ctx context.Context, f dto.ServicioFiltro) ([]dto.ServicioResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID string) ([]dto.ServicioResponse, error)
	ListarPorSubcategoria(ctx context.Context, subcategoriaID string) ([]dto.ServicioResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.ServicioResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarServicioRequest) (dto.ServicioResponse, error)
	CambiarEstado(ctx context.Context, id, estado string) (dto.ServicioResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type servicioService struct {
	repo             repository.ServicioRepository
	categoriaRepo    repository.CategoriaRepository
	subcategoriaRepo repository.SubcategoriaRepository
}

func NewServicioService(
	repo repository.ServicioRepository,
	categoriaRepo repository.CategoriaRepository,
	subcategoriaRepo repository.SubcategoriaRepository,
) ServicioService {
	return &servicioService{repo: repo, categoriaRepo: categoriaRepo, subcategoriaRepo: subcategoriaRepo}
}

func mapServicio(s model.Servicio) dto.ServicioResponse {
	resp := dto.ServicioResponse{
		ID:             s.ID,
		Titulo:         s.Titulo,
		Descripcion:    s.Descripcion,
		IDCategoria:    s.CategoriaID,
		IDSubcategoria: s.SubcategoriaID,
		Estado:         s.Estado,
		ImagenURL:      s.ImagenURL,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Categoria != nil {
		c := mapCategoria(*s.Categoria)
		resp.Categoria = &c
	}
	if s.Subcategoria != nil {
		sc := mapSubcategoria(*s.Subcategoria)
		resp.Subcategoria = &sc
	}
	return resp
}

// referencias resolves the optional categoría/subcategoría ids of a request.
func (s *servicioService) referencias(ctx context.Context, sv *model.Servicio, categoriaID, subcategoriaID *string) error {
	if categoriaID != nil {
		id, err := parseID(*categoriaID)
		if err != nil {
			return err
		}
		c, ok, err := existe(ctx, s.categoriaRepo.ObtenerPorID, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierror.BadRequest("La categoría especificada no existe")
		}
		sv.CategoriaID, sv.Categoria = &id, c
	}
	if subcategoriaID != nil {
		id, err := parseID(*subcategoriaID)
		if err != nil {
			return err
		}
		sc, ok, err := existe(ctx, s.subcategoriaRepo.ObtenerPorID, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierror.BadRequest("La subcategoría especificada no existe")
		}
		sv.SubcategoriaID, sv.Subcategoria = &id, sc
	}
	return nil
}

func (s *servicioService) Crear(ctx context.Context, req dto.CrearServicioRequest) (dto.ServicioResponse, error) {
	sv := &model.Servicio{
		Titulo: tituloServicioPorDefecto,
		Estado: model.EstadoActivo,
	}
	if req.Titulo != nil && *req.Titulo != "" {
		sv.Titulo = *req.Titulo
	}
	if req.Descripcion != nil {
		sv.Descripcion = *req.Descripcion
	}
	if req.Estado != nil {
		sv.Estado = *req.Estado
	}
	if req.ImagenURL != nil {
		sv.ImagenURL = *req.ImagenURL
	}
	if err := s.referencias(ctx, sv, req.IDCategoria, req.IDSubcategoria); err != nil {
		return dto.ServicioResponse{}, err
	}

	if err := s.repo.Crear(ctx, sv); err != nil {
		return dto.ServicioResponse{}, err
	}
	return mapServicio(*sv), nil
}

func (s *servicioService) listar(ctx context.Context, f repository.ServicioFiltro) ([]dto.ServicioResponse, error) {
	list, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapServicio), nil
}

func (s *servicioService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	return s.listar(ctx, repository.ServicioFiltro{})
}

// ListarActivos reports NotFound instead of an empty list.
func (s *servicioService) ListarActivos(ctx context.Context) ([]dto.ServicioResponse, error) {
	list, err := s.listar(ctx, repository.ServicioFiltro{Estado: model.EstadoActivo})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No hay servicios activos disponibles")
	}
	return list, nil
}

// Filtrar silently drops filter values that are malformed.
func (s *servicioService) Filtrar(ctx context.Context, f dto.ServicioFiltro) ([]dto.ServicioResponse, error) {
	filtro := repository.ServicioFiltro{
		CategoriaID:    parseIDOpcional(f.IDCategoria),
		SubcategoriaID: parseIDOpcional(f.IDSubcategoria),
	}
	if validarEstado(f.Estado, model.EstadosActivacion) == nil {
		filtro.Estado = f.Estado
	}
	return s.listar(ctx, filtro)
}

func (s *servicioService) ListarPorCategoria(ctx context.Context, categoriaID string) ([]dto.ServicioResponse, error) {
	id, err := parseID(categoriaID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.ServicioFiltro{CategoriaID: &id})
}

func (s *servicioService) ListarPorSubcategoria(ctx context.Context, subcategoriaID string) ([]dto.ServicioResponse, error) {
	id, err := parseID(subcategoriaID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.ServicioFiltro{SubcategoriaID: &id})
}

func (s *servicioService) ObtenerPorID(ctx context.Context, id string) (dto.ServicioResponse, error) {
	sv, err := obtener(ctx, s.repo.ObtenerPorID, id, "Servicio")
	if err != nil {
		return dto.ServicioResponse{}, err
	}
	return mapServicio(*sv), nil
}

func (s *servicioService) Actualizar(ctx context.Context, id string, req dto.ActualizarServicioRequest) (dto.ServicioResponse, error) {
	sv, err := obtener(ctx, s.repo.ObtenerPorID, id, "Servicio")
	if err != nil {
		return dto.ServicioResponse{}, err
	}
	var cols []string
	if req.Titulo != nil {
		sv.Titulo = *req.Titulo
		cols = append(cols, "titulo")
	}
	if req.Descripcion != nil {
		sv.Descripcion = *req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.Estado != nil {
		sv.Estado = *req.Estado
		cols = append(cols, "estado")
	}
	if req.ImagenURL != nil {
		sv.ImagenURL = *req.ImagenURL
		cols = append(cols, "imagen_url")
	}
	if err := s.referencias(ctx, sv, req.IDCategoria, req.IDSubcategoria); err != nil {
		return dto.ServicioResponse{}, err
	}
	if req.IDCategoria != nil {
		cols = append(cols, "categoria_id")
	}
	if req.IDSubcategoria != nil {
		cols = append(cols, "subcategoria_id")
	}

	if err := s.repo.Actualizar(ctx, sv, cols...); err != nil {
		return dto.ServicioResponse{}, escritura(err, "Servicio", sv.ID)
	}
	return mapServicio(*sv), nil
}

func (s *servicioService) CambiarEstado(ctx context.Context, id, estado string) (dto.ServicioResponse, error) {
	if err := validarEstado(estado, model.EstadosActivacion); err != nil {
		return dto.ServicioResponse{}, err
	}
	sv, err := obtener(ctx, s.repo.ObtenerPorID, id, "Servicio")
	if err != nil {
		return dto.ServicioResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, sv.ID, estado); err != nil {
		return dto.ServicioResponse{}, escritura(err, "Servicio", sv.ID)
	}
	sv.Estado = estado
	return mapServicio(*sv), nil
}

func (s *servicioService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	sv, err := obtener(ctx, s.repo.ObtenerPorID, id, "Servicio")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, sv.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Servicio", sv.ID)
	}
	return dto.MensajeResponse{Message: "Servicio eliminado correctamente"}, nil
}
