package service

import (
	"context"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"

	"github.com/rs/zerolog/log"
)

// CategoriaService defines business operations for categorías. Activar and
// Desactivar cascade the new estado to every child subcategoría.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	ListarActivas(ctx context.Context) ([]dto.CategoriaResponse, error)
	ListarPorEstado(ctx context.Context, estado string) ([]dto.CategoriaResponse, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]dto.CategoriaResponse, error)
	ListarPorRangoFechas(ctx context.Context, inicio, fin string) ([]dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Activar(ctx context.Context, id string) (dto.CategoriaCascadaResponse, error)
	Desactivar(ctx context.Context, id string) (dto.CategoriaCascadaResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type categoriaService struct {
	repo    repository.CategoriaRepository
	subRepo repository.SubcategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, subRepo repository.SubcategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo, subRepo: subRepo}
}

// mapCategoria converts a model to a DTO response.
func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Tipo:        c.Tipo,
		Descripcion: c.Descripcion,
		Estado:      c.Estado,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *categoriaService) nombreDisponible(ctx context.Context, nombre string, c *model.Categoria) error {
	existing, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil && !noEncontrado(err) {
		return err
	}
	if existing != nil && (c == nil || existing.ID != c.ID) {
		return apierror.Conflict("Ya existe una categoría con el nombre %q", nombre)
	}
	return nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	if err := s.nombreDisponible(ctx, req.Nombre, nil); err != nil {
		return dto.CategoriaResponse{}, err
	}

	c := &model.Categoria{
		Nombre:      req.Nombre,
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Estado:      model.EstadoActivo,
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, duplicado(err, "Ya existe una categoría con el nombre %q", c.Nombre)
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) listar(ctx context.Context, f repository.CategoriaFiltro) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapCategoria), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	return s.listar(ctx, repository.CategoriaFiltro{})
}

func (s *categoriaService) ListarActivas(ctx context.Context) ([]dto.CategoriaResponse, error) {
	return s.listar(ctx, repository.CategoriaFiltro{Estado: model.EstadoActivo})
}

func (s *categoriaService) ListarPorEstado(ctx context.Context, estado string) ([]dto.CategoriaResponse, error) {
	if err := validarEstado(estado, model.EstadosActivacion); err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.CategoriaFiltro{Estado: estado})
}

// ListarPorTipo only returns active categorías.
func (s *categoriaService) ListarPorTipo(ctx context.Context, tipo string) ([]dto.CategoriaResponse, error) {
	valido := false
	for _, t := range model.TiposCategoria {
		valido = valido || t == tipo
	}
	if !valido {
		return nil, apierror.BadRequest("Tipo debe ser: taller, servicio")
	}
	return s.listar(ctx, repository.CategoriaFiltro{Tipo: tipo, Estado: model.EstadoActivo})
}

func (s *categoriaService) ListarPorRangoFechas(ctx context.Context, inicio, fin string) ([]dto.CategoriaResponse, error) {
	desde, err := parseFecha(inicio)
	if err != nil {
		return nil, apierror.BadRequest("Fecha de inicio inválida: %s", inicio)
	}
	hasta, err := parseFecha(fin)
	if err != nil {
		return nil, apierror.BadRequest("Fecha de fin inválida: %s", fin)
	}
	if hasta.Before(desde) {
		return nil, apierror.BadRequest("La fecha de inicio debe ser anterior a la fecha de fin")
	}
	return s.listar(ctx, repository.CategoriaFiltro{Desde: &desde, Hasta: &hasta})
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id string) (dto.CategoriaResponse, error) {
	c, err := obtener(ctx, s.repo.ObtenerPorID, id, "Categoría")
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id string, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := obtener(ctx, s.repo.ObtenerPorID, id, "Categoría")
	if err != nil {
		return dto.CategoriaResponse{}, err
	}

	var cols []string
	if req.Nombre != nil {
		if *req.Nombre != c.Nombre {
			if err := s.nombreDisponible(ctx, *req.Nombre, c); err != nil {
				return dto.CategoriaResponse{}, err
			}
		}
		c.Nombre = *req.Nombre
		cols = append(cols, "nombre")
	}
	if req.Tipo != nil {
		c.Tipo = *req.Tipo
		cols = append(cols, "tipo")
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
		cols = append(cols, "estado")
	}

	if err := s.repo.Actualizar(ctx, c, cols...); err != nil {
		err = duplicado(err, "Ya existe una categoría con el nombre %q", c.Nombre)
		return dto.CategoriaResponse{}, escritura(err, "Categoría", c.ID)
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Activar(ctx context.Context, id string) (dto.CategoriaCascadaResponse, error) {
	return s.cambiarEstadoCascada(ctx, id, model.EstadoActivo)
}

func (s *categoriaService) Desactivar(ctx context.Context, id string) (dto.CategoriaCascadaResponse, error) {
	return s.cambiarEstadoCascada(ctx, id, model.EstadoInactivo)
}

// cambiarEstadoCascada performs two independent writes. A failure in the bulk
// subcategoría update leaves the categoría already changed.
func (s *categoriaService) cambiarEstadoCascada(ctx context.Context, id, estado string) (dto.CategoriaCascadaResponse, error) {
	c, err := obtener(ctx, s.repo.ObtenerPorID, id, "Categoría")
	if err != nil {
		return dto.CategoriaCascadaResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, c.ID, estado); err != nil {
		return dto.CategoriaCascadaResponse{}, escritura(err, "Categoría", c.ID)
	}
	c.Estado = estado

	n, err := s.subRepo.CambiarEstadoPorCategoria(ctx, c.ID, estado)
	if err != nil {
		log.Error().Err(err).Str("categoria_id", c.ID.String()).Str("estado", estado).
			Msg("categoria updated but subcategoria cascade failed")
		return dto.CategoriaCascadaResponse{}, err
	}
	return dto.CategoriaCascadaResponse{Categoria: mapCategoria(*c), SubcategoriasAfectadas: n}, nil
}

// Eliminar refuses to delete a categoría that still owns subcategorías.
func (s *categoriaService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	c, err := obtener(ctx, s.repo.ObtenerPorID, id, "Categoría")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	n, err := s.repo.ContarSubcategorias(ctx, c.ID)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if n > 0 {
		return dto.MensajeResponse{}, apierror.Conflict("La categoría tiene %d subcategorías asociadas", n)
	}
	if err := s.repo.Eliminar(ctx, c.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Categoría", c.ID)
	}
	return dto.MensajeResponse{Message: "Categoría eliminada correctamente"}, nil
}
