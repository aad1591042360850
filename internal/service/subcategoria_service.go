package service

import (
	"context"
	"fmt"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"

	"github.com/google/uuid"
)

type SubcategoriaService interface {
	Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (dto.SubcategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.SubcategoriaResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID string) ([]dto.SubcategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.SubcategoriaResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarSubcategoriaRequest) (dto.SubcategoriaResponse, error)
	CambiarEstado(ctx context.Context, id, estado string) (dto.SubcategoriaResponse, error)
	ActivarPorCategoria(ctx context.Context, categoriaID string) (dto.CascadaResponse, error)
	DesactivarPorCategoria(ctx context.Context, categoriaID string) (dto.CascadaResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type subcategoriaService struct {
	repo          repository.SubcategoriaRepository
	categoriaRepo repository.CategoriaRepository
}

func NewSubcategoriaService(repo repository.SubcategoriaRepository, categoriaRepo repository.CategoriaRepository) SubcategoriaService {
	return &subcategoriaService{repo: repo, categoriaRepo: categoriaRepo}
}

func mapSubcategoria(s model.Subcategoria) dto.SubcategoriaResponse {
	resp := dto.SubcategoriaResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Estado:      s.Estado,
		IDCategoria: s.CategoriaID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Categoria != nil {
		c := mapCategoria(*s.Categoria)
		resp.Categoria = &c
	}
	return resp
}

// categoriaPadre resolves the parent categoría; it must exist and be active.
func (s *subcategoriaService) categoriaPadre(ctx context.Context, raw string) (*model.Categoria, error) {
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	c, ok, err := existe(ctx, s.categoriaRepo.ObtenerPorID, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.BadRequest("La categoría especificada no existe")
	}
	if c.Estado != model.EstadoActivo {
		return nil, apierror.BadRequest("No se puede crear subcategoría en una categoría inactiva")
	}
	return c, nil
}

func (s *subcategoriaService) nombreDisponible(ctx context.Context, categoriaID uuid.UUID, nombre string, actual *model.Subcategoria) error {
	existing, err := s.repo.ObtenerPorNombre(ctx, categoriaID, nombre)
	if err != nil && !noEncontrado(err) {
		return err
	}
	if existing != nil && (actual == nil || existing.ID != actual.ID) {
		return apierror.Conflict("Ya existe una subcategoría con el nombre %q en esta categoría", nombre)
	}
	return nil
}

func (s *subcategoriaService) Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (dto.SubcategoriaResponse, error) {
	cat, err := s.categoriaPadre(ctx, req.IDCategoria)
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	if err := s.nombreDisponible(ctx, cat.ID, req.Nombre, nil); err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	sub := &model.Subcategoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      model.EstadoActivo,
		CategoriaID: cat.ID,
	}
	if req.Estado != nil {
		sub.Estado = *req.Estado
	}
	if err := s.repo.Crear(ctx, sub); err != nil {
		return dto.SubcategoriaResponse{}, duplicado(err, "Ya existe una subcategoría con el nombre %q en esta categoría", sub.Nombre)
	}
	sub.Categoria = cat
	return mapSubcategoria(*sub), nil
}

func (s *subcategoriaService) Listar(ctx context.Context) ([]dto.SubcategoriaResponse, error) {
	list, err := s.repo.Listar(ctx, nil)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapSubcategoria), nil
}

func (s *subcategoriaService) ListarPorCategoria(ctx context.Context, categoriaID string) ([]dto.SubcategoriaResponse, error) {
	cat, err := obtener(ctx, s.categoriaRepo.ObtenerPorID, categoriaID, "Categoría")
	if err != nil {
		return nil, err
	}
	list, err := s.repo.Listar(ctx, &cat.ID)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapSubcategoria), nil
}

func (s *subcategoriaService) ObtenerPorID(ctx context.Context, id string) (dto.SubcategoriaResponse, error) {
	sub, err := obtener(ctx, s.repo.ObtenerPorID, id, "Subcategoría")
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	return mapSubcategoria(*sub), nil
}

func (s *subcategoriaService) Actualizar(ctx context.Context, id string, req dto.ActualizarSubcategoriaRequest) (dto.SubcategoriaResponse, error) {
	sub, err := obtener(ctx, s.repo.ObtenerPorID, id, "Subcategoría")
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	var cols []string
	if req.IDCategoria != nil {
		cat, err := s.categoriaPadre(ctx, *req.IDCategoria)
		if err != nil {
			return dto.SubcategoriaResponse{}, err
		}
		sub.CategoriaID = cat.ID
		sub.Categoria = cat
		cols = append(cols, "categoria_id")
	}
	nombre := sub.Nombre
	if req.Nombre != nil {
		nombre = *req.Nombre
	}
	if req.Nombre != nil || req.IDCategoria != nil {
		if err := s.nombreDisponible(ctx, sub.CategoriaID, nombre, sub); err != nil {
			return dto.SubcategoriaResponse{}, err
		}
	}
	sub.Nombre = nombre
	if req.Nombre != nil {
		cols = append(cols, "nombre")
	}
	if req.Descripcion != nil {
		sub.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.Estado != nil {
		sub.Estado = *req.Estado
		cols = append(cols, "estado")
	}

	if err := s.repo.Actualizar(ctx, sub, cols...); err != nil {
		err = duplicado(err, "Ya existe una subcategoría con el nombre %q en esta categoría", sub.Nombre)
		return dto.SubcategoriaResponse{}, escritura(err, "Subcategoría", sub.ID)
	}
	return mapSubcategoria(*sub), nil
}

func (s *subcategoriaService) CambiarEstado(ctx context.Context, id, estado string) (dto.SubcategoriaResponse, error) {
	if err := validarEstado(estado, model.EstadosActivacion); err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	sub, err := obtener(ctx, s.repo.ObtenerPorID, id, "Subcategoría")
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, sub.ID, estado); err != nil {
		return dto.SubcategoriaResponse{}, escritura(err, "Subcategoría", sub.ID)
	}
	sub.Estado = estado
	return mapSubcategoria(*sub), nil
}

func (s *subcategoriaService) ActivarPorCategoria(ctx context.Context, categoriaID string) (dto.CascadaResponse, error) {
	return s.cambiarEstadoPorCategoria(ctx, categoriaID, model.EstadoActivo, "activaron")
}

func (s *subcategoriaService) DesactivarPorCategoria(ctx context.Context, categoriaID string) (dto.CascadaResponse, error) {
	return s.cambiarEstadoPorCategoria(ctx, categoriaID, model.EstadoInactivo, "desactivaron")
}

func (s *subcategoriaService) cambiarEstadoPorCategoria(ctx context.Context, categoriaID, estado, verbo string) (dto.CascadaResponse, error) {
	cat, err := obtener(ctx, s.categoriaRepo.ObtenerPorID, categoriaID, "Categoría")
	if err != nil {
		return dto.CascadaResponse{}, err
	}
	n, err := s.repo.CambiarEstadoPorCategoria(ctx, cat.ID, estado)
	if err != nil {
		return dto.CascadaResponse{}, err
	}
	return dto.CascadaResponse{Message: fmt.Sprintf("Se %s %d subcategorías", verbo, n), Count: n}, nil
}

func (s *subcategoriaService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	sub, err := obtener(ctx, s.repo.ObtenerPorID, id, "Subcategoría")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, sub.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Subcategoría", sub.ID)
	}
	return dto.MensajeResponse{Message: "Subcategoría eliminada correctamente"}, nil
}
