package service

import (
	"context"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"
	"amaru/internal/repository"

	"github.com/google/uuid"
)

// ventanaProximos is how far ahead ListarProximos looks.
const ventanaProximos = 7 * 24 * time.Hour

type TallerService interface {
	Crear(ctx context.Context, req dto.CrearTallerRequest) (dto.TallerResponse, error)
	Listar(ctx context.Context) ([]dto.TallerResponse, error)
	ListarActivos(ctx context.Context) ([]dto.TallerResponse, error)
	ListarProximos(ctx context.Context) ([]dto.TallerResponse, error)
	Filtrar(ctx context.Context, f dto.TallerFiltro) ([]dto.TallerResponse, error)
	ListarPorSubcategoria(ctx context.Context, subcategoriaID string) ([]dto.TallerResponse, error)
	ListarPorProfesor(ctx context.Context, profesorID string) ([]dto.TallerResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.TallerResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarTallerRequest) (dto.TallerResponse, error)
	CambiarEstado(ctx context.Context, id, estado string) (dto.TallerResponse, error)
	ActualizarCupo(ctx context.Context, id string, reservados int) (dto.TallerResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
}

type tallerService struct {
	repo             repository.TallerRepository
	categoriaRepo    repository.CategoriaRepository
	subcategoriaRepo repository.SubcategoriaRepository
	profesorRepo     repository.ProfesorRepository
	now              func() time.Time
}

func NewTallerService(
	repo repository.TallerRepository,
	categoriaRepo repository.CategoriaRepository,
	subcategoriaRepo repository.SubcategoriaRepository,
	profesorRepo repository.ProfesorRepository,
) TallerService {
	return &tallerService{
		repo:             repo,
		categoriaRepo:    categoriaRepo,
		subcategoriaRepo: subcategoriaRepo,
		profesorRepo:     profesorRepo,
		now:              time.Now,
	}
}

func mapTaller(t model.Taller) dto.TallerResponse {
	resp := dto.TallerResponse{
		ID:             t.ID,
		Nombre:         t.Nombre,
		Descripcion:    t.Descripcion,
		IDCategoria:    t.CategoriaID,
		IDSubcategoria: t.SubcategoriaID,
		IDProfesor:     t.ProfesorID,
		FechaInicio:    t.FechaInicio,
		FechaFin:       t.FechaFin,
		CupoTotal:      t.CupoTotal,
		CupoDisponible: t.CupoDisponible,
		Precio:         t.Precio.InexactFloat64(),
		Estado:         t.Estado,
		ImagenURL:      t.ImagenURL,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.Categoria != nil {
		c := mapCategoria(*t.Categoria)
		resp.Categoria = &c
	}
	if t.Subcategoria != nil {
		sc := mapSubcategoria(*t.Subcategoria)
		resp.Subcategoria = &sc
	}
	if t.Profesor != nil {
		p := mapProfesor(*t.Profesor)
		resp.Profesor = &p
	}
	return resp
}

// validarFechas enforces fecha_fin strictly after fecha_inicio.
func validarFechas(inicio, fin time.Time) error {
	if !fin.After(inicio) {
		return apierror.BadRequest("La fecha de fin debe ser posterior a la fecha de inicio")
	}
	return nil
}

// reservarCupo returns the seats left after taking n, or an error when that would go negative.
func reservarCupo(disponible, n int) (int, error) {
	if disponible-n < 0 {
		return disponible, apierror.BadRequest("No hay cupos disponibles suficientes")
	}
	return disponible - n, nil
}

func (s *tallerService) referencias(ctx context.Context, t *model.Taller, categoriaID, subcategoriaID, profesorID *string) error {
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
		t.CategoriaID, t.Categoria = id, c
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
		t.SubcategoriaID, t.Subcategoria = id, sc
	}
	if profesorID != nil {
		id, err := parseID(*profesorID)
		if err != nil {
			return err
		}
		p, ok, err := existe(ctx, s.profesorRepo.ObtenerPorID, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierror.BadRequest("El profesor especificado no existe")
		}
		t.ProfesorID, t.Profesor = id, p
	}
	return nil
}

func (s *tallerService) Crear(ctx context.Context, req dto.CrearTallerRequest) (dto.TallerResponse, error) {
	if err := validarFechas(req.FechaInicio, req.FechaFin); err != nil {
		return dto.TallerResponse{}, err
	}

	t := &model.Taller{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		FechaInicio:    req.FechaInicio,
		FechaFin:       req.FechaFin,
		CupoTotal:      req.CupoTotal,
		CupoDisponible: req.CupoTotal,
		Precio:         req.Precio,
		Estado:         model.EstadoActivo,
		ImagenURL:      req.ImagenURL,
	}
	if req.Estado != nil {
		t.Estado = *req.Estado
	}
	if err := s.referencias(ctx, t, &req.IDCategoria, &req.IDSubcategoria, &req.IDProfesor); err != nil {
		return dto.TallerResponse{}, err
	}

	if err := s.repo.Crear(ctx, t); err != nil {
		return dto.TallerResponse{}, err
	}
	return mapTaller(*t), nil
}

func (s *tallerService) listar(ctx context.Context, f repository.TallerFiltro) ([]dto.TallerResponse, error) {
	list, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapTaller), nil
}

func (s *tallerService) Listar(ctx context.Context) ([]dto.TallerResponse, error) {
	return s.listar(ctx, repository.TallerFiltro{})
}

func (s *tallerService) ListarActivos(ctx context.Context) ([]dto.TallerResponse, error) {
	return s.listar(ctx, repository.TallerFiltro{Estado: model.EstadoActivo})
}

// ListarProximos returns active talleres with free seats starting within the next week.
func (s *tallerService) ListarProximos(ctx context.Context) ([]dto.TallerResponse, error) {
	desde := s.now()
	hasta := desde.Add(ventanaProximos)
	return s.listar(ctx, repository.TallerFiltro{
		Estado:      model.EstadoActivo,
		InicioDesde: &desde,
		InicioHasta: &hasta,
		SoloConCupo: true,
	})
}

// Filtrar bounds fecha_inicio by the fecha_inicio/fecha_fin query values.
// Malformed values are dropped.
func (s *tallerService) Filtrar(ctx context.Context, f dto.TallerFiltro) ([]dto.TallerResponse, error) {
	filtro := repository.TallerFiltro{
		CategoriaID:    parseIDOpcional(f.IDCategoria),
		SubcategoriaID: parseIDOpcional(f.IDSubcategoria),
		InicioDesde:    parseFechaOpcional(f.FechaInicio),
		InicioHasta:    parseFechaOpcional(f.FechaFin),
	}
	if validarEstado(f.Estado, model.EstadosActivacion) == nil {
		filtro.Estado = f.Estado
	}
	return s.listar(ctx, filtro)
}

func (s *tallerService) ListarPorSubcategoria(ctx context.Context, subcategoriaID string) ([]dto.TallerResponse, error) {
	id, err := parseID(subcategoriaID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.TallerFiltro{SubcategoriaID: &id})
}

func (s *tallerService) ListarPorProfesor(ctx context.Context, profesorID string) ([]dto.TallerResponse, error) {
	id, err := parseID(profesorID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.TallerFiltro{ProfesorID: &id})
}

func (s *tallerService) ObtenerPorID(ctx context.Context, id string) (dto.TallerResponse, error) {
	t, err := obtener(ctx, s.repo.ObtenerPorID, id, "Taller")
	if err != nil {
		return dto.TallerResponse{}, err
	}
	return mapTaller(*t), nil
}

func (s *tallerService) Actualizar(ctx context.Context, id string, req dto.ActualizarTallerRequest) (dto.TallerResponse, error) {
	t, err := obtener(ctx, s.repo.ObtenerPorID, id, "Taller")
	if err != nil {
		return dto.TallerResponse{}, err
	}

	inicio, fin := t.FechaInicio, t.FechaFin
	if req.FechaInicio != nil {
		inicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		fin = *req.FechaFin
	}
	if req.FechaInicio != nil || req.FechaFin != nil {
		if err := validarFechas(inicio, fin); err != nil {
			return dto.TallerResponse{}, err
		}
	}

	var cols []string
	if req.FechaInicio != nil {
		t.FechaInicio = inicio
		cols = append(cols, "fecha_inicio")
	}
	if req.FechaFin != nil {
		t.FechaFin = fin
		cols = append(cols, "fecha_fin")
	}
	if req.Nombre != nil {
		t.Nombre = *req.Nombre
		cols = append(cols, "nombre")
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
		cols = append(cols, "descripcion")
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return dto.TallerResponse{}, apierror.BadRequest("El precio no puede ser negativo")
		}
		t.Precio = *req.Precio
		cols = append(cols, "precio")
	}
	if req.Estado != nil {
		t.Estado = *req.Estado
		cols = append(cols, "estado")
	}
	if req.ImagenURL != nil {
		t.ImagenURL = req.ImagenURL
		cols = append(cols, "imagen_url")
	}
	if err := s.referencias(ctx, t, req.IDCategoria, req.IDSubcategoria, req.IDProfesor); err != nil {
		return dto.TallerResponse{}, err
	}
	if req.IDCategoria != nil {
		cols = append(cols, "categoria_id")
	}
	if req.IDSubcategoria != nil {
		cols = append(cols, "subcategoria_id")
	}
	if req.IDProfesor != nil {
		cols = append(cols, "profesor_id")
	}

	if err := s.repo.Actualizar(ctx, t, cols...); err != nil {
		return dto.TallerResponse{}, escritura(err, "Taller", t.ID)
	}
	// cupo_disponible is never written from t; AjustarCupoTotal derives it from the stored row.
	if req.CupoTotal != nil {
		if err := s.repo.AjustarCupoTotal(ctx, t.ID, *req.CupoTotal); err != nil {
			return dto.TallerResponse{}, escritura(err, "Taller", t.ID)
		}
	}
	return s.releer(ctx, t.ID)
}

// releer returns the taller as stored after a write.
func (s *tallerService) releer(ctx context.Context, id uuid.UUID) (dto.TallerResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.TallerResponse{}, escritura(err, "Taller", id)
	}
	return mapTaller(*t), nil
}

func (s *tallerService) CambiarEstado(ctx context.Context, id, estado string) (dto.TallerResponse, error) {
	if err := validarEstado(estado, model.EstadosActivacion); err != nil {
		return dto.TallerResponse{}, err
	}
	t, err := obtener(ctx, s.repo.ObtenerPorID, id, "Taller")
	if err != nil {
		return dto.TallerResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, t.ID, estado); err != nil {
		return dto.TallerResponse{}, escritura(err, "Taller", t.ID)
	}
	t.Estado = estado
	return mapTaller(*t), nil
}

// ActualizarCupo reserves seats. The decrement is conditional in the store, so
// concurrent reservations cannot take cupo_disponible below zero.
func (s *tallerService) ActualizarCupo(ctx context.Context, id string, reservados int) (dto.TallerResponse, error) {
	if reservados < 1 {
		return dto.TallerResponse{}, apierror.BadRequest("La cantidad de cupos debe ser mayor a cero")
	}
	t, err := obtener(ctx, s.repo.ObtenerPorID, id, "Taller")
	if err != nil {
		return dto.TallerResponse{}, err
	}
	if _, err := reservarCupo(t.CupoDisponible, reservados); err != nil {
		return dto.TallerResponse{}, err
	}
	ok, err := s.repo.ReservarCupo(ctx, t.ID, reservados)
	if err != nil {
		return dto.TallerResponse{}, err
	}
	if !ok {
		return dto.TallerResponse{}, apierror.BadRequest("No hay cupos disponibles suficientes")
	}
	return s.releer(ctx, t.ID)
}

func (s *tallerService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	t, err := obtener(ctx, s.repo.ObtenerPorID, id, "Taller")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, t.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Taller", t.ID)
	}
	return dto.MensajeResponse{Message: "Taller eliminado correctamente"}, nil
}
