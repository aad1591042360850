package service

import (
	"context"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/infra"
	"amaru/internal/model"
	"amaru/internal/repository"
	"amaru/internal/worker"

	"github.com/shopspring/decimal"
)

// MonedaInscripcion is the currency of every registration fee.
const MonedaInscripcion = "PEN"

// montoInscripcion is the flat registration fee until per-taller pricing exists.
var montoInscripcion = decimal.NewFromInt(100)

type InscripcionService interface {
	Crear(ctx context.Context, req dto.CrearInscripcionRequest) (dto.InscripcionResponse, error)
	Listar(ctx context.Context) ([]dto.InscripcionResponse, error)
	ListarPorUsuario(ctx context.Context, usuarioID string) ([]dto.InscripcionResponse, error)
	ListarPorEstado(ctx context.Context, estado string) ([]dto.InscripcionResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.InscripcionResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarInscripcionRequest) (dto.InscripcionResponse, error)
	CambiarEstado(ctx context.Context, id, estado string) (dto.InscripcionResponse, error)
	Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error)
	Estadisticas(ctx context.Context) (dto.EstadisticasInscripcionResponse, error)
	Constancia(ctx context.Context, id string) ([]byte, error)
}

type inscripcionService struct {
	repo        repository.InscripcionRepository
	usuarios    repository.UsuarioSinPasswordRepository
	notificador worker.Notificador
	numeroPago  string
	now         func() time.Time
}

func NewInscripcionService(
	repo repository.InscripcionRepository,
	usuarios repository.UsuarioSinPasswordRepository,
	notificador worker.Notificador,
	numeroPago string,
) InscripcionService {
	if notificador == nil {
		notificador = worker.NopNotificador{}
	}
	return &inscripcionService{
		repo:        repo,
		usuarios:    usuarios,
		notificador: notificador,
		numeroPago:  numeroPago,
		now:         time.Now,
	}
}

func mapInscripcion(i model.Inscripcion) dto.InscripcionResponse {
	resp := dto.InscripcionResponse{
		ID:               i.ID,
		IDUsuario:        i.UsuarioID,
		Email:            i.Email,
		Estado:           i.Estado,
		Total:            i.Total.InexactFloat64(),
		Moneda:           i.Moneda,
		FechaInscripcion: i.FechaInscripcion,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
	if i.Usuario != nil {
		u := mapUsuarioSinPassword(*i.Usuario)
		resp.Usuario = &u
	}
	return resp
}

// calcularTotal prices a registration.
func calcularTotal() (decimal.Decimal, string) {
	return montoInscripcion, MonedaInscripcion
}

func (s *inscripcionService) Crear(ctx context.Context, req dto.CrearInscripcionRequest) (dto.InscripcionResponse, error) {
	uid, err := parseID(req.IDUsuario)
	if err != nil {
		return dto.InscripcionResponse{}, err
	}
	usuario, ok, err := existe(ctx, s.usuarios.ObtenerPorID, uid)
	if err != nil {
		return dto.InscripcionResponse{}, err
	}
	if !ok {
		return dto.InscripcionResponse{}, apierror.BadRequest("El usuario especificado no existe")
	}

	estado := model.InscripcionPendiente
	if req.Estado != nil {
		if err := validarEstado(*req.Estado, model.EstadosInscripcion); err != nil {
			return dto.InscripcionResponse{}, err
		}
		estado = *req.Estado
	}
	email := usuario.Email
	if req.Email != nil && *req.Email != "" {
		email = *req.Email
	}

	total, moneda := calcularTotal()
	i := &model.Inscripcion{
		UsuarioID:        usuario.ID,
		Email:            email,
		Estado:           estado,
		Total:            total,
		Moneda:           moneda,
		FechaInscripcion: s.now(),
	}
	if err := s.repo.Crear(ctx, i); err != nil {
		return dto.InscripcionResponse{}, err
	}
	i.Usuario = usuario

	s.notificador.InscripcionCreada(ctx, worker.NuevoInscripcionEmail(i))
	return mapInscripcion(*i), nil
}

func (s *inscripcionService) listar(ctx context.Context, f repository.InscripcionFiltro) ([]dto.InscripcionResponse, error) {
	list, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, mapInscripcion), nil
}

func (s *inscripcionService) Listar(ctx context.Context) ([]dto.InscripcionResponse, error) {
	return s.listar(ctx, repository.InscripcionFiltro{})
}

func (s *inscripcionService) ListarPorUsuario(ctx context.Context, usuarioID string) ([]dto.InscripcionResponse, error) {
	id, err := parseID(usuarioID)
	if err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.InscripcionFiltro{UsuarioID: &id})
}

func (s *inscripcionService) ListarPorEstado(ctx context.Context, estado string) ([]dto.InscripcionResponse, error) {
	if err := validarEstado(estado, model.EstadosInscripcion); err != nil {
		return nil, err
	}
	return s.listar(ctx, repository.InscripcionFiltro{Estado: estado})
}

func (s *inscripcionService) ObtenerPorID(ctx context.Context, id string) (dto.InscripcionResponse, error) {
	i, err := obtener(ctx, s.repo.ObtenerPorID, id, "Inscripción")
	if err != nil {
		return dto.InscripcionResponse{}, err
	}
	return mapInscripcion(*i), nil
}

// Actualizar does not notify; only CambiarEstado sends the estado email.
func (s *inscripcionService) Actualizar(ctx context.Context, id string, req dto.ActualizarInscripcionRequest) (dto.InscripcionResponse, error) {
	i, err := obtener(ctx, s.repo.ObtenerPorID, id, "Inscripción")
	if err != nil {
		return dto.InscripcionResponse{}, err
	}
	var cols []string
	if req.Estado != nil {
		if err := validarEstado(*req.Estado, model.EstadosInscripcion); err != nil {
			return dto.InscripcionResponse{}, err
		}
		i.Estado = *req.Estado
		cols = append(cols, "estado")
	}
	if req.Email != nil {
		i.Email = *req.Email
		cols = append(cols, "email")
	}
	if err := s.repo.Actualizar(ctx, i, cols...); err != nil {
		return dto.InscripcionResponse{}, escritura(err, "Inscripción", i.ID)
	}
	return mapInscripcion(*i), nil
}

// CambiarEstado accepts any transition between the three estados.
func (s *inscripcionService) CambiarEstado(ctx context.Context, id, estado string) (dto.InscripcionResponse, error) {
	if _, err := parseID(id); err != nil {
		return dto.InscripcionResponse{}, err
	}
	if err := validarEstado(estado, model.EstadosInscripcion); err != nil {
		return dto.InscripcionResponse{}, err
	}
	i, err := obtener(ctx, s.repo.ObtenerPorID, id, "Inscripción")
	if err != nil {
		return dto.InscripcionResponse{}, err
	}
	if err := s.repo.CambiarEstado(ctx, i.ID, estado); err != nil {
		return dto.InscripcionResponse{}, escritura(err, "Inscripción", i.ID)
	}
	i.Estado = estado

	s.notificador.EstadoActualizado(ctx, worker.NuevoInscripcionEmail(i))
	return mapInscripcion(*i), nil
}

func (s *inscripcionService) Eliminar(ctx context.Context, id string) (dto.MensajeResponse, error) {
	i, err := obtener(ctx, s.repo.ObtenerPorID, id, "Inscripción")
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.repo.Eliminar(ctx, i.ID); err != nil {
		return dto.MensajeResponse{}, escritura(err, "Inscripción", i.ID)
	}
	return dto.MensajeResponse{Message: "Inscripción eliminada correctamente"}, nil
}

func (s *inscripcionService) Estadisticas(ctx context.Context) (dto.EstadisticasInscripcionResponse, error) {
	e, err := s.repo.Estadisticas(ctx)
	if err != nil {
		return dto.EstadisticasInscripcionResponse{}, err
	}
	porEstado := make([]dto.ConteoEstado, 0, len(e.PorEstado))
	for _, c := range e.PorEstado {
		porEstado = append(porEstado, dto.ConteoEstado{Estado: c.Estado, Count: c.Count})
	}
	return dto.EstadisticasInscripcionResponse{
		Total:           e.Total,
		PorEstado:       porEstado,
		IngresosTotales: e.Ingresos.InexactFloat64(),
	}, nil
}

// Constancia renders the registration certificate PDF.
func (s *inscripcionService) Constancia(ctx context.Context, id string) ([]byte, error) {
	i, err := obtener(ctx, s.repo.ObtenerPorID, id, "Inscripción")
	if err != nil {
		return nil, err
	}
	return infra.GenerarConstanciaPDF(i, s.numeroPago)
}
