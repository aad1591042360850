package service

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"amaru/internal/model"
	"amaru/internal/repository"
	"amaru/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ── Generic in-memory CRUD store ──────────────────────────────────────────────

type memCRUD[T any] struct {
	rows map[uuid.UUID]*T
	id   func(*T) *uuid.UUID
	// crearErr, when set, is returned by Crear instead of storing the row.
	crearErr error
	// antesDeEscribir runs inside Actualizar before the row is touched, standing
	// in for a concurrent writer that commits between a service's read and write.
	antesDeEscribir func()
}

func newMemCRUD[T any](id func(*T) *uuid.UUID) *memCRUD[T] {
	return &memCRUD[T]{rows: make(map[uuid.UUID]*T), id: id}
}

func (m *memCRUD[T]) Crear(_ context.Context, e *T) error {
	if m.crearErr != nil {
		return m.crearErr
	}
	if *m.id(e) == uuid.Nil {
		*m.id(e) = uuid.New()
	}
	m.rows[*m.id(e)] = e
	return nil
}

func (m *memCRUD[T]) ObtenerPorID(_ context.Context, id uuid.UUID) (*T, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memCRUD[T]) Listar(_ context.Context) ([]T, error) {
	out := make([]T, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, *e)
	}
	return out, nil
}

// Actualizar copies only the named columns onto the stored row, resolving
// field names the way GORM's default naming strategy does.
func (m *memCRUD[T]) Actualizar(_ context.Context, e *T, cols ...string) error {
	if m.antesDeEscribir != nil {
		m.antesDeEscribir()
	}
	if len(cols) == 0 {
		return nil
	}
	row, ok := m.rows[*m.id(e)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	set := make(map[string]bool, len(cols))
	for _, c := range cols {
		set[c] = true
	}
	var naming schema.NamingStrategy
	src, dst := reflect.ValueOf(e).Elem(), reflect.ValueOf(row).Elem()
	for i := 0; i < src.NumField(); i++ {
		if set[naming.ColumnName("", src.Type().Field(i).Name)] {
			dst.Field(i).Set(src.Field(i))
		}
	}
	return nil
}

func (m *memCRUD[T]) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

func newProfesorStub() *memCRUD[model.Profesor] {
	return newMemCRUD(func(p *model.Profesor) *uuid.UUID { return &p.ID })
}

func newActividadStub() *memCRUD[model.Actividad] {
	return newMemCRUD(func(a *model.Actividad) *uuid.UUID { return &a.ID })
}

func newPremioStub() *memCRUD[model.Premio] {
	return newMemCRUD(func(p *model.Premio) *uuid.UUID { return &p.ID })
}

// ── Categorías / Subcategorías ────────────────────────────────────────────────

type stubCategoriaRepo struct {
	*memCRUD[model.Categoria]
	subs *stubSubcategoriaRepo
}

func newStubCategoriaRepo(subs *stubSubcategoriaRepo) *stubCategoriaRepo {
	return &stubCategoriaRepo{
		memCRUD: newMemCRUD(func(c *model.Categoria) *uuid.UUID { return &c.ID }),
		subs:    subs,
	}
}

func (r *stubCategoriaRepo) Listar(_ context.Context, f repository.CategoriaFiltro) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.rows {
		if f.Estado != "" && c.Estado != f.Estado {
			continue
		}
		if f.Tipo != "" && c.Tipo != f.Tipo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.rows {
		if strings.EqualFold(c.Nombre, nombre) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	c, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = estado
	return nil
}

func (r *stubCategoriaRepo) ContarSubcategorias(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.subs.rows {
		if s.CategoriaID == id {
			n++
		}
	}
	return n, nil
}

type stubSubcategoriaRepo struct {
	*memCRUD[model.Subcategoria]
	cascadaErr error
}

func newStubSubcategoriaRepo() *stubSubcategoriaRepo {
	return &stubSubcategoriaRepo{memCRUD: newMemCRUD(func(s *model.Subcategoria) *uuid.UUID { return &s.ID })}
}

func (r *stubSubcategoriaRepo) Listar(_ context.Context, categoriaID *uuid.UUID) ([]model.Subcategoria, error) {
	var out []model.Subcategoria
	for _, s := range r.rows {
		if categoriaID == nil || s.CategoriaID == *categoriaID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSubcategoriaRepo) ObtenerPorNombre(_ context.Context, categoriaID uuid.UUID, nombre string) (*model.Subcategoria, error) {
	for _, s := range r.rows {
		if s.CategoriaID == categoriaID && strings.EqualFold(s.Nombre, nombre) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSubcategoriaRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	s, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Estado = estado
	return nil
}

func (r *stubSubcategoriaRepo) CambiarEstadoPorCategoria(_ context.Context, categoriaID uuid.UUID, estado string) (int64, error) {
	if r.cascadaErr != nil {
		return 0, r.cascadaErr
	}
	var n int64
	for _, s := range r.rows {
		if s.CategoriaID == categoriaID && s.Estado != estado {
			s.Estado = estado
			n++
		}
	}
	return n, nil
}

// ── Servicios ─────────────────────────────────────────────────────────────────

type stubServicioRepo struct {
	*memCRUD[model.Servicio]
	ultimoFiltro repository.ServicioFiltro
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{memCRUD: newMemCRUD(func(s *model.Servicio) *uuid.UUID { return &s.ID })}
}

func (r *stubServicioRepo) Listar(_ context.Context, f repository.ServicioFiltro) ([]model.Servicio, error) {
	r.ultimoFiltro = f
	var out []model.Servicio
	for _, s := range r.rows {
		if f.Estado != "" && s.Estado != f.Estado {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicioRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	s, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Estado = estado
	return nil
}

// ── Talleres ──────────────────────────────────────────────────────────────────

type stubTallerRepo struct {
	*memCRUD[model.Taller]
	ultimoFiltro    repository.TallerFiltro
	antesDeReservar func()
}

func newStubTallerRepo() *stubTallerRepo {
	return &stubTallerRepo{memCRUD: newMemCRUD(func(t *model.Taller) *uuid.UUID { return &t.ID })}
}

func (r *stubTallerRepo) Listar(_ context.Context, f repository.TallerFiltro) ([]model.Taller, error) {
	r.ultimoFiltro = f
	var out []model.Taller
	for _, t := range r.rows {
		if f.Estado != "" && t.Estado != f.Estado {
			continue
		}
		if f.SoloConCupo && t.CupoDisponible <= 0 {
			continue
		}
		if f.InicioDesde != nil && t.FechaInicio.Before(*f.InicioDesde) {
			continue
		}
		if f.InicioHasta != nil && t.FechaInicio.After(*f.InicioHasta) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTallerRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	t, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Estado = estado
	return nil
}

func (r *stubTallerRepo) AjustarCupoTotal(_ context.Context, id uuid.UUID, total int) error {
	t, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.CupoDisponible = max(0, min(t.CupoDisponible+total-t.CupoTotal, total))
	t.CupoTotal = total
	return nil
}

func (r *stubTallerRepo) ReservarCupo(_ context.Context, id uuid.UUID, n int) (bool, error) {
	if r.antesDeReservar != nil {
		r.antesDeReservar()
	}
	t, ok := r.rows[id]
	if !ok || t.CupoDisponible < n {
		return false, nil
	}
	t.CupoDisponible -= n
	return true, nil
}

// ── Festivales ────────────────────────────────────────────────────────────────

type stubFestivalRepo struct {
	*memCRUD[model.Festival]
	ultimoFiltro repository.FestivalFiltro
}

func newStubFestivalRepo() *stubFestivalRepo {
	return &stubFestivalRepo{memCRUD: newMemCRUD(func(f *model.Festival) *uuid.UUID { return &f.ID })}
}

func (r *stubFestivalRepo) Listar(_ context.Context, f repository.FestivalFiltro) ([]model.Festival, error) {
	r.ultimoFiltro = f
	var out []model.Festival
	for _, fe := range r.rows {
		if f.Estado != "" && fe.Estado != f.Estado {
			continue
		}
		if f.Tipo != "" && !strings.Contains(strings.ToLower(fe.Tipo), strings.ToLower(f.Tipo)) {
			continue
		}
		if f.ActividadID != nil && fe.ActividadID != *f.ActividadID {
			continue
		}
		out = append(out, *fe)
	}
	return out, nil
}

func (r *stubFestivalRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	f, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.Estado = estado
	return nil
}

// ── Inscripciones ─────────────────────────────────────────────────────────────

type stubInscripcionRepo struct {
	*memCRUD[model.Inscripcion]
	antesDeCambiarEstado func()
}

func newStubInscripcionRepo() *stubInscripcionRepo {
	return &stubInscripcionRepo{memCRUD: newMemCRUD(func(i *model.Inscripcion) *uuid.UUID { return &i.ID })}
}

func (r *stubInscripcionRepo) Listar(_ context.Context, f repository.InscripcionFiltro) ([]model.Inscripcion, error) {
	var out []model.Inscripcion
	for _, i := range r.rows {
		if f.Estado != "" && i.Estado != f.Estado {
			continue
		}
		if f.UsuarioID != nil && i.UsuarioID != *f.UsuarioID {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubInscripcionRepo) CambiarEstado(_ context.Context, id uuid.UUID, estado string) error {
	if r.antesDeCambiarEstado != nil {
		r.antesDeCambiarEstado()
	}
	i, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.Estado = estado
	return nil
}

func (r *stubInscripcionRepo) Estadisticas(_ context.Context) (*repository.EstadisticasInscripcion, error) {
	e := &repository.EstadisticasInscripcion{}
	conteo := map[string]int64{}
	for _, i := range r.rows {
		e.Total++
		conteo[i.Estado]++
		if i.Estado == model.InscripcionAprobado {
			e.Ingresos = e.Ingresos.Add(i.Total)
		}
	}
	for _, estado := range model.EstadosInscripcion {
		if n := conteo[estado]; n > 0 {
			e.PorEstado = append(e.PorEstado, repository.ConteoEstado{Estado: estado, Count: n})
		}
	}
	return e, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioSinPasswordRepo struct {
	*memCRUD[model.UsuarioSinPassword]
}

func newStubUsuarioSinPasswordRepo() *stubUsuarioSinPasswordRepo {
	return &stubUsuarioSinPasswordRepo{memCRUD: newMemCRUD(func(u *model.UsuarioSinPassword) *uuid.UUID { return &u.ID })}
}

func (r *stubUsuarioSinPasswordRepo) buscar(match func(*model.UsuarioSinPassword) bool) (*model.UsuarioSinPassword, error) {
	for _, u := range r.rows {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioSinPasswordRepo) ObtenerPorEmail(_ context.Context, email string) (*model.UsuarioSinPassword, error) {
	return r.buscar(func(u *model.UsuarioSinPassword) bool { return strings.EqualFold(u.Email, email) })
}

func (r *stubUsuarioSinPasswordRepo) ObtenerPorDNI(_ context.Context, dni string) (*model.UsuarioSinPassword, error) {
	return r.buscar(func(u *model.UsuarioSinPassword) bool { return u.DNI == dni })
}

func (r *stubUsuarioSinPasswordRepo) Listar(_ context.Context, soloActivos bool) ([]model.UsuarioSinPassword, error) {
	var out []model.UsuarioSinPassword
	for _, u := range r.rows {
		if soloActivos && !u.Activo {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	u.ID = uuid.New()
	r.users[u.Email] = u
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.users[email]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type stubRolRepo struct {
	roles map[string]*model.Rol
}

func (r *stubRolRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Rol, error) {
	rol, ok := r.roles[nombre]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rol, nil
}

func (r *stubRolRepo) Asegurar(ctx context.Context, nombre string) (*model.Rol, error) {
	if rol, err := r.ObtenerPorNombre(ctx, nombre); err == nil {
		return rol, nil
	}
	rol := &model.Rol{ID: uuid.New(), Nombre: nombre}
	r.roles[nombre] = rol
	return rol, nil
}

// ── Notificador ───────────────────────────────────────────────────────────────

type stubNotificador struct {
	mu      sync.Mutex
	creadas []worker.InscripcionEmail
	estados []worker.InscripcionEmail
}

func (n *stubNotificador) InscripcionCreada(_ context.Context, p worker.InscripcionEmail) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.creadas = append(n.creadas, p)
}

func (n *stubNotificador) EstadoActualizado(_ context.Context, p worker.InscripcionEmail) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.estados = append(n.estados, p)
}

// Compile-time checks that the stubs satisfy the repository contracts.
var (
	_ repository.CategoriaRepository          = (*stubCategoriaRepo)(nil)
	_ repository.SubcategoriaRepository       = (*stubSubcategoriaRepo)(nil)
	_ repository.ServicioRepository           = (*stubServicioRepo)(nil)
	_ repository.TallerRepository             = (*stubTallerRepo)(nil)
	_ repository.FestivalRepository           = (*stubFestivalRepo)(nil)
	_ repository.InscripcionRepository        = (*stubInscripcionRepo)(nil)
	_ repository.UsuarioSinPasswordRepository = (*stubUsuarioSinPasswordRepo)(nil)
	_ repository.UsuarioRepository            = (*stubUsuarioRepo)(nil)
	_ repository.RolRepository                = (*stubRolRepo)(nil)
	_ repository.ProfesorRepository           = (*memCRUD[model.Profesor])(nil)
	_ worker.Notificador                      = (*stubNotificador)(nil)
)
