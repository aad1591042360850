package service

import (
	"context"
	"testing"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var hoy = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type tallerFixture struct {
	svc      TallerService
	repo     *stubTallerRepo
	req      dto.CrearTallerRequest
	profesor *model.Profesor
}

func newTallerFixture(t *testing.T) *tallerFixture {
	t.Helper()
	ctx := context.Background()
	subs := newStubSubcategoriaRepo()
	cats := newStubCategoriaRepo(subs)
	profesores := newProfesorStub()

	cat := &model.Categoria{Nombre: "Danza", Tipo: model.TipoTaller, Estado: model.EstadoActivo}
	require.NoError(t, cats.Crear(ctx, cat))
	sub := &model.Subcategoria{Nombre: "Marinera", CategoriaID: cat.ID, Estado: model.EstadoActivo}
	require.NoError(t, subs.Crear(ctx, sub))
	prof := &model.Profesor{Nombre: "Lucía Huamán"}
	require.NoError(t, profesores.Crear(ctx, prof))

	repo := newStubTallerRepo()
	svc := NewTallerService(repo, cats, subs, profesores).(*tallerService)
	svc.now = func() time.Time { return hoy }

	return &tallerFixture{
		svc:      svc,
		repo:     repo,
		profesor: prof,
		req: dto.CrearTallerRequest{
			Nombre:         "Marinera norteña",
			IDCategoria:    cat.ID.String(),
			IDSubcategoria: sub.ID.String(),
			IDProfesor:     prof.ID.String(),
			FechaInicio:    hoy.Add(48 * time.Hour),
			FechaFin:       hoy.Add(30 * 24 * time.Hour),
			CupoTotal:      10,
			Precio:         decimal.RequireFromString("150.50"),
		},
	}
}

// ── Crear / Actualizar ────────────────────────────────────────────────────────

func TestTallerCrear_CupoDisponibleEqualsTotal(t *testing.T) {
	f := newTallerFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.CupoDisponible)
	assert.Equal(t, 150.5, resp.Precio)
	assert.Equal(t, model.EstadoActivo, resp.Estado)
	require.NotNil(t, resp.Profesor)
	assert.Equal(t, "Lucía Huamán", resp.Profesor.Nombre)
}

func TestTallerCrear_FechaFinNotAfterInicio(t *testing.T) {
	f := newTallerFixture(t)
	f.req.FechaFin = f.req.FechaInicio

	_, err := f.svc.Crear(context.Background(), f.req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
	assert.Empty(t, f.repo.rows)
}

func TestTallerCrear_BadReferences(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()

	bad := f.req
	bad.IDProfesor = "xyz"
	_, err := f.svc.Crear(ctx, bad)
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))

	missing := f.req
	missing.IDSubcategoria = uuid.NewString()
	_, err = f.svc.Crear(ctx, missing)
	require.Error(t, err)
	assert.Equal(t, "La subcategoría especificada no existe", apierror.From(err).Message)
}

func TestTallerActualizar_DateCheckedAgainstStored(t *testing.T) {
	f := newTallerFixture(t)
	created, err := f.svc.Crear(context.Background(), f.req)
	require.NoError(t, err)

	antes := f.req.FechaInicio.Add(-time.Hour)
	_, err = f.svc.Actualizar(context.Background(), created.ID.String(), dto.ActualizarTallerRequest{FechaFin: &antes})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestTallerActualizar_CupoTotalShiftsDisponible(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()
	created, err := f.svc.Crear(ctx, f.req)
	require.NoError(t, err)
	_, err = f.svc.ActualizarCupo(ctx, created.ID.String(), 4)
	require.NoError(t, err)

	nuevo := 15
	resp, err := f.svc.Actualizar(ctx, created.ID.String(), dto.ActualizarTallerRequest{CupoTotal: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.CupoTotal)
	assert.Equal(t, 11, resp.CupoDisponible)

	nuevo = 3
	resp, err = f.svc.Actualizar(ctx, created.ID.String(), dto.ActualizarTallerRequest{CupoTotal: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CupoDisponible)
}

func TestTallerActualizar_RenameKeepsConcurrentReservation(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()
	created, err := f.svc.Crear(ctx, f.req)
	require.NoError(t, err)
	_, err = f.svc.ActualizarCupo(ctx, created.ID.String(), 4)
	require.NoError(t, err)

	// Another client books 2 seats after the rename has read the taller.
	f.repo.antesDeEscribir = func() { f.repo.rows[created.ID].CupoDisponible -= 2 }
	nombre := "Marinera limeña"
	resp, err := f.svc.Actualizar(ctx, created.ID.String(), dto.ActualizarTallerRequest{Nombre: &nombre})
	require.NoError(t, err)

	stored := f.repo.rows[created.ID]
	assert.Equal(t, "Marinera limeña", stored.Nombre)
	assert.Equal(t, 4, stored.CupoDisponible)
	assert.Equal(t, 10, stored.CupoTotal)
	assert.Equal(t, 4, resp.CupoDisponible)
	assert.Equal(t, "Marinera limeña", resp.Nombre)
}

func TestTallerActualizar_CupoTotalAppliedToStoredDisponible(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()
	created, err := f.svc.Crear(ctx, f.req)
	require.NoError(t, err)

	f.repo.antesDeEscribir = func() { f.repo.rows[created.ID].CupoDisponible = 7 }
	nombre := "Marinera"
	nuevo := 12
	resp, err := f.svc.Actualizar(ctx, created.ID.String(), dto.ActualizarTallerRequest{Nombre: &nombre, CupoTotal: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.CupoTotal)
	assert.Equal(t, 9, resp.CupoDisponible)
	assert.Equal(t, 9, f.repo.rows[created.ID].CupoDisponible)
}

func TestTallerActualizar_DeletedMidRequest(t *testing.T) {
	f := newTallerFixture(t)
	created, err := f.svc.Crear(context.Background(), f.req)
	require.NoError(t, err)

	f.repo.antesDeEscribir = func() { delete(f.repo.rows, created.ID) }
	nombre := "Huayno"
	_, err = f.svc.Actualizar(context.Background(), created.ID.String(), dto.ActualizarTallerRequest{Nombre: &nombre})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

// ── Cupo ──────────────────────────────────────────────────────────────────────

func TestTallerActualizarCupo(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()
	created, err := f.svc.Crear(ctx, f.req)
	require.NoError(t, err)

	resp, err := f.svc.ActualizarCupo(ctx, created.ID.String(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.CupoDisponible)

	_, err = f.svc.ActualizarCupo(ctx, created.ID.String(), 4)
	require.Error(t, err)
	assert.Equal(t, "No hay cupos disponibles suficientes", apierror.From(err).Message)
	assert.Equal(t, 3, f.repo.rows[created.ID].CupoDisponible)

	resp, err = f.svc.ActualizarCupo(ctx, created.ID.String(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CupoDisponible)
}

func TestTallerActualizarCupo_ReportsStoredValue(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()
	created, err := f.svc.Crear(ctx, f.req)
	require.NoError(t, err)

	// A concurrent booking of 3 lands between the read and the reservation.
	f.repo.antesDeReservar = func() { f.repo.rows[created.ID].CupoDisponible -= 3 }
	resp, err := f.svc.ActualizarCupo(ctx, created.ID.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, f.repo.rows[created.ID].CupoDisponible)
	assert.Equal(t, 5, resp.CupoDisponible)
}

func TestTallerActualizarCupo_UnknownID(t *testing.T) {
	f := newTallerFixture(t)
	_, err := f.svc.ActualizarCupo(context.Background(), uuid.NewString(), 1)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestReservarCupo_NeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		disponible := rapid.IntRange(0, 200).Draw(t, "disponible")
		n := rapid.IntRange(1, 300).Draw(t, "n")

		got, err := reservarCupo(disponible, n)
		if n > disponible {
			if err == nil {
				t.Fatalf("reserving %d of %d must fail", n, disponible)
			}
			if got != disponible {
				t.Fatalf("failed reservation changed disponible to %d", got)
			}
			return
		}
		if err != nil || got != disponible-n {
			t.Fatalf("reserving %d of %d: got %d, %v", n, disponible, got, err)
		}
	})
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func TestTallerListarProximos_WindowAndCupo(t *testing.T) {
	f := newTallerFixture(t)
	ctx := context.Background()

	_, err := f.svc.Crear(ctx, f.req) // starts in 2 days

	lejano := f.req
	lejano.Nombre = "Festejo"
	lejano.FechaInicio = hoy.Add(10 * 24 * time.Hour)
	lejano.FechaFin = hoy.Add(40 * 24 * time.Hour)
	_, err2 := f.svc.Crear(ctx, lejano)

	lleno := f.req
	lleno.Nombre = "Huayno"
	lleno.CupoTotal = 1
	creadoLleno, err3 := f.svc.Crear(ctx, lleno)
	require.NoError(t, err)
	require.NoError(t, err2)
	require.NoError(t, err3)
	_, err = f.svc.ActualizarCupo(ctx, creadoLleno.ID.String(), 1)
	require.NoError(t, err)

	list, err := f.svc.ListarProximos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Marinera norteña", list[0].Nombre)
	assert.True(t, f.repo.ultimoFiltro.SoloConCupo)
	assert.Equal(t, hoy.Add(ventanaProximos), *f.repo.ultimoFiltro.InicioHasta)
}

func TestTallerFiltrar_IgnoresMalformedValues(t *testing.T) {
	f := newTallerFixture(t)

	_, err := f.svc.Filtrar(context.Background(), dto.TallerFiltro{
		IDCategoria: "nope",
		Estado:      "todos",
		FechaInicio: "2024-06-01",
		FechaFin:    "mañana",
	})
	require.NoError(t, err)
	got := f.repo.ultimoFiltro
	assert.Nil(t, got.CategoriaID)
	assert.Empty(t, got.Estado)
	require.NotNil(t, got.InicioDesde)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *got.InicioDesde)
	assert.Nil(t, got.InicioHasta)
}

func TestTallerListarPorProfesor_BadID(t *testing.T) {
	f := newTallerFixture(t)
	_, err := f.svc.ListarPorProfesor(context.Background(), "prof-1")
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))

	list, err := f.svc.ListarPorProfesor(context.Background(), f.profesor.ID.String())
	require.NoError(t, err)
	assert.NotNil(t, list)
}
