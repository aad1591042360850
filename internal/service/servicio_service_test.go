package service

import (
	"context"
	"testing"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServicioFixture() (ServicioService, *stubServicioRepo, *stubCategoriaRepo) {
	subs := newStubSubcategoriaRepo()
	cats := newStubCategoriaRepo(subs)
	repo := newStubServicioRepo()
	return NewServicioService(repo, cats, subs), repo, cats
}

func TestServicioCrear_Defaults(t *testing.T) {
	svc, _, _ := newServicioFixture()

	resp, err := svc.Crear(context.Background(), dto.CrearServicioRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Servicio sin título", resp.Titulo)
	assert.Equal(t, "", resp.Descripcion)
	assert.Equal(t, "", resp.ImagenURL)
	assert.Equal(t, model.EstadoActivo, resp.Estado)
	assert.Nil(t, resp.IDCategoria)
}

func TestServicioCrear_References(t *testing.T) {
	svc, _, cats := newServicioFixture()
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CrearServicioRequest{IDCategoria: strPtr("42")})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))

	_, err = svc.Crear(ctx, dto.CrearServicioRequest{IDCategoria: strPtr(uuid.NewString())})
	require.Error(t, err)
	assert.Equal(t, "La categoría especificada no existe", apierror.From(err).Message)

	cat := &model.Categoria{Nombre: "Sonido", Tipo: model.TipoServicio, Estado: model.EstadoActivo}
	require.NoError(t, cats.Crear(ctx, cat))
	resp, err := svc.Crear(ctx, dto.CrearServicioRequest{Titulo: strPtr("Alquiler de equipos"), IDCategoria: strPtr(cat.ID.String())})
	require.NoError(t, err)
	require.NotNil(t, resp.IDCategoria)
	assert.Equal(t, cat.ID, *resp.IDCategoria)
}

func TestServicioListarActivos_EmptyIsNotFound(t *testing.T) {
	svc, _, _ := newServicioFixture()
	ctx := context.Background()

	_, err := svc.ListarActivos(ctx)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.Equal(t, "No hay servicios activos disponibles", apierror.From(err).Message)

	_, err = svc.Crear(ctx, dto.CrearServicioRequest{Titulo: strPtr("Fotografía")})
	require.NoError(t, err)
	list, err := svc.ListarActivos(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestServicioFiltrar_DropsInvalidValues(t *testing.T) {
	svc, repo, _ := newServicioFixture()
	sub := uuid.New()

	_, err := svc.Filtrar(context.Background(), dto.ServicioFiltro{
		IDCategoria:    "invalid",
		IDSubcategoria: sub.String(),
		Estado:         "archivado",
	})
	require.NoError(t, err)
	assert.Nil(t, repo.ultimoFiltro.CategoriaID)
	require.NotNil(t, repo.ultimoFiltro.SubcategoriaID)
	assert.Equal(t, sub, *repo.ultimoFiltro.SubcategoriaID)
	assert.Empty(t, repo.ultimoFiltro.Estado)
}

func TestServicioCambiarEstadoYEliminar(t *testing.T) {
	svc, _, _ := newServicioFixture()
	ctx := context.Background()
	s, err := svc.Crear(ctx, dto.CrearServicioRequest{})
	require.NoError(t, err)

	_, err = svc.CambiarEstado(ctx, s.ID.String(), "borrador")
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))

	resp, err := svc.CambiarEstado(ctx, s.ID.String(), model.EstadoInactivo)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoInactivo, resp.Estado)

	_, err = svc.Eliminar(ctx, s.ID.String())
	require.NoError(t, err)
	_, err = svc.Eliminar(ctx, s.ID.String())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
