package service

import (
	"context"
	"testing"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfesorCRUD(t *testing.T) {
	svc := NewProfesorService(newProfesorStub())
	ctx := context.Background()

	p, err := svc.Crear(ctx, dto.CrearProfesorRequest{Nombre: "Miguel Ccori", Especialidad: strPtr("Charango")})
	require.NoError(t, err)

	upd, err := svc.Actualizar(ctx, p.ID.String(), dto.ActualizarProfesorRequest{Nombre: strPtr("Miguel Ángel Ccori")})
	require.NoError(t, err)
	assert.Equal(t, "Miguel Ángel Ccori", upd.Nombre)
	require.NotNil(t, upd.Especialidad)
	assert.Equal(t, "Charango", *upd.Especialidad)

	resp, err := svc.Eliminar(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Profesor eliminado correctamente", resp.Message)

	_, err = svc.ObtenerPorID(ctx, p.ID.String())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestActividadEliminar_Messages(t *testing.T) {
	svc := NewActividadService(newActividadStub())
	ctx := context.Background()

	_, err := svc.Eliminar(ctx, "x")
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
	_, err = svc.Eliminar(ctx, uuid.NewString())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))

	a, err := svc.Crear(ctx, dto.CrearActividadRequest{Nombre: "Pasacalle"})
	require.NoError(t, err)
	resp, err := svc.Eliminar(ctx, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Actividad eliminada correctamente", resp.Message)
}

func TestPremioCrear(t *testing.T) {
	svc := NewPremioService(newPremioStub())
	fecha := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)

	p, err := svc.Crear(context.Background(), dto.CrearPremioRequest{Titulo: "Mejor elenco 2023", Fecha: fecha})
	require.NoError(t, err)
	assert.Equal(t, fecha, p.Fecha)

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
