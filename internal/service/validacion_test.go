package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"amaru/internal/apierror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cosa struct{ ID uuid.UUID }

func TestObtener_MapsErrors(t *testing.T) {
	ctx := context.Background()
	missing := func(context.Context, uuid.UUID) (*cosa, error) { return nil, gorm.ErrRecordNotFound }
	broken := func(context.Context, uuid.UUID) (*cosa, error) { return nil, errors.New("db down") }

	_, err := obtener(ctx, missing, "not-a-uuid", "Cosa")
	require.Error(t, err)
	assert.Equal(t, "ID inválido: not-a-uuid", apierror.From(err).Message)

	id := uuid.NewString()
	_, err = obtener(ctx, missing, id, "Cosa")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.Equal(t, "Cosa con ID "+id+" no encontrado", apierror.From(err).Message)

	_, err = obtener(ctx, broken, id, "Cosa")
	require.Error(t, err)
	var typed *apierror.Error
	assert.False(t, errors.As(err, &typed))
}

func TestExiste(t *testing.T) {
	ctx := context.Background()
	found := func(_ context.Context, id uuid.UUID) (*cosa, error) { return &cosa{ID: id}, nil }
	missing := func(context.Context, uuid.UUID) (*cosa, error) { return nil, gorm.ErrRecordNotFound }

	c, ok, err := existe(ctx, found, uuid.New())
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, c)

	_, ok, err = existe(ctx, missing, uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestParseFecha(t *testing.T) {
	d, err := parseFecha("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseFecha("2024-03-15T10:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, 15, d.UTC().Day())
	assert.Equal(t, 15, d.UTC().Hour())

	_, err = parseFecha("15/03/2024")
	assert.Error(t, err)

	assert.Nil(t, parseFechaOpcional(""))
	assert.Nil(t, parseFechaOpcional("ayer"))
	assert.Nil(t, parseIDOpcional("1234"))
	assert.NotNil(t, parseIDOpcional(uuid.NewString()))
}
