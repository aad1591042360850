package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindBadRequest.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusConflict, KindConflict.Status())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.Status())
}

func TestFrom_WrapsUntypedAsBadRequest(t *testing.T) {
	e := From(errors.New("pq: relation does not exist"))
	assert.Equal(t, KindBadRequest, e.Kind)
	assert.Equal(t, "pq: relation does not exist", e.Detail)

	typed := NotFound("Taller con ID %s no encontrado", "x")
	assert.Same(t, typed, From(fmt.Errorf("capa: %w", typed)))
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("dup"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindBadRequest))
}

func TestEnvelope(t *testing.T) {
	body := Conflict("Ya existe").Envelope()
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusConflict, body.StatusCode)
	assert.Equal(t, "Conflict", body.Error)
	assert.Equal(t, "Ya existe", body.Message)
	assert.NotEmpty(t, body.Timestamp)
}

func TestNewValidation(t *testing.T) {
	v := NewValidation(map[string]string{"nombre": "required"})
	assert.Equal(t, http.StatusBadRequest, v.StatusCode)
	assert.Equal(t, "required", v.Fields["nombre"])
}
