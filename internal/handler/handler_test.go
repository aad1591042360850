package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fake service ──────────────────────────────────────────────────────────────

type fakeCategoriaService struct {
	creadas []dto.CrearCategoriaRequest
	err     error
}

func (f *fakeCategoriaService) Crear(_ context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	if f.err != nil {
		return dto.CategoriaResponse{}, f.err
	}
	f.creadas = append(f.creadas, req)
	return dto.CategoriaResponse{ID: uuid.New(), Nombre: req.Nombre, Tipo: req.Tipo, Estado: model.EstadoActivo}, nil
}

func (f *fakeCategoriaService) Listar(context.Context) ([]dto.CategoriaResponse, error) {
	return []dto.CategoriaResponse{}, f.err
}

func (f *fakeCategoriaService) ListarActivas(ctx context.Context) ([]dto.CategoriaResponse, error) {
	return f.Listar(ctx)
}

func (f *fakeCategoriaService) ListarPorEstado(ctx context.Context, _ string) ([]dto.CategoriaResponse, error) {
	return f.Listar(ctx)
}

func (f *fakeCategoriaService) ListarPorTipo(ctx context.Context, _ string) ([]dto.CategoriaResponse, error) {
	return f.Listar(ctx)
}

func (f *fakeCategoriaService) ListarPorRangoFechas(ctx context.Context, _, _ string) ([]dto.CategoriaResponse, error) {
	return f.Listar(ctx)
}

func (f *fakeCategoriaService) ObtenerPorID(_ context.Context, id string) (dto.CategoriaResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dto.CategoriaResponse{}, apierror.BadRequest("ID inválido: %s", id)
	}
	return dto.CategoriaResponse{}, apierror.NotFound("Categoría con ID %s no encontrado", id)
}

func (f *fakeCategoriaService) Actualizar(_ context.Context, _ string, _ dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	return dto.CategoriaResponse{}, f.err
}

func (f *fakeCategoriaService) Activar(_ context.Context, _ string) (dto.CategoriaCascadaResponse, error) {
	return dto.CategoriaCascadaResponse{SubcategoriasAfectadas: 2}, f.err
}

func (f *fakeCategoriaService) Desactivar(_ context.Context, _ string) (dto.CategoriaCascadaResponse, error) {
	return dto.CategoriaCascadaResponse{SubcategoriasAfectadas: 3}, f.err
}

func (f *fakeCategoriaService) Eliminar(_ context.Context, _ string) (dto.MensajeResponse, error) {
	return dto.MensajeResponse{Message: "Categoría eliminada correctamente"}, f.err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func newCategoriasRouter(svc *fakeCategoriaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoriasHandler(svc)
	r.POST("/v1/categorias", h.Crear)
	r.GET("/v1/categorias", h.Listar)
	r.GET("/v1/categorias/:id", h.ObtenerPorID)
	r.PATCH("/v1/categorias/:id", h.Actualizar)
	r.PATCH("/v1/categorias/:id/desactivar", h.Desactivar)
	r.DELETE("/v1/categorias/:id", h.Eliminar)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// ── Envelope ──────────────────────────────────────────────────────────────────

func TestMensajeExito(t *testing.T) {
	cases := []struct{ method, path, want string }{
		{http.MethodPost, "/v1/talleres", "Creado exitosamente"},
		{http.MethodGet, "/v1/talleres", "Obtenido exitosamente"},
		{http.MethodPatch, "/v1/talleres/1", "Actualizado exitosamente"},
		{http.MethodPut, "/v1/talleres/1", "Actualizado exitosamente"},
		{http.MethodDelete, "/v1/talleres/1", "Eliminado exitosamente"},
		{http.MethodPatch, "/v1/categorias/1/activar", "Activado exitosamente"},
		{http.MethodPatch, "/v1/categorias/1/desactivar", "Desactivado exitosamente"},
		{http.MethodPatch, "/v1/inscripciones/1/estado", "Estado cambiado exitosamente"},
		{http.MethodGet, "/v1/categorias/estado/activo", "Obtenido exitosamente"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mensajeExito(tc.method, tc.path), tc.method+" "+tc.path)
	}
}

func TestCrear_Returns201Envelope(t *testing.T) {
	svc := &fakeCategoriaService{}
	w := doJSON(newCategoriasRouter(svc), http.MethodPost, "/v1/categorias",
		dto.CrearCategoriaRequest{Nombre: "Danza", Tipo: "taller"})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Creado exitosamente", env.Message)
	assert.NotEmpty(t, env.Timestamp)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Danza", data["nombre"])
	require.Len(t, svc.creadas, 1)
}

func TestCrear_ValidationErrorUsesJSONFieldNames(t *testing.T) {
	svc := &fakeCategoriaService{}
	w := doJSON(newCategoriasRouter(svc), http.MethodPost, "/v1/categorias",
		dto.CrearCategoriaRequest{Nombre: "D", Tipo: "evento"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "min", body.Fields["nombre"])
	assert.Equal(t, "oneof", body.Fields["tipo"])
	assert.Empty(t, svc.creadas)
}

func TestCrear_MalformedJSON(t *testing.T) {
	w := doJSON(newCategoriasRouter(&fakeCategoriaService{}), http.MethodPost, "/v1/categorias", "{nombre:")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	r := newCategoriasRouter(&fakeCategoriaService{})

	w := doJSON(r, http.MethodGet, "/v1/categorias/no-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/categorias/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "Not Found", body.Error)

	conflict := newCategoriasRouter(&fakeCategoriaService{err: apierror.Conflict("La categoría tiene 2 subcategorías asociadas")})
	w = doJSON(conflict, http.MethodDelete, "/v1/categorias/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUntypedErrorBecomes400WithDetail(t *testing.T) {
	r := newCategoriasRouter(&fakeCategoriaService{err: assert.AnError})
	w := doJSON(r, http.MethodGet, "/v1/categorias", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, assert.AnError.Error(), body.Detail)
}

func TestDesactivar_Message(t *testing.T) {
	w := doJSON(newCategoriasRouter(&fakeCategoriaService{}), http.MethodPatch, "/v1/categorias/"+uuid.NewString()+"/desactivar", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Desactivado exitosamente", decodeEnvelope(t, w).Message)
}

func TestEstadoDelBody_RequiresEstado(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/x/:id/estado", func(c *gin.Context) {
		estado, ok := estadoDelBody(c)
		if ok {
			respond(c, http.StatusOK, estado)
		}
	})

	w := doJSON(r, http.MethodPatch, "/x/1/estado", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/x/1/estado", dto.EstadoRequest{Estado: "aprobado"})
	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "aprobado", env.Data)
	assert.Equal(t, "Estado cambiado exitosamente", env.Message)
}

func TestBindQuery_RejectsUnparsableParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		var q struct {
			Estado string `form:"estado"`
			Limite int    `form:"limite"`
		}
		if bindQuery(c, &q) {
			respond(c, http.StatusOK, q.Estado)
		}
	})

	w := doJSON(r, http.MethodGet, "/x?estado=activo&limite=diez", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Parámetros de consulta inválidos", body.Message)
	assert.NotEmpty(t, body.Detail)

	w = doJSON(r, http.MethodGet, "/x?estado=activo&limite=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "activo", decodeEnvelope(t, w).Data)
}
