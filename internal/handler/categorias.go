package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Crear POST /v1/categorias
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

// Listar GET /v1/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarActivas GET /v1/categorias/activas
func (h *CategoriasHandler) ListarActivas(c *gin.Context) {
	resp, err := h.svc.ListarActivas(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarPorEstado GET /v1/categorias/estado/:estado
func (h *CategoriasHandler) ListarPorEstado(c *gin.Context) {
	resp, err := h.svc.ListarPorEstado(c.Request.Context(), c.Param("estado"))
	responder(c, http.StatusOK, resp, err)
}

// ListarPorTipo GET /v1/categorias/tipo/:tipo
func (h *CategoriasHandler) ListarPorTipo(c *gin.Context) {
	resp, err := h.svc.ListarPorTipo(c.Request.Context(), c.Param("tipo"))
	responder(c, http.StatusOK, resp, err)
}

// ListarPorRangoFechas GET /v1/categorias/rango-fechas?inicio=&fin=
func (h *CategoriasHandler) ListarPorRangoFechas(c *gin.Context) {
	resp, err := h.svc.ListarPorRangoFechas(c.Request.Context(), c.Query("inicio"), c.Query("fin"))
	responder(c, http.StatusOK, resp, err)
}

// ObtenerPorID GET /v1/categorias/:id
func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// Actualizar PATCH /v1/categorias/:id
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

// Activar PATCH /v1/categorias/:id/activar
func (h *CategoriasHandler) Activar(c *gin.Context) {
	resp, err := h.svc.Activar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// Desactivar PATCH /v1/categorias/:id/desactivar
func (h *CategoriasHandler) Desactivar(c *gin.Context) {
	resp, err := h.svc.Desactivar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// Eliminar DELETE /v1/categorias/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// ── Subcategorías ────────────────────────────────────────────────────────────

type SubcategoriasHandler struct{ svc service.SubcategoriaService }

func NewSubcategoriasHandler(svc service.SubcategoriaService) *SubcategoriasHandler {
	return &SubcategoriasHandler{svc: svc}
}

func (h *SubcategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *SubcategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarPorCategoria GET /v1/subcategorias/categoria/:id
func (h *SubcategoriasHandler) ListarPorCategoria(c *gin.Context) {
	resp, err := h.svc.ListarPorCategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *SubcategoriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *SubcategoriasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

// CambiarEstado PATCH /v1/subcategorias/:id/estado
func (h *SubcategoriasHandler) CambiarEstado(c *gin.Context) {
	estado, ok := estadoDelBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), estado)
	responder(c, http.StatusOK, resp, err)
}

// ActivarPorCategoria PATCH /v1/subcategorias/categoria/:id/activar
func (h *SubcategoriasHandler) ActivarPorCategoria(c *gin.Context) {
	resp, err := h.svc.ActivarPorCategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// DesactivarPorCategoria PATCH /v1/subcategorias/categoria/:id/desactivar
func (h *SubcategoriasHandler) DesactivarPorCategoria(c *gin.Context) {
	resp, err := h.svc.DesactivarPorCategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *SubcategoriasHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
