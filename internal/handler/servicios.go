package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type ServiciosHandler struct{ svc service.ServicioService }

func NewServiciosHandler(svc service.ServicioService) *ServiciosHandler {
	return &ServiciosHandler{svc: svc}
}

func (h *ServiciosHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *ServiciosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarActivos GET /v1/servicios/activos (404 when none)
func (h *ServiciosHandler) ListarActivos(c *gin.Context) {
	resp, err := h.svc.ListarActivos(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// Filtrar GET /v1/servicios/filtrar?id_categoria=&id_subcategoria=&estado=
func (h *ServiciosHandler) Filtrar(c *gin.Context) {
	var f dto.ServicioFiltro
	if !bindQuery(c, &f) {
		return
	}
	resp, err := h.svc.Filtrar(c.Request.Context(), f)
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) ListarPorCategoria(c *gin.Context) {
	resp, err := h.svc.ListarPorCategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) ListarPorSubcategoria(c *gin.Context) {
	resp, err := h.svc.ListarPorSubcategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) CambiarEstado(c *gin.Context) {
	estado, ok := estadoDelBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), estado)
	responder(c, http.StatusOK, resp, err)
}

func (h *ServiciosHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
