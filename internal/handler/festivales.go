package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type FestivalesHandler struct{ svc service.FestivalService }

func NewFestivalesHandler(svc service.FestivalService) *FestivalesHandler {
	return &FestivalesHandler{svc: svc}
}

func (h *FestivalesHandler) Crear(c *gin.Context) {
	var req dto.CrearFestivalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *FestivalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) ListarActivos(c *gin.Context) {
	resp, err := h.svc.ListarActivos(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) ListarProximos(c *gin.Context) {
	resp, err := h.svc.ListarProximos(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarPorTipo GET /v1/festivales/tipo/:tipo (case-insensitive, active only)
func (h *FestivalesHandler) ListarPorTipo(c *gin.Context) {
	resp, err := h.svc.ListarPorTipo(c.Request.Context(), c.Param("tipo"))
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) ListarPorActividad(c *gin.Context) {
	resp, err := h.svc.ListarPorActividad(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarFestivalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) CambiarEstado(c *gin.Context) {
	estado, ok := estadoDelBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), estado)
	responder(c, http.StatusOK, resp, err)
}

func (h *FestivalesHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
