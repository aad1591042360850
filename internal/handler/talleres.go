package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type TalleresHandler struct{ svc service.TallerService }

func NewTalleresHandler(svc service.TallerService) *TalleresHandler {
	return &TalleresHandler{svc: svc}
}

// Crear godoc
// @Summary Crear taller
// @Tags talleres
// @Accept json
// @Produce json
// @Param body body dto.CrearTallerRequest true "Taller"
// @Success 201 {object} Envelope
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /v1/talleres [post]
func (h *TalleresHandler) Crear(c *gin.Context) {
	var req dto.CrearTallerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *TalleresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) ListarActivos(c *gin.Context) {
	resp, err := h.svc.ListarActivos(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarProximos GET /v1/talleres/proximos
func (h *TalleresHandler) ListarProximos(c *gin.Context) {
	resp, err := h.svc.ListarProximos(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// Filtrar GET /v1/talleres/filtrar?id_categoria=&id_subcategoria=&estado=&fecha_inicio=&fecha_fin=
func (h *TalleresHandler) Filtrar(c *gin.Context) {
	var f dto.TallerFiltro
	if !bindQuery(c, &f) {
		return
	}
	resp, err := h.svc.Filtrar(c.Request.Context(), f)
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) ListarPorSubcategoria(c *gin.Context) {
	resp, err := h.svc.ListarPorSubcategoria(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) ListarPorProfesor(c *gin.Context) {
	resp, err := h.svc.ListarPorProfesor(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTallerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) CambiarEstado(c *gin.Context) {
	estado, ok := estadoDelBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), estado)
	responder(c, http.StatusOK, resp, err)
}

// ActualizarCupo godoc
// @Summary Reservar cupos de un taller
// @Tags talleres
// @Accept json
// @Produce json
// @Param id path string true "ID del taller"
// @Param body body dto.ActualizarCupoRequest true "Cupos a reservar"
// @Success 200 {object} Envelope
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /v1/talleres/{id}/cupo [patch]
func (h *TalleresHandler) ActualizarCupo(c *gin.Context) {
	var req dto.ActualizarCupoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCupo(c.Request.Context(), c.Param("id"), req.CuposReservados)
	responder(c, http.StatusOK, resp, err)
}

func (h *TalleresHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
