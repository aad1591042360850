package handler

import (
	"fmt"
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type InscripcionesHandler struct{ svc service.InscripcionService }

func NewInscripcionesHandler(svc service.InscripcionService) *InscripcionesHandler {
	return &InscripcionesHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar una inscripción
// @Description Calcula el total, guarda la inscripción y envía el email de seguimiento en segundo plano.
// @Tags inscripciones
// @Accept json
// @Produce json
// @Param body body dto.CrearInscripcionRequest true "Inscripción"
// @Success 201 {object} Envelope
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /v1/inscripciones [post]
func (h *InscripcionesHandler) Crear(c *gin.Context) {
	var req dto.CrearInscripcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *InscripcionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

// ListarPorUsuario GET /v1/inscripciones/usuario/:id
func (h *InscripcionesHandler) ListarPorUsuario(c *gin.Context) {
	resp, err := h.svc.ListarPorUsuario(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// ListarPorEstado GET /v1/inscripciones/estado/:estado
func (h *InscripcionesHandler) ListarPorEstado(c *gin.Context) {
	resp, err := h.svc.ListarPorEstado(c.Request.Context(), c.Param("estado"))
	responder(c, http.StatusOK, resp, err)
}

// Estadisticas GET /v1/inscripciones/estadisticas
func (h *InscripcionesHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *InscripcionesHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *InscripcionesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarInscripcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

// CambiarEstado godoc
// @Summary Cambiar el estado de una inscripción
// @Tags inscripciones
// @Accept json
// @Produce json
// @Param id path string true "ID de la inscripción"
// @Param body body dto.EstadoRequest true "pendiente | aprobado | rechazado"
// @Success 200 {object} Envelope
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /v1/inscripciones/{id}/estado [patch]
func (h *InscripcionesHandler) CambiarEstado(c *gin.Context) {
	estado, ok := estadoDelBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), estado)
	responder(c, http.StatusOK, resp, err)
}

func (h *InscripcionesHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// Constancia GET /v1/inscripciones/:id/constancia, served as a PDF attachment.
func (h *InscripcionesHandler) Constancia(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.svc.Constancia(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="constancia_%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
