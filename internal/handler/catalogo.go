package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Profesores ────────────────────────────────────────────────────────────────

type ProfesoresHandler struct{ svc service.ProfesorService }

func NewProfesoresHandler(svc service.ProfesorService) *ProfesoresHandler {
	return &ProfesoresHandler{svc: svc}
}

func (h *ProfesoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProfesorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *ProfesoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *ProfesoresHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *ProfesoresHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProfesorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *ProfesoresHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// ── Actividades ───────────────────────────────────────────────────────────────

type ActividadesHandler struct{ svc service.ActividadService }

func NewActividadesHandler(svc service.ActividadService) *ActividadesHandler {
	return &ActividadesHandler{svc: svc}
}

func (h *ActividadesHandler) Crear(c *gin.Context) {
	var req dto.CrearActividadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *ActividadesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *ActividadesHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *ActividadesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarActividadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *ActividadesHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

// ── Premios ───────────────────────────────────────────────────────────────────

type PremiosHandler struct{ svc service.PremioService }

func NewPremiosHandler(svc service.PremioService) *PremiosHandler {
	return &PremiosHandler{svc: svc}
}

func (h *PremiosHandler) Crear(c *gin.Context) {
	var req dto.CrearPremioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

func (h *PremiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	responder(c, http.StatusOK, resp, err)
}

func (h *PremiosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}

func (h *PremiosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarPremioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *PremiosHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
