package handler

import (
	"net/http"

	"amaru/internal/dto"
	"amaru/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} Envelope
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	responder(c, http.StatusOK, resp, err)
}

// RegistrarSinPassword godoc
// @Summary Registrar usuario sin contraseña
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistrarSinPasswordRequest true "Datos del usuario"
// @Success 201 {object} Envelope
// @Failure 409 {object} apierror.APIError
// @Router /v1/auth/register-sin-password [post]
func (h *AuthHandler) RegistrarSinPassword(c *gin.Context) {
	var req dto.RegistrarSinPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSinPassword(c.Request.Context(), req)
	responder(c, http.StatusCreated, resp, err)
}

// LoginSinPassword POST /v1/auth/login-sin-password
func (h *AuthHandler) LoginSinPassword(c *gin.Context) {
	var req dto.LoginSinPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.LoginSinPassword(c.Request.Context(), req)
	responder(c, http.StatusOK, resp, err)
}

func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	resp, err := h.svc.ListarSinPassword(c.Request.Context(), false)
	responder(c, http.StatusOK, resp, err)
}

func (h *AuthHandler) ListarUsuariosActivos(c *gin.Context) {
	resp, err := h.svc.ListarSinPassword(c.Request.Context(), true)
	responder(c, http.StatusOK, resp, err)
}

func (h *AuthHandler) ObtenerUsuario(c *gin.Context) {
	resp, err := h.svc.ObtenerSinPasswordPorID(c.Request.Context(), c.Param("id"))
	responder(c, http.StatusOK, resp, err)
}
