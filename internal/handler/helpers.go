package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"amaru/internal/apierror"
	"amaru/internal/dto"
	"amaru/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gte=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their JSON name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		body := apierror.New(http.StatusBadRequest, "JSON inválido")
		body.Detail = err.Error()
		c.JSON(http.StatusBadRequest, body)
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respondError(c, err)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQuery binds query parameters into dst, writing a 400 on failure.
func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		body := apierror.New(http.StatusBadRequest, "Parámetros de consulta inválidos")
		body.Detail = err.Error()
		c.JSON(http.StatusBadRequest, body)
		return false
	}
	return true
}

// Envelope wraps every successful response.
type Envelope struct {
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
}

// mensajeExito picks the envelope message from the method, with overrides
// for the activar/desactivar/estado mutation endpoints.
func mensajeExito(method, path string) string {
	if method == http.MethodPut || method == http.MethodPatch {
		switch {
		case strings.Contains(path, "/activar"):
			return "Activado exitosamente"
		case strings.Contains(path, "/desactivar"):
			return "Desactivado exitosamente"
		case strings.Contains(path, "/estado"):
			return "Estado cambiado exitosamente"
		}
	}
	switch method {
	case http.MethodPost:
		return "Creado exitosamente"
	case http.MethodGet:
		return "Obtenido exitosamente"
	case http.MethodPut, http.MethodPatch:
		return "Actualizado exitosamente"
	case http.MethodDelete:
		return "Eliminado exitosamente"
	default:
		return "Operación exitosa"
	}
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Data:      data,
		Message:   mensajeExito(c.Request.Method, c.Request.URL.Path),
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// respondError writes the error envelope. Untyped errors are reported as 400
// with the original message in detail, and logged.
func respondError(c *gin.Context, err error) {
	var typed *apierror.Error
	if !errors.As(err, &typed) {
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Err(err).
			Msg("untyped service error")
	}
	e := apierror.From(err)
	c.JSON(e.Kind.Status(), e.Envelope())
}

// responder writes data with status, or the error envelope when err is set.
func responder(c *gin.Context, status int, data interface{}, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, status, data)
}

// estadoDelBody binds the {estado} body shared by every PATCH /:id/estado.
func estadoDelBody(c *gin.Context) (string, bool) {
	var req dto.EstadoRequest
	if !bindAndValidate(c, &req) {
		return "", false
	}
	return req.Estado, true
}
