package worker

import (
	"context"
	"time"

	"amaru/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Email job types carried in Job.Type on QueueEmail.
const (
	JobInscripcionCreada = "inscripcion_creada"
	JobEstadoActualizado = "estado_actualizado"
)

// InscripcionEmail is the payload of every inscripción email job. It carries
// enough participant data to render the templates and the constancia.
type InscripcionEmail struct {
	InscripcionID    uuid.UUID       `json:"inscripcion_id"`
	Email            string          `json:"email"`
	Nombre           string          `json:"nombre"`
	Apellido         string          `json:"apellido"`
	DNI              string          `json:"dni"`
	Estado           string          `json:"estado"`
	Total            decimal.Decimal `json:"total"`
	Moneda           string          `json:"moneda"`
	FechaInscripcion time.Time       `json:"fecha_inscripcion"`
}

// NuevoInscripcionEmail builds the payload from a stored inscripción.
func NuevoInscripcionEmail(i *model.Inscripcion) InscripcionEmail {
	p := InscripcionEmail{
		InscripcionID:    i.ID,
		Email:            i.Email,
		Estado:           i.Estado,
		Total:            i.Total,
		Moneda:           i.Moneda,
		FechaInscripcion: i.FechaInscripcion,
	}
	if i.Usuario != nil {
		p.Nombre = i.Usuario.Nombre
		p.Apellido = i.Usuario.Apellido
		p.DNI = i.Usuario.DNI
	}
	return p
}

// inscripcion rebuilds the minimal model the constancia renderer needs.
func (p InscripcionEmail) inscripcion() *model.Inscripcion {
	return &model.Inscripcion{
		ID:               p.InscripcionID,
		Email:            p.Email,
		Estado:           p.Estado,
		Total:            p.Total,
		Moneda:           p.Moneda,
		FechaInscripcion: p.FechaInscripcion,
		Usuario: &model.UsuarioSinPassword{
			Nombre:   p.Nombre,
			Apellido: p.Apellido,
			DNI:      p.DNI,
			Email:    p.Email,
		},
	}
}

// Notificador receives inscripción lifecycle events. Implementations must not
// block the caller and must absorb every failure: delivery is best-effort and
// at most once.
type Notificador interface {
	InscripcionCreada(ctx context.Context, p InscripcionEmail)
	EstadoActualizado(ctx context.Context, p InscripcionEmail)
}

// NopNotificador drops every event. NewInscripcionService falls back to it
// when given a nil Notificador.
type NopNotificador struct{}

func (NopNotificador) InscripcionCreada(context.Context, InscripcionEmail) {}
func (NopNotificador) EstadoActualizado(context.Context, InscripcionEmail) {}
