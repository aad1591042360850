package worker

// email_worker.go
// Processes jobs from QueueEmail: renders the inscripción templates and sends
// them through the circuit breaker. Approved inscripciones get the constancia
// PDF attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"amaru/internal/infra"
	"amaru/internal/model"

	"github.com/rs/zerolog/log"
)

// Sender is the outbound mail transport. *infra.Mailer implements it.
type Sender interface {
	Send(to, subject, html string, adjuntos ...infra.Adjunto) error
}

type EmailWorker struct {
	mailer     Sender
	breaker    *infra.CircuitBreaker
	numeroPago string
}

func NewEmailWorker(mailer Sender, breaker *infra.CircuitBreaker, numeroPago string) *EmailWorker {
	return &EmailWorker{mailer: mailer, breaker: breaker, numeroPago: numeroPago}
}

// Process delivers one email job. The returned error is what the pool records
// in the DLQ.
func (w *EmailWorker) Process(_ context.Context, job Job) error {
	var p InscripcionEmail
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return fmt.Errorf("invalid payload: %w", err)
	}
	if p.Email == "" {
		log.Warn().Str("inscripcion_id", p.InscripcionID.String()).Msg("email_worker: empty email, skipping")
		return nil
	}

	datos := infra.DatosCorreo{
		InscripcionID: p.InscripcionID.String(),
		Email:         p.Email,
		Nombre:        p.Nombre,
		Estado:        p.Estado,
		NumeroPago:    w.numeroPago,
	}

	var (
		subject, html string
		adjuntos      []infra.Adjunto
		err           error
	)
	switch job.Type {
	case JobInscripcionCreada:
		subject, html, err = infra.RenderInscripcionCreada(datos)
	case JobEstadoActualizado:
		subject, html, err = infra.RenderEstadoActualizado(datos)
		if err == nil && p.Estado == model.InscripcionAprobado {
			adjuntos = w.constancia(p)
		}
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
	if err != nil {
		return err
	}

	err = w.breaker.Execute(func() error {
		return w.mailer.Send(p.Email, subject, html, adjuntos...)
	})
	if err != nil {
		log.Error().Err(err).
			Str("to", p.Email).
			Str("inscripcion_id", p.InscripcionID.String()).
			Str("job_type", job.Type).
			Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", p.Email).Str("job_type", job.Type).Msg("email_worker: email sent")
	return nil
}

// constancia renders the PDF attachment; a render failure only drops the attachment.
func (w *EmailWorker) constancia(p InscripcionEmail) []infra.Adjunto {
	pdf, err := infra.GenerarConstanciaPDF(p.inscripcion(), w.numeroPago)
	if err != nil {
		log.Warn().Err(err).Str("inscripcion_id", p.InscripcionID.String()).Msg("email_worker: constancia skipped")
		return nil
	}
	return []infra.Adjunto{{
		Nombre:      fmt.Sprintf("constancia_%s.pdf", p.InscripcionID),
		ContentType: "application/pdf",
		Contenido:   pdf,
	}}
}
