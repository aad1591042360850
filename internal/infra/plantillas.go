package infra

// plantillas.go renders the HTML bodies of the inscripción emails.

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"amaru/internal/model"
)

const asuntoInscripcionCreada = "Seguimiento de Inscripción - Amaru Producciones"

// DatosCorreo is the data every inscripción email template receives.
type DatosCorreo struct {
	InscripcionID string
	Email         string
	Nombre        string
	Estado        string
	NumeroPago    string
}

// EstadoTexto returns the wording used in subject and banner for an estado.
func EstadoTexto(estado string) string {
	switch estado {
	case model.InscripcionAprobado:
		return "APROBADA"
	case model.InscripcionRechazado:
		return "RECHAZADA"
	default:
		return "PENDIENTE"
	}
}

func colorEstado(estado string) string {
	switch estado {
	case model.InscripcionAprobado:
		return "#27ae60"
	case model.InscripcionRechazado:
		return "#e74c3c"
	default:
		return "#f39c12"
	}
}

func whatsappURL(numero, inscripcionID string) string {
	texto := "Hola, quiero enviar mi comprobante de pago para la inscripción " + inscripcionID
	return fmt.Sprintf("https://wa.me/%s?text=%s", numero, url.QueryEscape(texto))
}

const estilos = `
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #2c3e50; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background: #f9f9f9; }
.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
.btn { display: inline-block; padding: 10px 20px; background: #3498db; color: white; text-decoration: none; border-radius: 5px; }
`

var tplInscripcionCreada = template.Must(template.New("creada").Parse(`<!DOCTYPE html>
<html>
<head><style>{{.Estilos}}
.estado { padding: 10px; background: {{.Color}}; color: white; text-align: center; border-radius: 5px; }
</style></head>
<body>
<div class="container">
  <div class="header"><h1>Amaru Producciones</h1></div>
  <div class="content">
    <h2>¡Bienvenido{{if .Nombre}} {{.Nombre}}{{end}}!</h2>
    <p>Gracias por tu inscripción. Tu solicitud ha sido recibida exitosamente.</p>
    <div class="estado"><strong>Estado actual de tu inscripción:</strong> {{.EstadoTexto}}</div>
    <p>En breve se actualizará el estado de tu inscripción.</p>
    <p><strong>Importante:</strong> Asegúrate de haber enviado tu pago al número: <strong>{{.NumeroPago}}</strong></p>
    <p style="text-align: center;">
      <a href="{{.WhatsApp}}" class="btn" target="_blank">Click aquí para enviar tu comprobante de pago</a>
    </p>
    <p>Si ya realizaste el pago, por favor envía tu comprobante por WhatsApp para acelerar el proceso.</p>
  </div>
  <div class="footer">
    <p>© Amaru Producciones. Todos los derechos reservados.</p>
    <p>ID de inscripción: {{.InscripcionID}}</p>
  </div>
</div>
</body>
</html>`))

var tplEstadoActualizado = template.Must(template.New("estado").Parse(`<!DOCTYPE html>
<html>
<head><style>{{.Estilos}}
.estado { padding: 15px; background: {{.Color}}; color: white; text-align: center; border-radius: 5px; font-size: 18px; }
</style></head>
<body>
<div class="container">
  <div class="header"><h1>Amaru Producciones</h1></div>
  <div class="content">
    <h2>Actualización de tu Inscripción</h2>
    <p>El estado de tu inscripción ha sido actualizado:</p>
    <div class="estado"><strong>NUEVO ESTADO: {{.EstadoTexto}}</strong></div>
    {{- if eq .Estado "aprobado"}}
    <p>¡Felicidades! Tu inscripción ha sido aprobada. Adjuntamos tu constancia de inscripción.</p>
    {{- else if eq .Estado "rechazado"}}
    <p>Lamentablemente tu inscripción no ha sido aprobada. Si crees que hay un error, por favor contáctanos.</p>
    {{- else}}
    <p>Tu inscripción está nuevamente en revisión. Te avisaremos cuando cambie su estado.</p>
    {{- end}}
    <p>Para cualquier consulta, no dudes en contactarnos.</p>
  </div>
  <div class="footer">
    <p>© Amaru Producciones. Todos los derechos reservados.</p>
    <p>ID de inscripción: {{.InscripcionID}}</p>
  </div>
</div>
</body>
</html>`))

type vistaCorreo struct {
	DatosCorreo
	EstadoTexto string
	Color       template.CSS
	Estilos     template.CSS
	WhatsApp    template.URL
}

func render(t *template.Template, d DatosCorreo) (string, error) {
	v := vistaCorreo{
		DatosCorreo: d,
		EstadoTexto: EstadoTexto(d.Estado),
		Color:       template.CSS(colorEstado(d.Estado)),
		Estilos:     template.CSS(estilos),
		WhatsApp:    template.URL(whatsappURL(d.NumeroPago, d.InscripcionID)),
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("plantilla %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// RenderInscripcionCreada returns subject and HTML body of the confirmation email.
func RenderInscripcionCreada(d DatosCorreo) (string, string, error) {
	html, err := render(tplInscripcionCreada, d)
	return asuntoInscripcionCreada, html, err
}

// RenderEstadoActualizado returns subject and HTML body of the estado change email.
func RenderEstadoActualizado(d DatosCorreo) (string, string, error) {
	html, err := render(tplEstadoActualizado, d)
	return "Actualización de Estado - Inscripción " + EstadoTexto(d.Estado), html, err
}
