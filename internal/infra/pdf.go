package infra

// pdf.go renders the A4 registration certificate (constancia) with go-pdf/fpdf:
//   - Business header
//   - Participant block (name, DNI, email)
//   - Registration block (id, date, estado, amount)
//   - Payment instructions footer

import (
	"bytes"
	"fmt"

	"amaru/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarConstanciaPDF renders the constancia of an inscripción and returns the
// PDF bytes. i.Usuario is optional; missing participant data prints as "-".
func GenerarConstanciaPDF(i *model.Inscripcion, numeroPago string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	// Core fonts are cp1252; translate accents and ñ.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFillColor(44, 62, 80)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 14, "Amaru Producciones", "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Constancia de Inscripción"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	fila := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW*0.35, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW*0.65, 7, tr(value), "", 1, "L", false, 0, "")
	}
	seccion := func(titulo string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, tr(titulo), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	// ── Participant ──────────────────────────────────────────────────────────
	seccion("Participante")
	nombre, dni := "-", "-"
	if i.Usuario != nil {
		nombre = i.Usuario.Nombre + " " + i.Usuario.Apellido
		dni = i.Usuario.DNI
	}
	fila("Nombre:", nombre)
	fila("DNI:", dni)
	fila("Email:", i.Email)
	pdf.Ln(4)

	// ── Registration ─────────────────────────────────────────────────────────
	seccion("Inscripción")
	fila("ID:", i.ID.String())
	fila("Fecha:", i.FechaInscripcion.Format("02/01/2006 15:04"))
	fila("Estado:", EstadoTexto(i.Estado))
	fila("Total:", fmt.Sprintf("%s %s", i.Moneda, i.Total.StringFixed(2)))
	pdf.Ln(8)

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "I", 9)
	if i.Estado != model.InscripcionAprobado {
		pdf.MultiCell(contentW, 5, tr(fmt.Sprintf(
			"Envía tu comprobante de pago por WhatsApp al %s indicando el ID de inscripción.", numeroPago)),
			"", "L", false)
	} else {
		pdf.MultiCell(contentW, 5, tr("Tu inscripción se encuentra aprobada. Conserva esta constancia."), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render constancia: %w", err)
	}
	return buf.Bytes(), nil
}
