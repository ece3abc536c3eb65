package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"actas-equipos/internal/actas"

	"github.com/jung-kurt/gofpdf"
)

// Membrete fijo de la organización.
const (
	empresaNombre    = "EMPRESA: IVANAGRO S.A."
	empresaNIT       = "NIT: 900.589.605-7"
	empresaDireccion = "DIRECCIÓN: Carrera 50FF # 8 Sur 130, Of. 805, Medellín"
	empresaTelefono  = "TELÉFONO: (604) 444 04 22"
)

// GenerarActaPDF escribe el PDF del acta en dir y devuelve la ruta del
// archivo (Acta_Entrega_{codigo}.pdf). El detalle llega del repositorio:
// equipos vivos, texto de responsabilidades ya resuelto desde la
// configuración.
func GenerarActaPDF(detalle *actas.ActaDetalle, responsabilidades string, cfg map[string]string, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de PDFs: %w", err)
	}

	ruta := filepath.Join(dir, fmt.Sprintf("Acta_Entrega_%s.pdf", detalle.CodigoActa))

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(false, 18)
	doc.AddPage()

	// Título
	titulo := cfg["titulo_acta"]
	if titulo == "" {
		titulo = "ACTA DE ENTREGA DE EQUIPOS"
	}
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, tr(titulo), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 7, tr("Código de Acta: "+detalle.CodigoActa), "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Logo opcional, a la derecha del membrete
	if logo := cfg["logo_path"]; logo != "" {
		if _, err := os.Stat(logo); err == nil {
			doc.ImageOptions(logo, 160, 18, 32, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	// Membrete
	doc.SetFont("Helvetica", "", 10)
	for _, linea := range []string{empresaNombre, empresaNIT, empresaDireccion, empresaTelefono} {
		doc.CellFormat(0, 5, tr(linea), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	// Usuario que recibe
	seccion(doc, tr, "DATOS DEL USUARIO QUE RECIBE:")
	doc.SetFont("Helvetica", "", 10)
	campos := [][2]string{
		{"Nombre", detalle.UsuarioRecibeNombre},
		{"Cédula", detalle.RecibidoPorCedula},
		{"Cargo", detalle.RecibidoPorCargo},
		{"Ubicación", detalle.UsuarioRecibeUbicacion},
		{"Teléfono", detalle.UsuarioRecibeTelefono},
		{"Celular", detalle.UsuarioRecibeCelular},
	}
	for _, c := range campos {
		doc.CellFormat(0, 5, tr(c[0]+": "+oNA(c[1])), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	// Tabla de equipos
	seccion(doc, tr, "LISTA DE EQUIPOS ENTREGADOS:")
	encabezadoTabla(doc, tr)
	doc.SetFont("Helvetica", "", 9)
	for _, e := range detalle.Equipos {
		if doc.GetY() > 255 {
			doc.AddPage()
			encabezadoTabla(doc, tr)
			doc.SetFont("Helvetica", "", 9)
		}
		doc.CellFormat(38, 6, tr(string(e.Itemtype)), "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 6, tr(oNA(e.NumeroInventario)), "1", 0, "L", false, 0, "")
		doc.CellFormat(44, 6, tr(oNA(e.Serial)), "1", 0, "L", false, 0, "")
		doc.CellFormat(52, 6, tr(oNA(strPtr(e.Modelo))), "1", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	// Observaciones
	saltoSiFalta(doc, 30)
	seccion(doc, tr, "OBSERVACIONES:")
	doc.SetFont("Helvetica", "", 10)
	obs := detalle.Observaciones
	if obs == "" {
		obs = "Ninguna."
	}
	doc.MultiCell(0, 5, tr(obs), "", "J", false)
	doc.Ln(3)

	// Responsabilidades
	saltoSiFalta(doc, 30)
	seccion(doc, tr, "RESPONSABILIDADES DEL USUARIO:")
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 5, tr(responsabilidades), "", "J", false)
	doc.Ln(6)

	// Firmas
	saltoSiFalta(doc, 60)
	yFirmas := doc.GetY()
	bloqueFirma(doc, tr, 20, yFirmas, "ENTREGADO POR:",
		detalle.EntregadoPorNombre, detalle.EntregadoPorCedula, detalle.EntregadoPorCargo,
		detalle.EntregadoPorFirma, "firma_entrega")
	bloqueFirma(doc, tr, 115, yFirmas, "RECIBIDO POR:",
		detalle.UsuarioRecibeNombre, detalle.RecibidoPorCedula, detalle.RecibidoPorCargo,
		detalle.RecibidoPorFirma, "firma_recibe")

	doc.SetY(yFirmas + 55)
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 5, tr("Fecha de Elaboración: "+detalle.FechaElaboracion.Format("02/01/2006")), "", 1, "R", false, 0, "")

	if err := doc.OutputFileAndClose(ruta); err != nil {
		return "", fmt.Errorf("escribir PDF %s: %w", ruta, err)
	}
	return ruta, nil
}

func seccion(doc *gofpdf.Fpdf, tr func(string) string, titulo string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, tr(titulo), "", 1, "L", false, 0, "")
	doc.Ln(1)
}

func encabezadoTabla(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(38, 7, tr("Tipo"), "1", 0, "L", true, 0, "")
	doc.CellFormat(40, 7, tr("N° Inventario"), "1", 0, "L", true, 0, "")
	doc.CellFormat(44, 7, tr("Serial"), "1", 0, "L", true, 0, "")
	doc.CellFormat(52, 7, tr("Modelo"), "1", 1, "L", true, 0, "")
}

// bloqueFirma pinta un bloque de firma: datos de la persona y, si hay una
// imagen base64 válida, la firma; si no, una línea en blanco.
func bloqueFirma(doc *gofpdf.Fpdf, tr func(string) string, x, y float64, titulo, nombre, cedula, cargo, firma, nombreImg string) {
	doc.SetXY(x, y)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(75, 5, tr(titulo), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(x, y+6)
	doc.CellFormat(75, 5, tr("Nombre: "+oNA(nombre)), "", 0, "L", false, 0, "")
	doc.SetXY(x, y+12)
	doc.CellFormat(75, 5, tr("Cédula: "+oNA(cedula)), "", 0, "L", false, 0, "")
	doc.SetXY(x, y+18)
	doc.CellFormat(75, 5, tr("Cargo: "+oNA(cargo)), "", 0, "L", false, 0, "")

	if datos, tipoImg, err := decodificarFirma(firma); err == nil {
		opts := gofpdf.ImageOptions{ImageType: tipoImg}
		doc.RegisterImageOptionsReader(nombreImg, opts, bytes.NewReader(datos))
		doc.ImageOptions(nombreImg, x, y+26, 45, 20, false, opts, 0, "")
		return
	}
	doc.SetXY(x, y+32)
	doc.CellFormat(75, 5, "_______________________________", "", 0, "L", false, 0, "")
	doc.SetXY(x, y+38)
	doc.CellFormat(75, 5, "Firma", "", 0, "L", false, 0, "")
}

// decodificarFirma interpreta un data-URL base64 (data:image/png;base64,...).
func decodificarFirma(dataURL string) ([]byte, string, error) {
	if dataURL == "" {
		return nil, "", fmt.Errorf("firma vacía")
	}
	partes := strings.SplitN(dataURL, ",", 2)
	if len(partes) != 2 {
		return nil, "", fmt.Errorf("data-URL mal formado")
	}
	tipoImg := "PNG"
	if strings.Contains(partes[0], "jpeg") || strings.Contains(partes[0], "jpg") {
		tipoImg = "JPG"
	}
	datos, err := base64.StdEncoding.DecodeString(partes[1])
	if err != nil {
		return nil, "", fmt.Errorf("base64 inválido: %w", err)
	}
	return datos, tipoImg, nil
}

// saltoSiFalta abre página nueva cuando no queda alto suficiente.
func saltoSiFalta(doc *gofpdf.Fpdf, alto float64) {
	if doc.GetY()+alto > 279 {
		doc.AddPage()
	}
}

func oNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
