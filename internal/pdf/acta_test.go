package pdf_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"actas-equipos/internal/actas"
	"actas-equipos/internal/glpi"
	"actas-equipos/internal/pdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PNG de 1x1 válido, como el que envía el canvas de firmas
const firmaPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func detalleDePrueba(codigo string, equipos []glpi.Equipo) *actas.ActaDetalle {
	modelo := "Latitude 5440"
	if equipos == nil {
		equipos = []glpi.Equipo{
			{ID: 5, Itemtype: glpi.TipoComputer, NumeroInventario: "INV-0005", Serial: "SN5", Modelo: &modelo},
			{ID: 9, Itemtype: glpi.TipoPhone, NumeroInventario: "INV-0009", Serial: "SN9"},
		}
	}
	return &actas.ActaDetalle{
		Acta: actas.Acta{
			ID:                 1,
			CodigoActa:         codigo,
			GlpiUsersID:        1,
			Observaciones:      "Entrega por ingreso de personal.",
			EntregadoPorNombre: "Carlos Ruiz",
			EntregadoPorCedula: "71.234.567",
			EntregadoPorCargo:  "Auxiliar de Sistemas",
			FechaElaboracion:   time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
		},
		UsuarioRecibeNombre:    "García, Ana",
		UsuarioRecibeUbicacion: "Medellín > Of. 805",
		Equipos:                equipos,
	}
}

func TestGenerarActaPDF(t *testing.T) {
	dir := t.TempDir()

	ruta, err := pdf.GenerarActaPDF(detalleDePrueba("ACE-1", nil), "Cuidar el equipo.", nil, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Acta_Entrega_ACE-1.pdf"), ruta)

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerarActaPDFConFirmas(t *testing.T) {
	dir := t.TempDir()
	detalle := detalleDePrueba("ACE-2", nil)
	detalle.EntregadoPorFirma = firmaPNG
	detalle.RecibidoPorFirma = firmaPNG

	_, err := pdf.GenerarActaPDF(detalle, "Cuidar el equipo.", nil, dir)
	require.NoError(t, err)
}

func TestGenerarActaPDFFirmaMalFormada(t *testing.T) {
	// una firma ilegible no tumba el documento: cae a la línea en blanco
	dir := t.TempDir()
	detalle := detalleDePrueba("ACE-3", nil)
	detalle.EntregadoPorFirma = "no-es-un-data-url"

	_, err := pdf.GenerarActaPDF(detalle, "Cuidar el equipo.", nil, dir)
	require.NoError(t, err)
}

func TestGenerarActaPDFTablaLarga(t *testing.T) {
	// suficientes filas para forzar salto de página con reimpresión del
	// encabezado de la tabla
	equipos := make([]glpi.Equipo, 0, 90)
	for i := 1; i <= 90; i++ {
		equipos = append(equipos, glpi.Equipo{
			ID:               i,
			Itemtype:         glpi.TipoPeripheral,
			NumeroInventario: fmt.Sprintf("INV-%04d", i),
			Serial:           fmt.Sprintf("SN-%04d", i),
		})
	}

	dir := t.TempDir()
	ruta, err := pdf.GenerarActaPDF(detalleDePrueba("ACE-4", equipos), "Cuidar el equipo.", nil, dir)
	require.NoError(t, err)

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
