package glpi

import (
	"errors"
	"fmt"
)

// TipoEquipo identifica una de las ocho categorías de activos que maneja
// el sistema. El valor coincide con el itemtype de GLPI.
type TipoEquipo string

const (
	TipoComputer         TipoEquipo = "Computer"
	TipoPhone            TipoEquipo = "Phone"
	TipoNetworkEquipment TipoEquipo = "NetworkEquipment"
	TipoMonitor          TipoEquipo = "Monitor"
	TipoPrinter          TipoEquipo = "Printer"
	TipoPeripheral       TipoEquipo = "Peripheral"
	TipoSoftware         TipoEquipo = "Software"
	TipoLines            TipoEquipo = "Lines"
)

// ErrTipoNoSoportado se devuelve ante un itemtype fuera del conjunto fijo,
// siempre antes de tocar la base de datos.
var ErrTipoNoSoportado = errors.New("tipo de equipo no soportado")

// Descriptor describe cómo se consulta un tipo de equipo: tabla origen,
// tabla de modelos (si existe) y si requiere una consulta propia en lugar
// de la proyección genérica de dispositivos.
type Descriptor struct {
	Tipo           TipoEquipo
	Tabla          string
	TablaModelo    string // vacío cuando el tipo no tiene tabla de modelos
	ColumnaModelo  string // FK hacia la tabla de modelos
	ConsultaPropia bool   // Software y Lines no encajan en la proyección genérica
}

var registro = map[TipoEquipo]Descriptor{
	TipoComputer:         {Tipo: TipoComputer, Tabla: "glpi_computers", TablaModelo: "glpi_computermodels", ColumnaModelo: "computermodels_id"},
	TipoPhone:            {Tipo: TipoPhone, Tabla: "glpi_phones", TablaModelo: "glpi_phonemodels", ColumnaModelo: "phonemodels_id"},
	TipoNetworkEquipment: {Tipo: TipoNetworkEquipment, Tabla: "glpi_networkequipments", TablaModelo: "glpi_networkequipmentmodels", ColumnaModelo: "networkequipmentmodels_id"},
	TipoMonitor:          {Tipo: TipoMonitor, Tabla: "glpi_monitors", TablaModelo: "glpi_monitormodels", ColumnaModelo: "monitormodels_id"},
	TipoPrinter:          {Tipo: TipoPrinter, Tabla: "glpi_printers", TablaModelo: "glpi_printermodels", ColumnaModelo: "printermodels_id"},
	TipoPeripheral:       {Tipo: TipoPeripheral, Tabla: "glpi_peripherals", TablaModelo: "glpi_peripheralmodels", ColumnaModelo: "peripheralmodels_id"},
	TipoSoftware:         {Tipo: TipoSoftware, Tabla: "glpi_softwares", ConsultaPropia: true},
	TipoLines:            {Tipo: TipoLines, Tabla: "glpi_lines", ConsultaPropia: true},
}

// orden fijo para dashboards y formularios
var tipos = []TipoEquipo{
	TipoComputer,
	TipoPhone,
	TipoNetworkEquipment,
	TipoMonitor,
	TipoPrinter,
	TipoPeripheral,
	TipoSoftware,
	TipoLines,
}

// Resolver devuelve el descriptor del tipo dado o ErrTipoNoSoportado.
func Resolver(tipo TipoEquipo) (Descriptor, error) {
	d, ok := registro[tipo]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrTipoNoSoportado, string(tipo))
	}
	return d, nil
}

// Tipos devuelve los ocho tipos soportados en orden de presentación.
func Tipos() []TipoEquipo {
	out := make([]TipoEquipo, len(tipos))
	copy(out, tipos)
	return out
}
