package actas

import "time"

// Acta es un acta de entrega de equipos. El código se deriva del id una
// vez persistido (ACE-{id}); nunca se asigna por separado.
type Acta struct {
	ID                 uint      `gorm:"primaryKey"`
	CodigoActa         string    `gorm:"column:codigo_acta;size:20;index"`
	GlpiUsersID        int       `gorm:"column:glpi_users_id;not null"`
	Observaciones      string    `gorm:"type:text"`
	EntregadoPorNombre string    `gorm:"size:255"`
	EntregadoPorCedula string    `gorm:"size:50"`
	EntregadoPorCargo  string    `gorm:"size:255"`
	EntregadoPorFirma  string    `gorm:"type:text"` // data-URL base64, opcional
	RecibidoPorCedula  string    `gorm:"size:50"`
	RecibidoPorCargo   string    `gorm:"size:255"`
	RecibidoPorFirma   string    `gorm:"type:text"` // data-URL base64, opcional
	FechaElaboracion   time.Time `gorm:"column:fecha_elaboracion;autoCreateTime"`
}

func (Acta) TableName() string { return "actas" }

// ActaEquipo asocia un acta con un activo GLPI vía (itemtype, items_id).
// El índice único impide que un mismo activo quede en dos actas: la
// carrera de doble asignación se corta en la base de datos, no sólo en el
// filtro de disponibles.
type ActaEquipo struct {
	ID       uint   `gorm:"primaryKey"`
	ActasID  uint   `gorm:"column:actas_id;not null;index"`
	Itemtype string `gorm:"size:100;not null;uniqueIndex:idx_actas_equipos_item"`
	ItemsID  int    `gorm:"column:items_id;not null;uniqueIndex:idx_actas_equipos_item"`
}

func (ActaEquipo) TableName() string { return "actas_equipos" }

// Configuracion es una entrada clave/valor de la configuración global
// (títulos, texto de responsabilidades, ruta del logo).
type Configuracion struct {
	ID    uint   `gorm:"primaryKey"`
	Clave string `gorm:"size:100;not null;uniqueIndex"`
	Valor string `gorm:"type:text"`
}

func (Configuracion) TableName() string { return "actas_configuracion" }
