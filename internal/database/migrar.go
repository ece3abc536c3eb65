package database

import (
	"actas-equipos/internal/actas"

	"gorm.io/gorm"
)

// Migrar crea las tablas propias de la aplicación. Las tablas glpi_* son
// de GLPI y no se tocan: esta aplicación sólo las lee.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(
		&actas.Acta{},
		&actas.ActaEquipo{},
		&actas.Configuracion{},
	)
}
