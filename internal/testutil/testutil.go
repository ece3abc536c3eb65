// Package testutil arma una base sqlite en memoria con el subconjunto
// del esquema GLPI que usan las consultas, más las tablas propias de la
// aplicación.
package testutil

import (
	"fmt"
	"testing"

	"actas-equipos/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// tablas de dispositivos genéricos con su columna de modelo
var tablasGenericas = map[string]string{
	"glpi_computers":         "computermodels_id",
	"glpi_phones":            "phonemodels_id",
	"glpi_networkequipments": "networkequipmentmodels_id",
	"glpi_monitors":          "monitormodels_id",
	"glpi_printers":          "printermodels_id",
	"glpi_peripherals":       "peripheralmodels_id",
}

var tablasModelos = []string{
	"glpi_computermodels",
	"glpi_phonemodels",
	"glpi_networkequipmentmodels",
	"glpi_monitormodels",
	"glpi_printermodels",
	"glpi_peripheralmodels",
}

// DB abre una base en memoria con el esquema completo de pruebas.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for tabla, columnaModelo := range tablasGenericas {
		exec(t, db, fmt.Sprintf(`CREATE TABLE %s (
			id INTEGER PRIMARY KEY,
			name TEXT,
			otherserial TEXT,
			serial TEXT,
			manufacturers_id INTEGER NOT NULL DEFAULT 0,
			%s INTEGER NOT NULL DEFAULT 0,
			states_id INTEGER NOT NULL DEFAULT 0,
			users_id INTEGER NOT NULL DEFAULT 0,
			users_id_tech INTEGER NOT NULL DEFAULT 0,
			locations_id INTEGER NOT NULL DEFAULT 0,
			is_deleted INTEGER NOT NULL DEFAULT 0
		)`, tabla, columnaModelo))
	}
	for _, tabla := range tablasModelos {
		exec(t, db, fmt.Sprintf(`CREATE TABLE %s (id INTEGER PRIMARY KEY, name TEXT)`, tabla))
	}

	exec(t, db, `CREATE TABLE glpi_manufacturers (id INTEGER PRIMARY KEY, name TEXT)`)
	exec(t, db, `CREATE TABLE glpi_states (id INTEGER PRIMARY KEY, name TEXT)`)
	exec(t, db, `CREATE TABLE glpi_groups (id INTEGER PRIMARY KEY, name TEXT)`)
	exec(t, db, `CREATE TABLE glpi_lineoperators (id INTEGER PRIMARY KEY, name TEXT)`)
	exec(t, db, `CREATE TABLE glpi_locations (id INTEGER PRIMARY KEY, name TEXT, completename TEXT)`)
	exec(t, db, `CREATE TABLE glpi_users (
		id INTEGER PRIMARY KEY,
		realname TEXT,
		firstname TEXT,
		phone TEXT,
		mobile TEXT,
		locations_id INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1
	)`)
	exec(t, db, `CREATE TABLE glpi_softwares (
		id INTEGER PRIMARY KEY,
		name TEXT,
		manufacturers_id INTEGER NOT NULL DEFAULT 0,
		locations_id INTEGER NOT NULL DEFAULT 0,
		users_id_tech INTEGER NOT NULL DEFAULT 0,
		is_deleted INTEGER NOT NULL DEFAULT 0
	)`)
	exec(t, db, `CREATE TABLE glpi_lines (
		id INTEGER PRIMARY KEY,
		name TEXT,
		caller_num TEXT,
		caller_name TEXT,
		groups_id INTEGER NOT NULL DEFAULT 0,
		locations_id INTEGER NOT NULL DEFAULT 0,
		lineoperators_id INTEGER NOT NULL DEFAULT 0,
		users_id INTEGER NOT NULL DEFAULT 0,
		states_id INTEGER NOT NULL DEFAULT 0,
		is_deleted INTEGER NOT NULL DEFAULT 0
	)`)

	require.NoError(t, database.Migrar(db))
	return db
}

// Equipo inserta un dispositivo genérico con los valores mínimos.
type Equipo struct {
	Tabla     string
	ID        int
	Nombre    string
	Inv       string
	Serial    string
	Fab       int
	Modelo    int
	Estado    int
	Usuario   int
	Tecnico   int
	Ubicacion int
	Borrado   bool
}

func SembrarEquipo(t *testing.T, db *gorm.DB, e Equipo) {
	t.Helper()
	columnaModelo, ok := tablasGenericas[e.Tabla]
	require.True(t, ok, "tabla desconocida: %s", e.Tabla)

	borrado := 0
	if e.Borrado {
		borrado = 1
	}
	exec(t, db, fmt.Sprintf(`INSERT INTO %s
		(id, name, otherserial, serial, manufacturers_id, %s, states_id, users_id, users_id_tech, locations_id, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, e.Tabla, columnaModelo),
		e.ID, e.Nombre, e.Inv, e.Serial, e.Fab, e.Modelo, e.Estado, e.Usuario, e.Tecnico, e.Ubicacion, borrado)
}

func SembrarUsuario(t *testing.T, db *gorm.DB, id int, realname, firstname string, ubicacion int) {
	t.Helper()
	exec(t, db, `INSERT INTO glpi_users (id, realname, firstname, phone, mobile, locations_id, is_active)
		VALUES (?, ?, ?, '', '', ?, 1)`, id, realname, firstname, ubicacion)
}

func exec(t *testing.T, db *gorm.DB, sql string, args ...any) {
	t.Helper()
	require.NoError(t, db.Exec(sql, args...).Error)
}
