package glpi

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// estadosExcluidos son los states_id de GLPI que representan equipos en
// desecho o archivados; nunca se ofrecen ni se cuentan.
var estadosExcluidos = []int{5, 6}

// Inventario es el motor de consultas sobre el inventario GLPI. Normaliza
// los ocho tipos de activo a la proyección Equipo. No cachea nada: cada
// consulta se recalcula contra la base de datos.
type Inventario struct {
	db *gorm.DB
}

func NuevoInventario(db *gorm.DB) *Inventario {
	return &Inventario{db: db}
}

// filtro restringe una consulta ya armada; el alias de la tabla origen es
// siempre "equipo".
type filtro func(tx *gorm.DB) *gorm.DB

func porID(id int) filtro {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("equipo.id = ?", id)
	}
}

func sinActaAbierta(tipo TipoEquipo) filtro {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("equipo.id NOT IN (SELECT items_id FROM actas_equipos WHERE itemtype = ?)", string(tipo))
	}
}

// EquiposPorTipo devuelve todos los equipos del tipo dado, excluyendo los
// borrados y los estados de desecho/archivo. El orden lo decide la base
// de datos; quien necesite orden debe ordenar por su cuenta.
func (inv *Inventario) EquiposPorTipo(ctx context.Context, tipo TipoEquipo) ([]Equipo, error) {
	return inv.listar(ctx, tipo, nil)
}

// EquipoPorID devuelve un equipo concreto o nil si no existe (o no pasa
// los filtros de exclusión). La ausencia no es un error.
func (inv *Inventario) EquipoPorID(ctx context.Context, tipo TipoEquipo, id int) (*Equipo, error) {
	equipos, err := inv.listar(ctx, tipo, porID(id))
	if err != nil {
		return nil, err
	}
	if len(equipos) == 0 {
		return nil, nil
	}
	e := equipos[0]
	return &e, nil
}

// EquiposDisponibles devuelve los equipos del tipo que aún no figuran en
// ninguna acta. Es el conjunto que se ofrece al armar un acta nueva.
func (inv *Inventario) EquiposDisponibles(ctx context.Context, tipo TipoEquipo) ([]Equipo, error) {
	return inv.listar(ctx, tipo, sinActaAbierta(tipo))
}

// ConteoPorTipo devuelve el total de equipos por tipo con las mismas
// exclusiones que EquiposPorTipo.
func (inv *Inventario) ConteoPorTipo(ctx context.Context) (map[TipoEquipo]int64, error) {
	conteos := make(map[TipoEquipo]int64, len(tipos))
	for _, tipo := range Tipos() {
		d, err := Resolver(tipo)
		if err != nil {
			return nil, err
		}
		var n int64
		if err := inv.base(ctx, d, nil).Count(&n).Error; err != nil {
			return nil, errConsulta(tipo, "conteo", err)
		}
		conteos[tipo] = n
	}
	return conteos, nil
}

// EquiposDeActa re-deriva el detalle completo de cada equipo asociado al
// acta dada. Es una lectura viva, no una instantánea: el acta referencia
// equipos actuales y el detalle refleja su estado de hoy. Asociaciones
// cuyo equipo ya no pasa los filtros se omiten.
func (inv *Inventario) EquiposDeActa(ctx context.Context, actaID uint) ([]Equipo, error) {
	var asociaciones []struct {
		Itemtype string
		ItemsID  int
	}
	err := inv.db.WithContext(ctx).
		Table("actas_equipos").
		Select("itemtype, items_id").
		Where("actas_id = ?", actaID).
		Scan(&asociaciones).Error
	if err != nil {
		return nil, errConsulta("", fmt.Sprintf("asociaciones acta %d", actaID), err)
	}

	equipos := make([]Equipo, 0, len(asociaciones))
	for _, a := range asociaciones {
		e, err := inv.EquipoPorID(ctx, TipoEquipo(a.Itemtype), a.ItemsID)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		e.Itemtype = TipoEquipo(a.Itemtype)
		equipos = append(equipos, *e)
	}
	return equipos, nil
}

// UsuariosActivos devuelve los usuarios GLPI activos para el selector del
// formulario de actas.
func (inv *Inventario) UsuariosActivos(ctx context.Context) ([]Usuario, error) {
	var usuarios []Usuario
	err := inv.db.WithContext(ctx).
		Table("glpi_users").
		Select("id, realname, firstname").
		Where("is_active = 1").
		Order("realname, firstname").
		Scan(&usuarios).Error
	if err != nil {
		return nil, errConsulta("", "usuarios activos", err)
	}
	for i := range usuarios {
		usuarios[i].NombreCompleto = NombreCompleto(usuarios[i].Realname, usuarios[i].Firstname)
	}
	return usuarios, nil
}

// listar despacha al mapeo genérico o al propio según el descriptor.
func (inv *Inventario) listar(ctx context.Context, tipo TipoEquipo, f filtro) ([]Equipo, error) {
	d, err := Resolver(tipo)
	if err != nil {
		return nil, err
	}
	switch d.Tipo {
	case TipoLines:
		return inv.listarLineas(ctx, d, f)
	case TipoSoftware:
		return inv.listarSoftware(ctx, d, f)
	default:
		return inv.listarGenerico(ctx, d, f)
	}
}

// base arma el FROM + WHERE compartido entre listados y conteos.
func (inv *Inventario) base(ctx context.Context, d Descriptor, f filtro) *gorm.DB {
	tx := inv.db.WithContext(ctx).Table(d.Tabla + " AS equipo")

	switch d.Tipo {
	case TipoLines:
		// Las líneas sin grupo o sin ubicación asignada se excluyen por
		// completo: el INNER JOIN las deja fuera.
		tx = tx.
			Joins("INNER JOIN glpi_groups AS grupo ON equipo.groups_id = grupo.id").
			Joins("INNER JOIN glpi_locations AS ubicacion ON equipo.locations_id = ubicacion.id").
			Where("equipo.is_deleted = 0").
			Where("equipo.states_id NOT IN ?", estadosExcluidos)
	case TipoSoftware:
		// glpi_softwares no tiene states_id; sólo aplica el borrado lógico.
		tx = tx.Where("equipo.is_deleted = 0")
	default:
		tx = tx.
			Where("equipo.is_deleted = 0").
			Where("equipo.states_id NOT IN ?", estadosExcluidos)
	}

	if f != nil {
		tx = f(tx)
	}
	return tx
}

// filaEquipo es la fila cruda de la proyección genérica. Todos los campos
// de texto llegan como punteros: GLPI permite NULL casi en todo.
type filaEquipo struct {
	ID                int
	Nombre            *string
	NumeroInventario  *string
	Serial            *string
	Fabricante        *string
	Modelo            *string
	Estado            *string
	Grupo             *string
	Ubicacion         *string
	UsuarioRealname   *string
	UsuarioFirstname  *string
	TecnicoRealname   *string
	TecnicoFirstname  *string
}

func (inv *Inventario) listarGenerico(ctx context.Context, d Descriptor, f filtro) ([]Equipo, error) {
	columnaModelo := "NULL"
	tx := inv.base(ctx, d, f).
		Joins("LEFT JOIN glpi_manufacturers AS fab ON equipo.manufacturers_id = fab.id").
		Joins("LEFT JOIN glpi_states AS estado ON equipo.states_id = estado.id").
		Joins("LEFT JOIN glpi_users AS usuario ON equipo.users_id = usuario.id").
		Joins("LEFT JOIN glpi_locations AS ubicacion ON equipo.locations_id = ubicacion.id").
		Joins("LEFT JOIN glpi_users AS tecnico ON equipo.users_id_tech = tecnico.id")

	if d.TablaModelo != "" {
		tx = tx.Joins(fmt.Sprintf("LEFT JOIN %s AS modelo ON equipo.%s = modelo.id", d.TablaModelo, d.ColumnaModelo))
		columnaModelo = "modelo.name"
	}

	var filas []filaEquipo
	err := tx.Select(fmt.Sprintf(`equipo.id AS id,
		equipo.name AS nombre,
		equipo.otherserial AS numero_inventario,
		equipo.serial AS serial,
		fab.name AS fabricante,
		%s AS modelo,
		estado.name AS estado,
		ubicacion.completename AS ubicacion,
		usuario.realname AS usuario_realname,
		usuario.firstname AS usuario_firstname,
		tecnico.realname AS tecnico_realname,
		tecnico.firstname AS tecnico_firstname`, columnaModelo)).
		Scan(&filas).Error
	if err != nil {
		return nil, errConsulta(d.Tipo, "listar", err)
	}

	equipos := make([]Equipo, 0, len(filas))
	for _, fila := range filas {
		equipos = append(equipos, fila.aEquipo())
	}
	return equipos, nil
}

// listarLineas aplica el mapeo propio de Lines: el número de la línea hace
// de número de inventario y el operador de fabricante.
func (inv *Inventario) listarLineas(ctx context.Context, d Descriptor, f filtro) ([]Equipo, error) {
	var filas []filaEquipo
	err := inv.base(ctx, d, f).
		Joins("LEFT JOIN glpi_lineoperators AS operador ON equipo.lineoperators_id = operador.id").
		Joins("LEFT JOIN glpi_states AS estado ON equipo.states_id = estado.id").
		Joins("LEFT JOIN glpi_users AS usuario ON equipo.users_id = usuario.id").
		Select(`equipo.id AS id,
			equipo.name AS nombre,
			equipo.caller_num AS numero_inventario,
			operador.name AS fabricante,
			estado.name AS estado,
			grupo.name AS grupo,
			ubicacion.completename AS ubicacion,
			usuario.realname AS usuario_realname,
			usuario.firstname AS usuario_firstname`).
		Scan(&filas).Error
	if err != nil {
		return nil, errConsulta(d.Tipo, "listar", err)
	}

	equipos := make([]Equipo, 0, len(filas))
	for _, fila := range filas {
		e := fila.aEquipo()
		if fila.Grupo != nil && *fila.Grupo != "" {
			e.Especificaciones["Grupo"] = *fila.Grupo
		}
		if fila.Fabricante != nil && *fila.Fabricante != "" {
			e.Especificaciones["Operador"] = *fila.Fabricante
		}
		equipos = append(equipos, e)
	}
	return equipos, nil
}

// listarSoftware aplica el mapeo propio de Software: sin serial, sin tabla
// de modelos; el nombre del producto ocupa el lugar del modelo.
func (inv *Inventario) listarSoftware(ctx context.Context, d Descriptor, f filtro) ([]Equipo, error) {
	var filas []filaEquipo
	err := inv.base(ctx, d, f).
		Joins("LEFT JOIN glpi_manufacturers AS fab ON equipo.manufacturers_id = fab.id").
		Joins("LEFT JOIN glpi_locations AS ubicacion ON equipo.locations_id = ubicacion.id").
		Joins("LEFT JOIN glpi_users AS tecnico ON equipo.users_id_tech = tecnico.id").
		Select(`equipo.id AS id,
			equipo.name AS nombre,
			equipo.name AS modelo,
			fab.name AS fabricante,
			ubicacion.completename AS ubicacion,
			tecnico.realname AS tecnico_realname,
			tecnico.firstname AS tecnico_firstname`).
		Scan(&filas).Error
	if err != nil {
		return nil, errConsulta(d.Tipo, "listar", err)
	}

	equipos := make([]Equipo, 0, len(filas))
	for _, fila := range filas {
		equipos = append(equipos, fila.aEquipo())
	}
	return equipos, nil
}

func (fila filaEquipo) aEquipo() Equipo {
	e := Equipo{
		ID:               fila.ID,
		Nombre:           valor(fila.Nombre),
		NumeroInventario: valor(fila.NumeroInventario),
		Serial:           valor(fila.Serial),
		Fabricante:       fila.Fabricante,
		Modelo:           fila.Modelo,
		Estado:           fila.Estado,
		Ubicacion:        fila.Ubicacion,
		UsuarioAsignado:  nombreDe(fila.UsuarioRealname, fila.UsuarioFirstname),
		Tecnico:          nombreDe(fila.TecnicoRealname, fila.TecnicoFirstname),
	}
	e.Especificaciones = armarEspecificaciones(e)
	return e
}

// armarEspecificaciones compone el bloque etiqueta→valor que se muestra en
// el detalle y en el PDF; sólo entran los campos con contenido.
func armarEspecificaciones(e Equipo) map[string]string {
	specs := make(map[string]string)
	agregar := func(etiqueta string, v *string) {
		if v != nil && *v != "" {
			specs[etiqueta] = *v
		}
	}
	agregar("Estado", e.Estado)
	agregar("Usuario asignado", e.UsuarioAsignado)
	agregar("Ubicación", e.Ubicacion)
	agregar("Técnico", e.Tecnico)
	return specs
}

func valor(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nombreDe(realname, firstname *string) *string {
	nombre := NombreCompleto(valor(realname), valor(firstname))
	if nombre == "" {
		return nil
	}
	return &nombre
}

// NombreCompleto arma "apellido, nombre" tolerando campos vacíos. La unión se
// hace aquí y no en SQL para no depender del CONCAT de cada motor.
func NombreCompleto(realname, firstname string) string {
	partes := make([]string, 0, 2)
	if realname != "" {
		partes = append(partes, realname)
	}
	if firstname != "" {
		partes = append(partes, firstname)
	}
	return strings.Join(partes, ", ")
}
