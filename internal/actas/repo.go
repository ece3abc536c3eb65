package actas

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"actas-equipos/internal/glpi"

	"gorm.io/gorm"
)

// Asociacion vincula un acta con un activo GLPI concreto.
type Asociacion struct {
	Itemtype glpi.TipoEquipo
	ItemsID  int
}

// DatosActa son los datos de entrada para crear un acta.
type DatosActa struct {
	GlpiUsersID        int
	Observaciones      string
	EntregadoPorNombre string
	EntregadoPorCedula string
	EntregadoPorCargo  string
	EntregadoPorFirma  string // data-URL base64, opcional
	RecibidoPorCedula  string
	RecibidoPorCargo   string
	RecibidoPorFirma   string // data-URL base64, opcional
	Equipos            []Asociacion
}

// ActaResumen es una fila del listado del dashboard.
type ActaResumen struct {
	ID                 uint
	CodigoActa         string
	FechaElaboracion   time.Time
	UsuarioRecibe      string
	EntregadoPorNombre string
}

// ActaDetalle es un acta con los datos de presentación del usuario que
// recibe y, cuando se pide el detalle completo, sus equipos asociados.
//
// Equipos es una referencia viva, no una instantánea: se re-deriva del
// inventario GLPI en cada lectura, así que refleja el estado actual de
// cada activo y no el que tenía al crearse el acta. Cualquier capa de
// caché que se agregue encima rompería ese contrato.
type ActaDetalle struct {
	Acta
	UsuarioRecibeNombre    string
	UsuarioRecibeUbicacion string
	UsuarioRecibeTelefono  string
	UsuarioRecibeCelular   string
	Equipos                []glpi.Equipo
}

// Repositorio persiste actas y sus asociaciones contra el mismo almacén
// que aloja el inventario GLPI.
type Repositorio struct {
	db         *gorm.DB
	inventario *glpi.Inventario
}

func NuevoRepositorio(db *gorm.DB, inventario *glpi.Inventario) *Repositorio {
	return &Repositorio{db: db, inventario: inventario}
}

// ParsearTokenEquipo interpreta un token "itemtype|items_id" del
// formulario. Cada token mal formado se rechaza por separado; nunca se
// descarta el envío completo en silencio.
func ParsearTokenEquipo(token string) (Asociacion, error) {
	partes := strings.SplitN(token, "|", 2)
	if len(partes) != 2 {
		return Asociacion{}, &ErrorValidacion{Campo: "equipos", Motivo: fmt.Sprintf("token sin separador: %q", token)}
	}
	tipo := glpi.TipoEquipo(strings.TrimSpace(partes[0]))
	if _, err := glpi.Resolver(tipo); err != nil {
		return Asociacion{}, &ErrorValidacion{Campo: "equipos", Motivo: fmt.Sprintf("itemtype desconocido en %q", token)}
	}
	id, err := strconv.Atoi(strings.TrimSpace(partes[1]))
	if err != nil || id <= 0 {
		return Asociacion{}, &ErrorValidacion{Campo: "equipos", Motivo: fmt.Sprintf("items_id inválido en %q", token)}
	}
	return Asociacion{Itemtype: tipo, ItemsID: id}, nil
}

// Crear persiste el acta y sus asociaciones como una unidad atómica:
// INSERT del acta, UPDATE con el código ACE-{id} (el id no se conoce
// antes del primer INSERT) y carga de las asociaciones. Cualquier fallo
// revierte todo: no queda acta, ni código, ni asociaciones parciales.
func (r *Repositorio) Crear(ctx context.Context, datos DatosActa) (*Acta, error) {
	if err := validar(datos); err != nil {
		return nil, err
	}

	acta := Acta{
		GlpiUsersID:        datos.GlpiUsersID,
		Observaciones:      datos.Observaciones,
		EntregadoPorNombre: datos.EntregadoPorNombre,
		EntregadoPorCedula: datos.EntregadoPorCedula,
		EntregadoPorCargo:  datos.EntregadoPorCargo,
		EntregadoPorFirma:  datos.EntregadoPorFirma,
		RecibidoPorCedula:  datos.RecibidoPorCedula,
		RecibidoPorCargo:   datos.RecibidoPorCargo,
		RecibidoPorFirma:   datos.RecibidoPorFirma,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&acta).Error; err != nil {
			return fmt.Errorf("insertar acta: %w", err)
		}

		acta.CodigoActa = fmt.Sprintf("ACE-%d", acta.ID)
		if err := tx.Model(&Acta{}).Where("id = ?", acta.ID).
			Update("codigo_acta", acta.CodigoActa).Error; err != nil {
			return fmt.Errorf("asignar código: %w", err)
		}

		if len(datos.Equipos) > 0 {
			filas := make([]ActaEquipo, 0, len(datos.Equipos))
			for _, a := range datos.Equipos {
				filas = append(filas, ActaEquipo{
					ActasID:  acta.ID,
					Itemtype: string(a.Itemtype),
					ItemsID:  a.ItemsID,
				})
			}
			if err := tx.Create(&filas).Error; err != nil {
				return fmt.Errorf("asociar equipos: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, &ErrorEscritura{Op: "crear acta", Err: err}
	}

	return &acta, nil
}

// ObtenerPorID devuelve el acta con los datos de presentación del usuario
// que recibe, o nil si no existe.
func (r *Repositorio) ObtenerPorID(ctx context.Context, id uint) (*ActaDetalle, error) {
	var acta Acta
	err := r.db.WithContext(ctx).First(&acta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &ErrorEscritura{Op: fmt.Sprintf("leer acta %d", id), Err: err}
	}

	detalle := ActaDetalle{Acta: acta}

	var u struct {
		Realname  *string
		Firstname *string
		Phone     *string
		Mobile    *string
		Ubicacion *string
	}
	err = r.db.WithContext(ctx).
		Table("glpi_users AS u").
		Select(`u.realname, u.firstname, u.phone, u.mobile,
			ubicacion.completename AS ubicacion`).
		Joins("LEFT JOIN glpi_locations AS ubicacion ON u.locations_id = ubicacion.id").
		Where("u.id = ?", acta.GlpiUsersID).
		Scan(&u).Error
	if err != nil {
		return nil, &ErrorEscritura{Op: fmt.Sprintf("leer usuario del acta %d", id), Err: err}
	}
	detalle.UsuarioRecibeNombre = glpi.NombreCompleto(deref(u.Realname), deref(u.Firstname))
	detalle.UsuarioRecibeUbicacion = deref(u.Ubicacion)
	detalle.UsuarioRecibeTelefono = deref(u.Phone)
	detalle.UsuarioRecibeCelular = deref(u.Mobile)

	return &detalle, nil
}

// ObtenerDetalle compone ObtenerPorID con la resolución de equipos. Es la
// entrada tanto de la vista de detalle como del generador de PDF.
func (r *Repositorio) ObtenerDetalle(ctx context.Context, id uint) (*ActaDetalle, error) {
	detalle, err := r.ObtenerPorID(ctx, id)
	if err != nil || detalle == nil {
		return detalle, err
	}
	equipos, err := r.inventario.EquiposDeActa(ctx, id)
	if err != nil {
		return nil, err
	}
	detalle.Equipos = equipos
	return detalle, nil
}

// Listar devuelve las actas más recientes para el dashboard.
func (r *Repositorio) Listar(ctx context.Context) ([]ActaResumen, error) {
	var filas []struct {
		ID                 uint
		CodigoActa         string
		FechaElaboracion   time.Time
		Realname           *string
		Firstname          *string
		EntregadoPorNombre string
	}
	err := r.db.WithContext(ctx).
		Table("actas AS a").
		Select(`a.id, a.codigo_acta, a.fecha_elaboracion,
			u.realname, u.firstname, a.entregado_por_nombre`).
		Joins("LEFT JOIN glpi_users AS u ON a.glpi_users_id = u.id").
		Order("a.fecha_elaboracion DESC").
		Limit(100).
		Scan(&filas).Error
	if err != nil {
		return nil, &ErrorEscritura{Op: "listar actas", Err: err}
	}

	resumen := make([]ActaResumen, 0, len(filas))
	for _, f := range filas {
		resumen = append(resumen, ActaResumen{
			ID:                 f.ID,
			CodigoActa:         f.CodigoActa,
			FechaElaboracion:   f.FechaElaboracion,
			UsuarioRecibe:      glpi.NombreCompleto(deref(f.Realname), deref(f.Firstname)),
			EntregadoPorNombre: f.EntregadoPorNombre,
		})
	}
	return resumen, nil
}

func validar(datos DatosActa) error {
	if datos.GlpiUsersID <= 0 {
		return &ErrorValidacion{Campo: "glpi_users_id", Motivo: "usuario que recibe obligatorio"}
	}
	if strings.TrimSpace(datos.EntregadoPorNombre) == "" {
		return &ErrorValidacion{Campo: "entregado_por_nombre", Motivo: "nombre de quien entrega obligatorio"}
	}
	for _, a := range datos.Equipos {
		if _, err := glpi.Resolver(a.Itemtype); err != nil {
			return &ErrorValidacion{Campo: "equipos", Motivo: fmt.Sprintf("itemtype desconocido: %q", string(a.Itemtype))}
		}
		if a.ItemsID <= 0 {
			return &ErrorValidacion{Campo: "equipos", Motivo: fmt.Sprintf("items_id inválido: %d", a.ItemsID)}
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
