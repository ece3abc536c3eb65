package actas_test

import (
	"context"
	"fmt"
	"testing"

	"actas-equipos/internal/actas"
	"actas-equipos/internal/glpi"
	"actas-equipos/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nuevoRepo(t *testing.T) (*actas.Repositorio, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	require.NoError(t, db.Exec(`INSERT INTO glpi_states (id, name) VALUES (1, 'En uso')`).Error)
	testutil.SembrarUsuario(t, db, 1, "García", "Ana", 0)
	return actas.NuevoRepositorio(db, glpi.NuevoInventario(db)), db
}

func TestParsearTokenEquipo(t *testing.T) {
	a, err := actas.ParsearTokenEquipo("Computer|5")
	require.NoError(t, err)
	assert.Equal(t, glpi.TipoComputer, a.Itemtype)
	assert.Equal(t, 5, a.ItemsID)

	casos := []string{"Computer", "Tablet|5", "Computer|", "Computer|cero", "Computer|-1", "|5"}
	for _, token := range casos {
		_, err := actas.ParsearTokenEquipo(token)
		var ev *actas.ErrorValidacion
		assert.ErrorAs(t, err, &ev, "token %q", token)
	}
}

func TestCrearAsignaCodigoDerivadoDelID(t *testing.T) {
	repo, _ := nuevoRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		acta, err := repo.Crear(ctx, actas.DatosActa{
			GlpiUsersID:        1,
			EntregadoPorNombre: "Carlos Ruiz",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ACE-%d", acta.ID), acta.CodigoActa)

		guardada, err := repo.ObtenerPorID(ctx, acta.ID)
		require.NoError(t, err)
		require.NotNil(t, guardada)
		assert.Equal(t, acta.CodigoActa, guardada.CodigoActa)
	}
}

func TestCrearConAsociaciones(t *testing.T) {
	repo, db := nuevoRepo(t)
	ctx := context.Background()

	testutil.SembrarEquipo(t, db, testutil.Equipo{Tabla: "glpi_computers", ID: 5, Nombre: "pc", Estado: 1})
	testutil.SembrarEquipo(t, db, testutil.Equipo{Tabla: "glpi_phones", ID: 9, Nombre: "tel", Estado: 1})

	acta, err := repo.Crear(ctx, actas.DatosActa{
		GlpiUsersID:        1,
		EntregadoPorNombre: "Carlos Ruiz",
		Equipos: []actas.Asociacion{
			{Itemtype: glpi.TipoComputer, ItemsID: 5},
			{Itemtype: glpi.TipoPhone, ItemsID: 9},
		},
	})
	require.NoError(t, err)

	detalle, err := repo.ObtenerDetalle(ctx, acta.ID)
	require.NoError(t, err)
	require.NotNil(t, detalle)
	require.Len(t, detalle.Equipos, 2)

	tipos := map[glpi.TipoEquipo]int{}
	for _, e := range detalle.Equipos {
		tipos[e.Itemtype] = e.ID
	}
	assert.Equal(t, 5, tipos[glpi.TipoComputer])
	assert.Equal(t, 9, tipos[glpi.TipoPhone])
}

func TestCrearEsAtomico(t *testing.T) {
	repo, db := nuevoRepo(t)
	ctx := context.Background()

	testutil.SembrarEquipo(t, db, testutil.Equipo{Tabla: "glpi_computers", ID: 5, Nombre: "pc", Estado: 1})

	primera, err := repo.Crear(ctx, actas.DatosActa{
		GlpiUsersID:        1,
		EntregadoPorNombre: "Carlos Ruiz",
		Equipos:            []actas.Asociacion{{Itemtype: glpi.TipoComputer, ItemsID: 5}},
	})
	require.NoError(t, err)

	// la segunda acta intenta llevarse el mismo equipo: el índice único de
	// actas_equipos revienta la inserción y la transacción entera revierte
	var antes int64
	require.NoError(t, db.Table("actas").Count(&antes).Error)

	_, err = repo.Crear(ctx, actas.DatosActa{
		GlpiUsersID:        1,
		EntregadoPorNombre: "Otra Persona",
		Equipos:            []actas.Asociacion{{Itemtype: glpi.TipoComputer, ItemsID: 5}},
	})
	var ee *actas.ErrorEscritura
	require.ErrorAs(t, err, &ee)

	var despues int64
	require.NoError(t, db.Table("actas").Count(&despues).Error)
	assert.Equal(t, antes, despues, "el acta fallida no debe persistir")

	var asociaciones int64
	require.NoError(t, db.Table("actas_equipos").Count(&asociaciones).Error)
	assert.Equal(t, int64(1), asociaciones)

	// la primera sigue intacta
	detalle, err := repo.ObtenerDetalle(ctx, primera.ID)
	require.NoError(t, err)
	require.Len(t, detalle.Equipos, 1)
}

func TestCrearValida(t *testing.T) {
	repo, _ := nuevoRepo(t)
	ctx := context.Background()

	casos := []actas.DatosActa{
		{EntregadoPorNombre: "Carlos"},                  // sin usuario
		{GlpiUsersID: 1},                                // sin nombre de quien entrega
		{GlpiUsersID: 1, EntregadoPorNombre: "Carlos",   // itemtype desconocido
			Equipos: []actas.Asociacion{{Itemtype: "Tablet", ItemsID: 1}}},
		{GlpiUsersID: 1, EntregadoPorNombre: "Carlos",   // id inválido
			Equipos: []actas.Asociacion{{Itemtype: glpi.TipoComputer, ItemsID: 0}}},
	}
	for i, datos := range casos {
		_, err := repo.Crear(ctx, datos)
		var ev *actas.ErrorValidacion
		assert.ErrorAs(t, err, &ev, "caso %d", i)
	}
}

func TestObtenerPorIDAusente(t *testing.T) {
	repo, _ := nuevoRepo(t)

	detalle, err := repo.ObtenerPorID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, detalle)
}

func TestDetalleReflejaEstadoActual(t *testing.T) {
	repo, db := nuevoRepo(t)
	ctx := context.Background()

	testutil.SembrarUsuario(t, db, 2, "Pérez", "Luis", 0)
	testutil.SembrarEquipo(t, db, testutil.Equipo{Tabla: "glpi_computers", ID: 5, Nombre: "pc", Estado: 1, Usuario: 1})

	acta, err := repo.Crear(ctx, actas.DatosActa{
		GlpiUsersID:        1,
		EntregadoPorNombre: "Carlos Ruiz",
		Equipos:            []actas.Asociacion{{Itemtype: glpi.TipoComputer, ItemsID: 5}},
	})
	require.NoError(t, err)

	detalle, err := repo.ObtenerDetalle(ctx, acta.ID)
	require.NoError(t, err)
	require.NotNil(t, detalle.Equipos[0].UsuarioAsignado)
	assert.Equal(t, "García, Ana", *detalle.Equipos[0].UsuarioAsignado)

	// el acta referencia equipos vivos: un cambio posterior en GLPI se ve
	// en la siguiente lectura
	require.NoError(t, db.Exec(`UPDATE glpi_computers SET users_id = 2 WHERE id = 5`).Error)

	detalle, err = repo.ObtenerDetalle(ctx, acta.ID)
	require.NoError(t, err)
	require.NotNil(t, detalle.Equipos[0].UsuarioAsignado)
	assert.Equal(t, "Pérez, Luis", *detalle.Equipos[0].UsuarioAsignado)
}

func TestListar(t *testing.T) {
	repo, _ := nuevoRepo(t)
	ctx := context.Background()

	a1, err := repo.Crear(ctx, actas.DatosActa{GlpiUsersID: 1, EntregadoPorNombre: "Carlos"})
	require.NoError(t, err)
	a2, err := repo.Crear(ctx, actas.DatosActa{GlpiUsersID: 1, EntregadoPorNombre: "Marta"})
	require.NoError(t, err)

	listado, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, listado, 2)

	codigos := []string{listado[0].CodigoActa, listado[1].CodigoActa}
	assert.ElementsMatch(t, []string{a1.CodigoActa, a2.CodigoActa}, codigos)
	assert.Equal(t, "García, Ana", listado[0].UsuarioRecibe)
}
