package settings_test

import (
	"context"
	"testing"

	"actas-equipos/internal/settings"
	"actas-equipos/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtenerVacio(t *testing.T) {
	store := settings.Nuevo(testutil.DB(t))

	cfg, err := store.Obtener(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestGuardarEsUpsert(t *testing.T) {
	db := testutil.DB(t)
	store := settings.Nuevo(db)
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, settings.ClaveTitulo, "Acta de Entrega"))
	require.NoError(t, store.Guardar(ctx, settings.ClaveResponsabilidades, "Cuidar el equipo."))

	cfg, err := store.Obtener(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acta de Entrega", cfg[settings.ClaveTitulo])

	// la última escritura gana y no duplica la clave
	require.NoError(t, store.Guardar(ctx, settings.ClaveTitulo, "Acta de Entrega v2"))

	cfg, err = store.Obtener(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acta de Entrega v2", cfg[settings.ClaveTitulo])
	assert.Len(t, cfg, 2)

	var filas int64
	require.NoError(t, db.Table("actas_configuracion").Count(&filas).Error)
	assert.Equal(t, int64(2), filas)
}
