package glpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverTiposSoportados(t *testing.T) {
	for _, tipo := range Tipos() {
		d, err := Resolver(tipo)
		require.NoError(t, err, "tipo %s", tipo)
		assert.Equal(t, tipo, d.Tipo)
		assert.NotEmpty(t, d.Tabla)
	}
}

func TestResolverDescriptores(t *testing.T) {
	d, err := Resolver(TipoComputer)
	require.NoError(t, err)
	assert.Equal(t, "glpi_computers", d.Tabla)
	assert.Equal(t, "glpi_computermodels", d.TablaModelo)
	assert.Equal(t, "computermodels_id", d.ColumnaModelo)
	assert.False(t, d.ConsultaPropia)

	// Software y Lines no encajan en la proyección genérica
	for _, tipo := range []TipoEquipo{TipoSoftware, TipoLines} {
		d, err := Resolver(tipo)
		require.NoError(t, err)
		assert.True(t, d.ConsultaPropia, "tipo %s", tipo)
		assert.Empty(t, d.TablaModelo)
	}
}

func TestResolverTipoDesconocido(t *testing.T) {
	for _, tipo := range []TipoEquipo{"Tablet", "", "computer"} {
		_, err := Resolver(tipo)
		assert.ErrorIs(t, err, ErrTipoNoSoportado, "tipo %q", tipo)
	}
}

func TestTiposSonOcho(t *testing.T) {
	assert.Len(t, Tipos(), 8)
}
