package handlers

import (
	"net/http"

	"actas-equipos/internal/glpi"

	"github.com/gin-gonic/gin"
)

// Inicio — inventario general público: conteos por tipo y listado de cada
// tipo de equipo.
func (h *Handler) Inicio(c *gin.Context) {
	ctx := c.Request.Context()

	conteos, err := h.Inventario.ConteoPorTipo(ctx)
	if err != nil {
		errorInterno(c, "conteo de inventario", err)
		return
	}

	inventario := make(map[glpi.TipoEquipo][]glpi.Equipo, len(glpi.Tipos()))
	for _, tipo := range glpi.Tipos() {
		equipos, err := h.Inventario.EquiposPorTipo(ctx, tipo)
		if err != nil {
			errorInterno(c, "inventario por tipo", err)
			return
		}
		inventario[tipo] = equipos
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"titulo":     "Inventario General de Equipos",
		"tipos":      glpi.Tipos(),
		"conteos":    conteos,
		"inventario": inventario,
	})
}
