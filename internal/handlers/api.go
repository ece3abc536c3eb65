package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"actas-equipos/internal/glpi"
	"actas-equipos/internal/logs"

	"github.com/gin-gonic/gin"
)

// APIEquiposPorTipo — GET /admin/api/equipos/:tipo — lista normalizada en
// JSON; la consume el formulario de actas vía AJAX.
func (h *Handler) APIEquiposPorTipo(c *gin.Context) {
	tipo := glpi.TipoEquipo(c.Param("tipo"))

	equipos, err := h.Inventario.EquiposPorTipo(c.Request.Context(), tipo)
	if err != nil {
		responderErrorAPI(c, tipo, err)
		return
	}
	c.JSON(http.StatusOK, equipos)
}

// APIEquiposDisponibles — equipos del tipo que aún no figuran en ninguna
// acta; es el conjunto que se ofrece al armar un acta nueva.
func (h *Handler) APIEquiposDisponibles(c *gin.Context) {
	tipo := glpi.TipoEquipo(c.Param("tipo"))

	equipos, err := h.Inventario.EquiposDisponibles(c.Request.Context(), tipo)
	if err != nil {
		responderErrorAPI(c, tipo, err)
		return
	}
	c.JSON(http.StatusOK, equipos)
}

// APIEquipoPorID — un equipo concreto; 404 cuando no existe.
func (h *Handler) APIEquipoPorID(c *gin.Context) {
	tipo := glpi.TipoEquipo(c.Param("tipo"))

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	equipo, err := h.Inventario.EquipoPorID(c.Request.Context(), tipo, id)
	if err != nil {
		responderErrorAPI(c, tipo, err)
		return
	}
	if equipo == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "equipo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, equipo)
}

func responderErrorAPI(c *gin.Context, tipo glpi.TipoEquipo, err error) {
	if errors.Is(err, glpi.ErrTipoNoSoportado) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "tipo de equipo no soportado: " + string(tipo)})
		return
	}
	logs.Logger.WithError(err).Errorf("API equipos (%s)", tipo)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "error interno al cargar equipos"})
}
