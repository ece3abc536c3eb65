package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"actas-equipos/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormularioConfiguracion — formulario de ajustes globales.
func (h *Handler) FormularioConfiguracion(c *gin.Context) {
	cfg, err := h.Settings.Obtener(c.Request.Context())
	if err != nil {
		errorInterno(c, "configuración", err)
		return
	}

	render(c, http.StatusOK, "config.html", gin.H{
		"titulo": "Configuración",
		"config": cfg,
	})
}

// GuardarConfiguracion procesa el formulario multipart: campos de texto
// como upserts clave/valor y el logo como archivo subido cuya ruta queda
// guardada en la configuración.
func (h *Handler) GuardarConfiguracion(c *gin.Context) {
	ctx := c.Request.Context()

	for _, clave := range []string{settings.ClaveTitulo, settings.ClaveResponsabilidades} {
		valor := strings.TrimSpace(c.PostForm(clave))
		if valor == "" {
			continue
		}
		if err := h.Settings.Guardar(ctx, clave, valor); err != nil {
			errorInterno(c, "guardar configuración", err)
			return
		}
	}

	if archivo, err := c.FormFile("logo"); err == nil {
		// nombre aleatorio para no pisar subidas anteriores
		destino := filepath.Join(h.UploadDir, uuid.NewString()+filepath.Ext(archivo.Filename))
		if err := c.SaveUploadedFile(archivo, destino); err != nil {
			errorInterno(c, "guardar logo", err)
			return
		}
		if err := h.Settings.Guardar(ctx, settings.ClaveLogo, destino); err != nil {
			errorInterno(c, "guardar configuración", err)
			return
		}
	}

	flash(c, "Configuración guardada.")
	c.Redirect(http.StatusFound, "/admin/config")
}
