package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"actas-equipos/internal/actas"
	"actas-equipos/internal/glpi"
	"actas-equipos/internal/logs"
	"actas-equipos/internal/pdf"
	"actas-equipos/internal/settings"

	"github.com/gin-gonic/gin"
)

const responsabilidadesPorDefecto = "Sin responsabilidades definidas."

// Dashboard — listado de actas recientes.
func (h *Handler) Dashboard(c *gin.Context) {
	listado, err := h.Repo.Listar(c.Request.Context())
	if err != nil {
		errorInterno(c, "listar actas", err)
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"titulo": "Panel de Administración",
		"actas":  listado,
	})
}

// FormularioActa — formulario de creación con usuarios GLPI, tipos de
// equipo y el texto de responsabilidades configurado.
func (h *Handler) FormularioActa(c *gin.Context) {
	ctx := c.Request.Context()

	usuarios, err := h.Inventario.UsuariosActivos(ctx)
	if err != nil {
		errorInterno(c, "usuarios GLPI", err)
		return
	}

	cfg, err := h.Settings.Obtener(ctx)
	if err != nil {
		errorInterno(c, "configuración", err)
		return
	}

	render(c, http.StatusOK, "acta_new.html", gin.H{
		"titulo":            "Crear Nueva Acta",
		"usuarios":          usuarios,
		"tipos":             glpi.Tipos(),
		"responsabilidades": textoResponsabilidades(cfg),
	})
}

// CrearActa procesa el formulario: valida los tokens de equipos uno por
// uno, crea el acta en una transacción y genera el PDF.
func (h *Handler) CrearActa(c *gin.Context) {
	ctx := c.Request.Context()

	usuarioID, err := strconv.Atoi(c.PostForm("glpi_users_id"))
	if err != nil || usuarioID <= 0 {
		c.String(http.StatusBadRequest, "Usuario que recibe inválido.")
		return
	}

	// Cada token "itemtype|items_id" se valida por separado; los malos se
	// reportan uno a uno en lugar de descartar el envío en silencio.
	var (
		asociaciones []actas.Asociacion
		rechazados   []string
	)
	for _, token := range c.PostFormArray("equipos") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		a, err := actas.ParsearTokenEquipo(token)
		if err != nil {
			rechazados = append(rechazados, token)
			continue
		}
		asociaciones = append(asociaciones, a)
	}
	if len(rechazados) > 0 {
		c.String(http.StatusBadRequest,
			"Equipos mal formados: %s", strings.Join(rechazados, ", "))
		return
	}

	datos := actas.DatosActa{
		GlpiUsersID:        usuarioID,
		Observaciones:      strings.TrimSpace(c.PostForm("observaciones")),
		EntregadoPorNombre: strings.TrimSpace(c.PostForm("entregado_por_nombre")),
		EntregadoPorCedula: strings.TrimSpace(c.PostForm("entregado_por_cedula")),
		EntregadoPorCargo:  strings.TrimSpace(c.PostForm("entregado_por_cargo")),
		EntregadoPorFirma:  c.PostForm("entregado_por_firma"),
		RecibidoPorCedula:  strings.TrimSpace(c.PostForm("recibido_por_cedula")),
		RecibidoPorCargo:   strings.TrimSpace(c.PostForm("recibido_por_cargo")),
		RecibidoPorFirma:   c.PostForm("recibido_por_firma"),
		Equipos:            asociaciones,
	}

	acta, err := h.Repo.Crear(ctx, datos)
	if err != nil {
		var ev *actas.ErrorValidacion
		if errors.As(err, &ev) {
			c.String(http.StatusBadRequest, "Datos inválidos: %s", ev.Error())
			return
		}
		errorInterno(c, "crear acta", err)
		return
	}

	// El PDF se genera con el detalle completo recién leído. Si falla, el
	// acta ya existe: se registra y se sigue; el PDF puede regenerarse
	// desde el detalle.
	if _, err := h.generarPDF(c, acta.ID); err != nil {
		logs.Logger.WithError(err).Errorf("acta %s creada pero sin PDF", acta.CodigoActa)
	}

	flash(c, fmt.Sprintf("Acta %s creada exitosamente.", acta.CodigoActa))
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/acta/%d", acta.ID))
}

// DetalleActa — vista de detalle con la lista viva de equipos.
func (h *Handler) DetalleActa(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de acta inválido.")
		return
	}

	detalle, err := h.Repo.ObtenerDetalle(c.Request.Context(), uint(id))
	if err != nil {
		errorInterno(c, "detalle de acta", err)
		return
	}
	if detalle == nil {
		c.String(http.StatusNotFound, "Acta no encontrada.")
		return
	}

	render(c, http.StatusOK, "acta_detail.html", gin.H{
		"titulo":  "Detalles Acta " + detalle.CodigoActa,
		"acta":    detalle,
		"equipos": detalle.Equipos,
	})
}

// ActaPDF regenera el PDF del acta y lo sirve.
func (h *Handler) ActaPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de acta inválido.")
		return
	}

	ruta, err := h.generarPDF(c, uint(id))
	if err != nil {
		errorInterno(c, "PDF de acta", err)
		return
	}
	if ruta == "" {
		c.String(http.StatusNotFound, "Acta no encontrada.")
		return
	}
	c.File(ruta)
}

// generarPDF lee el detalle vivo del acta y escribe el archivo. Devuelve
// ruta vacía cuando el acta no existe.
func (h *Handler) generarPDF(c *gin.Context, id uint) (string, error) {
	ctx := c.Request.Context()

	detalle, err := h.Repo.ObtenerDetalle(ctx, id)
	if err != nil {
		return "", err
	}
	if detalle == nil {
		return "", nil
	}

	cfg, err := h.Settings.Obtener(ctx)
	if err != nil {
		return "", err
	}

	return pdf.GenerarActaPDF(detalle, textoResponsabilidades(cfg), cfg, h.PDFDir)
}

func textoResponsabilidades(cfg map[string]string) string {
	if t := cfg[settings.ClaveResponsabilidades]; t != "" {
		return t
	}
	return responsabilidadesPorDefecto
}
