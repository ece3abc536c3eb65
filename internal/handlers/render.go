package handlers

import (
	"actas-equipos/internal/logs"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render — envoltura de c.HTML que agrega el mensaje flash pendiente de
// la sesión, si lo hay.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["Flash"] = flashes[0]
	}

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// errorInterno registra la causa y responde un 500 genérico. Nunca se
// filtra el error de la base de datos al usuario.
func errorInterno(c *gin.Context, op string, err error) {
	logs.Logger.WithError(err).Errorf("error en %s", op)
	c.String(500, "Error interno del servidor")
}
