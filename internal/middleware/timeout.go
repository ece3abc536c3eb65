package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout acota el contexto de cada petición. Con el pool de conexiones
// lleno, la espera por una conexión termina aquí en vez de encolarse sin
// límite: la petición falla con el error de contexto y un 500.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
