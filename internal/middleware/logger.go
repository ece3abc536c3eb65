package middleware

import (
	"time"

	"actas-equipos/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger escribe una línea por petición con el detalle habitual.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		logs.Logger.WithFields(logrus.Fields{
			"reqid":  GetRequestID(c),
			"method": c.Request.Method,
			"uri":    c.Request.RequestURI,
			"status": c.Writer.Status(),
			"bytes":  c.Writer.Size(),
			"dur":    time.Since(inicio).String(),
			"ip":     c.ClientIP(),
		}).Info("request")
	}
}
