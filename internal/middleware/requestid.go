package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claveRequestID = "request_id"

// RequestID asigna un identificador a cada petición; respeta el que venga
// en X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(claveRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID devuelve el id asignado a la petición, si existe.
func GetRequestID(c *gin.Context) string {
	return c.GetString(claveRequestID)
}
