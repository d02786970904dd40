package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// ErrorHandler is the centralized mapper for errors handlers did not resolve
// themselves (pushed via c.Error). Database-reported errors map to 400,
// connectivity failures to 503, everything else to 500. Error detail is only
// exposed in development mode.
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")

		status := http.StatusInternalServerError
		message := "Error interno del servidor"

		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			status = http.StatusBadRequest
			message = "Error en la consulta SQL"
		case isConnectivityError(err):
			status = http.StatusServiceUnavailable
			message = "Error de conexión a la base de datos"
		}

		resp := models.APIResponse{Success: false, Message: message}
		if development {
			resp.Error = err.Error()
		}
		c.JSON(status, resp)
	}
}

// isConnectivityError reports whether the error stems from the database being
// unreachable rather than from the statement itself.
func isConnectivityError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Recovery logs panics and answers with the uniform 500 envelope instead of
// crashing the process on a request-level fault.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Message: "Error interno del servidor",
		})
	})
}

// NoRoute answers unmatched paths with a uniform 404 naming the path.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Ruta %s no encontrada", c.Request.URL.Path),
		})
	}
}
