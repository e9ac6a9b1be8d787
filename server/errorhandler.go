package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/server/middleware"
)

// handleErrors answers the last error raised while handling the request.
// Responses already written by a handler are left alone.
func (p *Plugin) handleErrors(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err
	if c.Writer.Written() {
		p.log.Debug("Error raised after response was written", logger.ErrorChainFields(err))
		return
	}
	p.respond(c, err)
}

func (p *Plugin) respond(c *gin.Context, err error) {
	status, body := apperrors.ToResponse(err, p.Errors())

	fields := logger.Merge(logger.ErrorChainFields(err), logger.Fields(
		logger.FieldStatusCode, status,
		logger.FieldMethod, c.Request.Method,
		logger.FieldPath, c.Request.URL.Path,
	))
	if code, ok := apperrors.CodeOf(err); ok {
		fields[logger.FieldErrorCode] = code
	}
	if id := middleware.GetRequestID(c); id != "" {
		fields[logger.FieldRequestID] = id
	}

	if status >= http.StatusInternalServerError {
		p.log.Error("Request failed", fields)
		if p.closeConnection {
			c.Header("Connection", "close")
		}
	} else {
		p.log.Warn("Request failed", fields)
	}

	c.AbortWithStatusJSON(status, body)
}

// Handler is a gin handler that reports failure by returning an error.
type Handler func(*gin.Context) error

// Handle adapts an error-returning handler. A returned error is raised to
// the error handler.
//
//	r.GET("/users/:id", server.Handle(func(c *gin.Context) error {
//	    return ErrUserNotFound.New(c.Param("id"))
//	}))
func Handle(fn Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}
