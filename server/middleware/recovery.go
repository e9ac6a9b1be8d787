package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
)

// Recovery turns a panic into a request error so the error handler answers
// it like any other failure. A panic carrying an error is raised as that
// error; any other value becomes InternalServerError. The stack is logged
// at error level.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = apperrors.InternalServerError.FromCause(fmt.Errorf("panic: %v", rec))
			}
			log.Error("Panic recovered", map[string]interface{}{
				logger.FieldError:  fmt.Sprintf("%v", rec),
				"stack":            string(debug.Stack()),
				logger.FieldPath:   c.Request.URL.Path,
				logger.FieldMethod: c.Request.Method,
			})
			_ = c.Error(err)
			c.Abort()
		}()
		c.Next()
	}
}
