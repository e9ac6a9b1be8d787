package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
)

// KindInfo describes one catalog entry.
type KindInfo struct {
	Name        string `json:"name"`
	StatusCode  int    `json:"statusCode"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Describe lists the entries of catalog in registration order.
func Describe(catalog *apperrors.Catalog) []KindInfo {
	names := catalog.Names()
	out := make([]KindInfo, 0, len(names))
	for _, name := range names {
		k, _ := catalog.Lookup(name)
		out = append(out, KindInfo{
			Name:        name,
			StatusCode:  k.StatusCode(),
			Code:        k.Code(),
			Message:     k.Message(),
			Description: k.Description(),
		})
	}
	return out
}

// Catalog lists the error kinds the service can answer with.
func Catalog(catalog func() *apperrors.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"errors": Describe(catalog())})
	}
}
