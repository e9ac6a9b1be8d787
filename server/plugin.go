package server

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/schema"
	"github.com/kbukum/errkit/server/middleware"
)

// PluginOption configures Setup.
type PluginOption func(*pluginOptions)

type pluginOptions struct {
	errors          map[string]*apperrors.Kind
	closeConnection bool
	docs            *Docs
}

// WithErrors merges extra kinds into the standard catalog. An entry replaces
// the catalog entry of the same name and displaces any entry declaring the
// same code.
func WithErrors(kinds map[string]*apperrors.Kind) PluginOption {
	return func(o *pluginOptions) {
		if o.errors == nil {
			o.errors = make(map[string]*apperrors.Kind, len(kinds))
		}
		for name, k := range kinds {
			o.errors[name] = k
		}
	}
}

// WithCloseConnection adds "Connection: close" to every 5xx response.
func WithCloseConnection(enabled bool) PluginOption {
	return func(o *pluginOptions) { o.closeConnection = enabled }
}

// WithDocs records routes documented through DocumentRoute in docs.
func WithDocs(docs *Docs) PluginOption {
	return func(o *pluginOptions) { o.docs = docs }
}

// Plugin is the error handling installed on a gin engine.
type Plugin struct {
	mu      sync.RWMutex
	catalog *apperrors.Catalog

	log             *logger.Logger
	closeConnection bool
	docs            *Docs
}

// Setup builds the error catalog and installs the error handler, panic
// recovery and the 404/405 handlers on engine. Register routes after Setup
// so they run inside the handler; middleware that must observe the final
// response (request logging) goes before it.
func Setup(engine *gin.Engine, log *logger.Logger, opts ...PluginOption) (*Plugin, error) {
	var o pluginOptions
	for _, opt := range opts {
		opt(&o)
	}

	catalog := apperrors.Standard()
	if len(o.errors) > 0 {
		merged, err := catalog.Merge(o.errors)
		if err != nil {
			return nil, fmt.Errorf("server: merge error catalog: %w", err)
		}
		catalog = merged
	}

	if log == nil {
		log = logger.NewNop()
	}
	p := &Plugin{
		catalog:         catalog,
		log:             log.WithComponent("errors"),
		closeConnection: o.closeConnection,
		docs:            o.docs,
	}

	engine.HandleMethodNotAllowed = true
	engine.Use(p.handleErrors, middleware.Recovery(p.log))
	engine.NoRoute(p.raise(apperrors.CodeNotFound, "NotFoundError"))
	engine.NoMethod(p.raise(apperrors.CodeMethodNotAllowed, "MethodNotAllowedError"))
	return p, nil
}

// Errors returns the catalog in effect.
func (p *Plugin) Errors() *apperrors.Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.catalog
}

// Declare adds kind to the catalog under name, with the same override rules
// as WithErrors. Call it while registering routes, before serving.
func (p *Plugin) Declare(name string, kind *apperrors.Kind) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	merged, err := p.catalog.Merge(map[string]*apperrors.Kind{name: kind})
	if err != nil {
		return err
	}
	p.catalog = merged
	return nil
}

// UseErrors groups the selected kinds into response documentation
// fragments. Items are catalog names or kinds.
func (p *Plugin) UseErrors(selected ...any) (schema.Fragments, error) {
	return schema.Group(p.Errors(), selected...)
}

// DocumentRoute groups the selected kinds and records them as the error
// responses of the route in the docs registry, if one was configured.
func (p *Plugin) DocumentRoute(method, path string, selected ...any) (schema.Fragments, error) {
	if !documentable(strings.ToUpper(method)) {
		return nil, fmt.Errorf("server: cannot document method %q", method)
	}
	fragments, err := p.UseErrors(selected...)
	if err != nil {
		return nil, fmt.Errorf("server: document %s %s: %w", method, path, err)
	}
	if p.docs != nil {
		p.docs.Route(method, path, fragments)
	}
	return fragments, nil
}

// raise returns a handler raising the catalog kind registered as name, or
// the kind that displaced it by declaring code.
func (p *Plugin) raise(code, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := p.Errors()
		k, ok := catalog.Lookup(name)
		if !ok {
			k, ok = catalog.ByCode(code)
		}
		if !ok {
			k = apperrors.InternalServerError
		}
		_ = c.Error(k.New())
		c.Abort()
	}
}
