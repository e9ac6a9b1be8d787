package server

import (
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"

	"github.com/kbukum/errkit/schema"
)

// Docs collects documented routes and renders them as an OpenAPI document.
// Routes may be added while the document is being served.
type Docs struct {
	mu      sync.RWMutex
	title   string
	version string
	routes  []docRoute
}

type docRoute struct {
	method    string
	path      string
	fragments schema.Fragments
}

// NewDocs creates an empty registry.
func NewDocs(title, version string) *Docs {
	return &Docs{title: title, version: version}
}

// Route records the error responses of a route. path uses gin syntax
// (/users/:id); documenting the same method and path again replaces it.
// Methods OpenAPI cannot describe are ignored.
func (d *Docs) Route(method, path string, fragments schema.Fragments) {
	method = strings.ToUpper(method)
	if !documentable(method) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, r := range d.routes {
		if r.method == method && r.path == path {
			d.routes[i].fragments = fragments
			return
		}
	}
	d.routes = append(d.routes, docRoute{method: method, path: path, fragments: fragments})
}

// Document builds the OpenAPI document: the error component schemas plus
// one operation per documented route.
func (d *Docs) Document() *openapi3.T {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: d.title, Version: d.version},
		Paths:   openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: schema.Components(),
		},
	}

	for _, r := range d.routes {
		path, params := openAPIPath(r.path)
		item := doc.Paths[path]
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths[path] = item
		}

		op := openapi3.NewOperation()
		op.Responses = r.fragments.Responses()
		for _, name := range params {
			param := openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema())
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
		}
		item.SetOperation(r.method, op)
	}
	return doc
}

// Handler serves the document as JSON.
func (d *Docs) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Document())
	}
}

func documentable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete,
		http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodTrace, http.MethodConnect:
		return true
	}
	return false
}

// openAPIPath converts /users/:id and /files/*path to /users/{id} and
// /files/{path}, returning the parameter names in order.
func openAPIPath(ginPath string) (string, []string) {
	segments := strings.Split(ginPath, "/")
	var params []string
	for i, seg := range segments {
		if len(seg) > 1 && (seg[0] == ':' || seg[0] == '*') {
			params = append(params, seg[1:])
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/"), params
}
