// Package server wires the errkit error taxonomy into a Gin HTTP server.
//
// Setup installs a global error handler: handlers raise errors with
// c.Error (or return them through Handle) and the handler answers with the
// standard body, {"statusCode":404,"code":"ERR_NOT_FOUND","message":"Not Found"},
// or the validation body when the error carries validation detail.
// Unclassified errors are answered with a generic 500 so internal detail
// never leaks. Unknown routes and methods go through the same handler.
//
//	srv := server.New(cfg.Server, log)
//	srv.ApplyMiddleware()
//	plugin, err := server.Setup(srv.GinEngine(), log,
//	    server.WithErrors(map[string]*errors.Kind{"UserNotFound": ErrUserNotFound}),
//	    server.WithDocs(docs))
//
//	r.GET("/users/:id", server.Handle(getUser))
//	plugin.DocumentRoute("GET", "/users/:id", "UserNotFound", errors.ValidationErrorName)
//
// # Middleware
//
// Transport middleware wraps the whole handler (server/middleware):
//
//   - CORS: Cross-origin headers and preflight answers
//   - BodySizeLimit: Request body limit, reported as 413 by binding
//
// Gin middleware:
//
//   - RequestID: Request ID generation and propagation
//   - RequestLogger: One log line per request with its final status
//   - Recovery: Panics raised to the error handler (installed by Setup)
//   - RateLimit: Sliding-window limiting raising 429
//
// # Endpoints
//
// Built-in endpoints (server/endpoint): /health, /version, and /errors
// listing the catalog. Docs are served at Config.DocsPath.
package server
