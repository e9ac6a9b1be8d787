// Package schema turns declared error kinds into OpenAPI response fragments.
//
// Group buckets the kinds a route can raise by status code and emits one
// fragment per status, referencing a shared component schema and carrying
// one example per kind:
//
//	fragments, err := schema.Group(catalog, "NotFoundError", "ValidationError", ErrUserLocked)
//	op.Responses = fragments.Responses()
//
// Fragments are built at route registration, never per request.
package schema
