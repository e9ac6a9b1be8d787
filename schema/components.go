package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names.
const (
	HTTPErrorName       = "HttpError"
	BadRequestErrorName = "BadRequestError"
	ValidationItemName  = "ValidationItem"
)

const componentsPrefix = "#/components/schemas/"

// Ref returns the JSON reference of a component schema.
func Ref(name string) string { return componentsPrefix + name }

// Components returns the component schemas referenced by fragments. Each call
// builds fresh values, so callers may modify them.
func Components() openapi3.Schemas {
	item := ValidationItemSchema()
	return openapi3.Schemas{
		HTTPErrorName:       openapi3.NewSchemaRef("", HTTPErrorSchema()),
		BadRequestErrorName: openapi3.NewSchemaRef("", BadRequestErrorSchema(openapi3.NewSchemaRef(Ref(ValidationItemName), item))),
		ValidationItemName:  openapi3.NewSchemaRef("", item),
	}
}

// ValidationItemSchema describes one field-level validation failure.
func ValidationItemSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("instancePath", withExample(openapi3.NewStringSchema(), "/name")).
		WithProperty("schemaPath", withExample(openapi3.NewStringSchema(), "#/properties/name/type")).
		WithProperty("keyword", withExample(openapi3.NewStringSchema(), "type")).
		WithProperty("params", openapi3.NewObjectSchema()).
		WithProperty("message", withExample(openapi3.NewStringSchema(), "must be string"))
	s.Required = []string{"instancePath", "schemaPath", "keyword", "message"}
	return s
}

// HTTPErrorSchema describes the generic error body.
func HTTPErrorSchema() *openapi3.Schema {
	s := baseErrorSchema(404, "ERR_NOT_FOUND", "Not Found")
	s.Title = "HTTP Error"
	s.Description = "HTTP Error"
	return s
}

// BadRequestErrorSchema describes the 400 body, which may carry validation
// detail. items is the schema (or reference) of one validation item.
func BadRequestErrorSchema(items *openapi3.SchemaRef) *openapi3.Schema {
	s := baseErrorSchema(400, "FST_ERR_VALIDATION", "A validation error occurred")
	s.Title = "Bad Request Error"
	s.Description = "Bad Request Error"

	validation := openapi3.NewArraySchema()
	validation.Items = items
	validation.Description = "Validation Errors"
	s.WithProperty("validation", validation)

	ctx := withExample(openapi3.NewStringSchema(), "body")
	ctx.Description = "Validation Context"
	s.WithProperty("validationContext", ctx)
	return s
}

func baseErrorSchema(status int, code, message string) *openapi3.Schema {
	statusCode := withExample(openapi3.NewIntegerSchema(), status)
	statusCode.Description = "HTTP Status Code"
	codeSchema := withExample(openapi3.NewStringSchema(), code)
	codeSchema.Description = "Application Status Code"
	msg := withExample(openapi3.NewStringSchema(), message)
	msg.Description = "Application Error Message"

	s := openapi3.NewObjectSchema().
		WithProperty("statusCode", statusCode).
		WithProperty("code", codeSchema).
		WithProperty("message", msg)
	s.Required = []string{"statusCode", "code", "message"}
	return s
}

func withExample(s *openapi3.Schema, example any) *openapi3.Schema {
	s.Example = example
	return s
}
