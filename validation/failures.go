package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/kbukum/errkit/errors"
)

// Validation contexts name the part of the request that failed.
const (
	ContextBody        = "body"
	ContextQuerystring = "querystring"
	ContextParams      = "params"
	ContextHeaders     = "headers"
)

// formats maps validator tags to JSON Schema format names.
var formats = map[string]string{
	"email":            "email",
	"url":              "uri",
	"uri":              "uri",
	"http_url":         "uri",
	"uuid":             "uuid",
	"uuid3":            "uuid",
	"uuid4":            "uuid",
	"uuid5":            "uuid",
	"uuid_rfc4122":     "uuid",
	"ip":               "ip",
	"ipv4":             "ipv4",
	"ipv6":             "ipv6",
	"hostname":         "hostname",
	"hostname_rfc1123": "hostname",
	"datetime":         "date-time",
}

// path is a decoded field location. Index segments address array items.
type path struct {
	segments []string
	indexes  []bool
}

// parseNamespace decodes a validator namespace such as
// "CreateUser.address.lines[0]". The leading struct name is dropped.
func parseNamespace(ns string) path {
	var p path
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	} else {
		return p
	}
	for _, part := range parts {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			p.push(name, false)
		}
		for rest != "" {
			var key string
			key, rest, _ = strings.Cut(rest, "]")
			p.push(key, true)
			rest = strings.TrimPrefix(rest, "[")
		}
	}
	return p
}

// parseField decodes a dotted field name such as "address.city".
func parseField(field string) path {
	var p path
	for _, part := range strings.Split(field, ".") {
		if part == "" {
			continue
		}
		_, err := strconv.Atoi(part)
		p.push(part, err == nil)
	}
	return p
}

func (p *path) push(segment string, index bool) {
	p.segments = append(p.segments, segment)
	p.indexes = append(p.indexes, index)
}

func (p path) parent() path {
	if len(p.segments) == 0 {
		return p
	}
	n := len(p.segments) - 1
	return path{segments: p.segments[:n], indexes: p.indexes[:n]}
}

func (p path) last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// instancePath renders p as a JSON pointer; the root is "".
func (p path) instancePath() string {
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		b.WriteString(escapePointer(s))
	}
	return b.String()
}

// schemaPath renders the JSON Schema location of keyword under p.
func (p path) schemaPath(keyword string) string {
	var b strings.Builder
	b.WriteByte('#')
	for i, s := range p.segments {
		if p.indexes[i] {
			b.WriteString("/items")
			continue
		}
		b.WriteString("/properties/")
		b.WriteString(escapePointer(s))
	}
	b.WriteByte('/')
	b.WriteString(keyword)
	return b.String()
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// failureAt builds a failure for keyword at p.
func failureAt(p path, keyword string, params map[string]any, message string) apperrors.RawFailure {
	return apperrors.RawFailure{
		InstancePath: p.instancePath(),
		SchemaPath:   p.schemaPath(keyword),
		Keyword:      keyword,
		Params:       params,
		Message:      message,
	}
}

// requiredAt reports a missing property; the failure sits on the parent.
func requiredAt(p path) apperrors.RawFailure {
	name := p.last()
	return failureAt(p.parent(), "required",
		map[string]any{"missingProperty": name},
		fmt.Sprintf("must have required property '%s'", name))
}

// typeAt reports a value of the wrong JSON type.
func typeAt(p path, jsonType string) apperrors.RawFailure {
	return failureAt(p, "type", map[string]any{"type": jsonType}, "must be "+jsonType)
}

// fromFieldErrors converts validator failures, in order, prefixing each
// location with prefix.
func fromFieldErrors(errs validator.ValidationErrors, prefix path) []apperrors.RawFailure {
	out := make([]apperrors.RawFailure, 0, len(errs))
	for _, fe := range errs {
		p := parseNamespace(fe.Namespace())
		if len(prefix.segments) > 0 {
			p = path{
				segments: append(append([]string{}, prefix.segments...), p.segments...),
				indexes:  append(append([]bool{}, prefix.indexes...), p.indexes...),
			}
		}
		out = append(out, fromFieldError(fe, p))
	}
	return out
}

// fromFieldError maps one validator tag to the closest JSON Schema keyword.
func fromFieldError(fe validator.FieldError, p path) apperrors.RawFailure {
	tag := fe.Tag()
	param := fe.Param()

	if tag == "required" || strings.HasPrefix(tag, "required_") {
		return requiredAt(p)
	}
	if format, ok := formats[tag]; ok {
		return failureAt(p, "format", map[string]any{"format": format},
			fmt.Sprintf("must match format %q", format))
	}

	kind := fe.Kind()
	switch tag {
	case "min", "gte":
		return lowerBound(p, kind, param, false)
	case "max", "lte":
		return upperBound(p, kind, param, false)
	case "gt":
		return lowerBound(p, kind, param, true)
	case "lt":
		return upperBound(p, kind, param, true)
	case "oneof":
		allowed := make([]any, 0)
		for _, v := range strings.Fields(param) {
			allowed = append(allowed, v)
		}
		return failureAt(p, "enum", map[string]any{"allowedValues": allowed},
			"must be equal to one of the allowed values")
	}

	params := map[string]any{}
	if param != "" {
		params["param"] = param
	}
	return failureAt(p, tag, params, fmt.Sprintf("must pass the %q rule", tag))
}

func lowerBound(p path, kind reflect.Kind, param string, exclusive bool) apperrors.RawFailure {
	limit := limitValue(param)
	switch kind {
	case reflect.String:
		if exclusive {
			limit = addOne(limit)
		}
		return failureAt(p, "minLength", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have fewer than %v characters", limit))
	case reflect.Slice, reflect.Array:
		if exclusive {
			limit = addOne(limit)
		}
		return failureAt(p, "minItems", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have fewer than %v items", limit))
	case reflect.Map:
		if exclusive {
			limit = addOne(limit)
		}
		return failureAt(p, "minProperties", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have fewer than %v properties", limit))
	}
	if exclusive {
		return failureAt(p, "exclusiveMinimum", map[string]any{"comparison": ">", "limit": limit},
			fmt.Sprintf("must be > %v", limit))
	}
	return failureAt(p, "minimum", map[string]any{"comparison": ">=", "limit": limit},
		fmt.Sprintf("must be >= %v", limit))
}

func upperBound(p path, kind reflect.Kind, param string, exclusive bool) apperrors.RawFailure {
	limit := limitValue(param)
	switch kind {
	case reflect.String:
		if exclusive {
			limit = subOne(limit)
		}
		return failureAt(p, "maxLength", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have more than %v characters", limit))
	case reflect.Slice, reflect.Array:
		if exclusive {
			limit = subOne(limit)
		}
		return failureAt(p, "maxItems", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have more than %v items", limit))
	case reflect.Map:
		if exclusive {
			limit = subOne(limit)
		}
		return failureAt(p, "maxProperties", map[string]any{"limit": limit},
			fmt.Sprintf("must NOT have more than %v properties", limit))
	}
	if exclusive {
		return failureAt(p, "exclusiveMaximum", map[string]any{"comparison": "<", "limit": limit},
			fmt.Sprintf("must be < %v", limit))
	}
	return failureAt(p, "maximum", map[string]any{"comparison": "<=", "limit": limit},
		fmt.Sprintf("must be <= %v", limit))
}

// limitValue parses a tag parameter as an int when possible, else a float,
// else keeps the raw string.
func limitValue(param string) any {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(param, 64); err == nil {
		return f
	}
	return param
}

func addOne(limit any) any {
	if n, ok := limit.(int); ok {
		return n + 1
	}
	return limit
}

func subOne(limit any) any {
	if n, ok := limit.(int); ok {
		return n - 1
	}
	return limit
}

// jsonType names the JSON type a Go type decodes from.
func jsonType(t reflect.Type) string {
	if t == nil {
		return "null"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
