package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	apperrors "github.com/kbukum/errkit/errors"
)

// UnknownKindError is returned when a selected name is not in the catalog.
// A missing entry would silently misdocument the route, so it is never dropped.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("schema: unknown error kind %q", e.Name)
}

// Example documents one kind that can occur at a status code.
type Example struct {
	Code        string         `json:"-"`
	Summary     string         `json:"summary"`
	Description string         `json:"description,omitempty"`
	Value       map[string]any `json:"value"`
}

// Fragment is the documentation of one status code of a route.
type Fragment struct {
	StatusCode  int
	Schema      string
	Description string
	Examples    []Example
}

// Ref returns the reference of the fragment's component schema.
func (f Fragment) Ref() string { return Ref(f.Schema) }

// Response converts the fragment to an OpenAPI response object.
func (f Fragment) Response() *openapi3.Response {
	mt := openapi3.NewMediaType().WithSchemaRef(&openapi3.SchemaRef{Ref: f.Ref()})
	mt.Examples = make(openapi3.Examples, len(f.Examples))
	for _, ex := range f.Examples {
		mt.Examples[ex.Code] = &openapi3.ExampleRef{Value: &openapi3.Example{
			Summary:     ex.Summary,
			Description: ex.Description,
			Value:       ex.Value,
		}}
	}
	resp := openapi3.NewResponse().WithDescription(f.Description)
	resp.Content = openapi3.Content{"application/json": mt}
	return resp
}

type fragmentJSON struct {
	Ref         string             `json:"$ref"`
	Description string             `json:"description"`
	Examples    map[string]Example `json:"x-examples"`
}

// MarshalJSON encodes the fragment as a schema reference annotated with its
// description and examples.
func (f Fragment) MarshalJSON() ([]byte, error) {
	examples := make(map[string]Example, len(f.Examples))
	for _, ex := range f.Examples {
		examples[ex.Code] = ex
	}
	return json.Marshal(fragmentJSON{Ref: f.Schema, Description: f.Description, Examples: examples})
}

// Fragments are the documentation fragments of one route, in the order their
// status codes were first selected.
type Fragments []Fragment

// Get returns the fragment of status.
func (fs Fragments) Get(status int) (Fragment, bool) {
	for _, f := range fs {
		if f.StatusCode == status {
			return f, true
		}
	}
	return Fragment{}, false
}

// StatusCodes returns the documented status codes in bucket order.
func (fs Fragments) StatusCodes() []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f.StatusCode
	}
	return out
}

// Responses converts the fragments to OpenAPI responses keyed by status.
func (fs Fragments) Responses() openapi3.Responses {
	out := make(openapi3.Responses, len(fs))
	for _, f := range fs {
		out[strconv.Itoa(f.StatusCode)] = &openapi3.ResponseRef{Value: f.Response()}
	}
	return out
}

// MarshalJSON encodes the fragments as an object keyed by status code,
// keeping bucket order.
func (fs Fragments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(f.StatusCode)))
		buf.WriteByte(':')
		data, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Group resolves selected kinds and groups them into one fragment per status
// code. Each selected item is a catalog name or a *errors.Kind. Status codes
// keep first-seen order and kinds keep selection order within a status.
// Status 400 references the BadRequestError schema, every other status the
// HttpError schema. The fragment description is the message of the standard
// kind owning the status, then the status text, then the message of the
// first kind in the bucket.
func Group(catalog *apperrors.Catalog, selected ...any) (Fragments, error) {
	var out Fragments
	index := make(map[int]int)

	for _, sel := range selected {
		k, err := resolve(catalog, sel)
		if err != nil {
			return nil, err
		}

		status := k.StatusCode()
		i, ok := index[status]
		if !ok {
			i = len(out)
			index[status] = i
			out = append(out, newFragment(catalog, status))
		}
		if out[i].Description == "" {
			out[i].Description = k.Message()
		}
		out[i].addExample(exampleOf(k))
	}
	return out, nil
}

// MustGroup is like Group but panics on error. Use it in route tables built at startup.
func MustGroup(catalog *apperrors.Catalog, selected ...any) Fragments {
	fs, err := Group(catalog, selected...)
	if err != nil {
		panic(err)
	}
	return fs
}

func resolve(catalog *apperrors.Catalog, sel any) (*apperrors.Kind, error) {
	switch v := sel.(type) {
	case *apperrors.Kind:
		if v == nil {
			return nil, fmt.Errorf("schema: nil error kind")
		}
		return v, nil
	case string:
		if catalog != nil {
			if k, ok := catalog.Lookup(v); ok {
				return k, nil
			}
		}
		return nil, &UnknownKindError{Name: v}
	default:
		return nil, fmt.Errorf("schema: cannot document %T, want a catalog name or *errors.Kind", sel)
	}
}

func newFragment(catalog *apperrors.Catalog, status int) Fragment {
	f := Fragment{StatusCode: status, Schema: HTTPErrorName}
	if status == http.StatusBadRequest {
		f.Schema = BadRequestErrorName
	}
	if catalog != nil {
		if owner, ok := catalog.ByStatus(status); ok {
			f.Description = owner.Message()
		}
	}
	if f.Description == "" {
		f.Description = http.StatusText(status)
	}
	return f
}

// addExample appends ex, or replaces the value of an earlier example with
// the same code while keeping its position.
func (f *Fragment) addExample(ex Example) {
	for i := range f.Examples {
		if f.Examples[i].Code == ex.Code {
			f.Examples[i] = ex
			return
		}
	}
	f.Examples = append(f.Examples, ex)
}

func exampleOf(k *apperrors.Kind) Example {
	value := map[string]any{
		"statusCode": k.StatusCode(),
		"code":       k.Code(),
		"message":    k.Message(),
	}
	if ex := k.Example(); ex != nil {
		if ex.Message != "" {
			value["message"] = ex.Message
		}
		if len(ex.Validation) > 0 {
			value["validation"] = ex.Validation
		}
		if ex.ValidationContext != "" {
			value["validationContext"] = ex.ValidationContext
		}
	}
	return Example{
		Code:        k.Code(),
		Summary:     k.Code(),
		Description: k.Description(),
		Value:       value,
	}
}
