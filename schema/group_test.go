package schema

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/kbukum/errkit/errors"
)

func TestGroup_SingleKind(t *testing.T) {
	fs, err := Group(apperrors.Standard(), "NotFoundError")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if len(fs) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fs))
	}
	f := fs[0]
	if f.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", f.StatusCode)
	}
	if f.Schema != HTTPErrorName {
		t.Errorf("expected schema %q, got %q", HTTPErrorName, f.Schema)
	}
	if f.Ref() != "#/components/schemas/HttpError" {
		t.Errorf("unexpected ref %q", f.Ref())
	}
	if f.Description != "Not Found" {
		t.Errorf("expected description 'Not Found', got %q", f.Description)
	}
	if len(f.Examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(f.Examples))
	}
	ex := f.Examples[0]
	if ex.Summary != "ERR_NOT_FOUND" {
		t.Errorf("expected summary ERR_NOT_FOUND, got %q", ex.Summary)
	}
	if ex.Value["statusCode"] != 404 || ex.Value["code"] != "ERR_NOT_FOUND" || ex.Value["message"] != "Not Found" {
		t.Errorf("unexpected example value %v", ex.Value)
	}
}

func TestGroup_ValidationErrorUsesBadRequestSchema(t *testing.T) {
	fs := MustGroup(apperrors.Standard(), apperrors.ValidationErrorName)
	f, ok := fs.Get(http.StatusBadRequest)
	if !ok {
		t.Fatal("expected a 400 fragment")
	}
	if f.Schema != BadRequestErrorName {
		t.Errorf("expected schema %q, got %q", BadRequestErrorName, f.Schema)
	}
	if f.Description != "Bad Request" {
		t.Errorf("expected description from BadRequestError, got %q", f.Description)
	}
	ex := f.Examples[0]
	if ex.Summary != apperrors.CodeValidation {
		t.Errorf("expected summary %s, got %q", apperrors.CodeValidation, ex.Summary)
	}
	if ex.Description == "" {
		t.Error("expected the kind description on the example")
	}
	if _, ok := ex.Value["validation"]; !ok {
		t.Error("expected example value to carry validation items")
	}
	if ex.Value["validationContext"] != "params" {
		t.Errorf("expected validationContext params, got %v", ex.Value["validationContext"])
	}
}

func TestGroup_SharedStatusBucket(t *testing.T) {
	custom := apperrors.Declare(400, "ERR_BAD_PAGE", "bad page %d")
	fs, err := Group(apperrors.Standard(), "BadRequestError", custom, "NotFoundError")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if got := fs.StatusCodes(); len(got) != 2 || got[0] != 400 || got[1] != 404 {
		t.Fatalf("unexpected status order %v", got)
	}
	f, _ := fs.Get(400)
	if len(f.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(f.Examples))
	}
	if f.Examples[0].Code != "ERR_BAD_REQUEST" || f.Examples[1].Code != "ERR_BAD_PAGE" {
		t.Errorf("unexpected example order %s, %s", f.Examples[0].Code, f.Examples[1].Code)
	}
}

func TestGroup_FirstSeenOrder(t *testing.T) {
	fs := MustGroup(apperrors.Standard(), "InternalServerError", "NotFoundError", "UnauthorizedError", "ServiceUnavailableError")
	want := []int{500, 404, 401, 503}
	got := fs.StatusCodes()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestGroup_DuplicateCodeKeepsFirstPosition(t *testing.T) {
	first := apperrors.Declare(409, "ERR_DUP", "first")
	other := apperrors.Declare(409, "ERR_OTHER", "other")
	second := apperrors.Declare(409, "ERR_DUP", "second")

	fs := MustGroup(nil, first, other, second)
	f, _ := fs.Get(409)
	if len(f.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(f.Examples))
	}
	if f.Examples[0].Code != "ERR_DUP" || f.Examples[0].Value["message"] != "second" {
		t.Errorf("expected ERR_DUP first with the last value, got %+v", f.Examples[0])
	}
	if f.Description != "" {
		t.Errorf("expected empty description without a catalog, got %q", f.Description)
	}
}

func TestGroup_UnknownName(t *testing.T) {
	_, err := Group(apperrors.Standard(), "NotFoundError", "NoSuchError")
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownKindError, got %v", err)
	}
	if unknown.Name != "NoSuchError" {
		t.Errorf("expected name NoSuchError, got %q", unknown.Name)
	}
}

func TestGroup_UnsupportedSelection(t *testing.T) {
	if _, err := Group(apperrors.Standard(), 404); err == nil {
		t.Error("expected error for an int selection")
	}
	var k *apperrors.Kind
	if _, err := Group(apperrors.Standard(), k); err == nil {
		t.Error("expected error for a nil kind")
	}
}

func TestMustGroup_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustGroup(apperrors.Standard(), "NoSuchError")
}

func TestGroup_DescriptionFallback(t *testing.T) {
	clientClosed := apperrors.Declare(499, "ERR_CLIENT_CLOSED", "Client Closed Request")
	conflict := apperrors.Declare(http.StatusConflict, "ERR_VERSION_MISMATCH", "version mismatch")

	tests := []struct {
		name     string
		catalog  *apperrors.Catalog
		selected []any
		want     string
	}{
		{"standard owner", apperrors.Standard(), []any{conflict}, "Conflict"},
		{"nil catalog uses status text", nil, []any{conflict}, "Conflict"},
		{"unnamed status uses first kind", apperrors.Standard(), []any{clientClosed}, "Client Closed Request"},
		{"unnamed status with nil catalog", nil, []any{clientClosed}, "Client Closed Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := Group(tt.catalog, tt.selected...)
			if err != nil {
				t.Fatalf("Group: %v", err)
			}
			if len(fs) != 1 {
				t.Fatalf("expected 1 fragment, got %d", len(fs))
			}
			if fs[0].Description != tt.want {
				t.Errorf("expected description %q, got %q", tt.want, fs[0].Description)
			}
			if fs[0].Response().Description == nil || *fs[0].Response().Description == "" {
				t.Error("expected a non-empty response description")
			}
		})
	}
}

func TestGroup_Empty(t *testing.T) {
	fs, err := Group(apperrors.Standard())
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected {}, got %s", data)
	}
}

func TestFragments_MarshalJSON(t *testing.T) {
	fs := MustGroup(apperrors.Standard(), "NotFoundError")
	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"404":{"$ref":"HttpError","description":"Not Found","x-examples":{"ERR_NOT_FOUND":{"summary":"ERR_NOT_FOUND","value":{"code":"ERR_NOT_FOUND","message":"Not Found","statusCode":404}}}}}`
	if string(data) != want {
		t.Errorf("unexpected JSON\nwant %s\ngot  %s", want, data)
	}
}

func TestFragments_Deterministic(t *testing.T) {
	selected := []any{"ValidationError", "NotFoundError", "BadRequestError", "InternalServerError", "ConflictError"}

	a, err := json.Marshal(MustGroup(apperrors.Standard(), selected...))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := json.Marshal(MustGroup(apperrors.Standard(), selected...))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("expected byte-identical output\n%s\n%s", a, b)
	}
}

func TestFragments_Responses(t *testing.T) {
	fs := MustGroup(apperrors.Standard(), "ValidationError", "NotFoundError")
	responses := fs.Responses()
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	notFound := responses["404"]
	if notFound == nil || notFound.Value == nil {
		t.Fatal("expected a 404 response")
	}
	if notFound.Value.Description == nil || *notFound.Value.Description != "Not Found" {
		t.Errorf("unexpected 404 description %v", notFound.Value.Description)
	}
	mt := notFound.Value.Content.Get("application/json")
	if mt == nil {
		t.Fatal("expected application/json content")
	}
	if mt.Schema.Ref != Ref(HTTPErrorName) {
		t.Errorf("unexpected schema ref %q", mt.Schema.Ref)
	}
	if _, ok := mt.Examples["ERR_NOT_FOUND"]; !ok {
		t.Error("expected ERR_NOT_FOUND example")
	}

	bad := responses["400"].Value.Content.Get("application/json")
	if bad.Schema.Ref != Ref(BadRequestErrorName) {
		t.Errorf("unexpected schema ref %q", bad.Schema.Ref)
	}
}

// Every example value must satisfy the component schema it is documented with.
func TestExamples_ConformToComponents(t *testing.T) {
	components := Components()
	catalog := apperrors.Standard()

	fs, err := Group(catalog, toAny(catalog.Names())...)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	for _, f := range fs {
		schema := components[f.Schema].Value
		for _, ex := range f.Examples {
			value := normalize(t, ex.Value)
			if err := schema.VisitJSON(value); err != nil {
				t.Errorf("%d/%s: example does not match %s: %v", f.StatusCode, ex.Code, f.Schema, err)
			}
		}
	}
}

func toAny(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// normalize converts a value to the generic JSON types the schema visitor expects.
func normalize(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return out
}
