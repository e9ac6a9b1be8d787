package schema

import (
	"encoding/json"
	"testing"
)

func TestComponents(t *testing.T) {
	c := Components()
	for _, name := range []string{HTTPErrorName, BadRequestErrorName, ValidationItemName} {
		if c[name] == nil || c[name].Value == nil {
			t.Errorf("missing component %s", name)
		}
	}

	data, err := json.Marshal(c[BadRequestErrorName])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded struct {
		Properties map[string]struct {
			Items struct {
				Ref string `json:"$ref"`
			} `json:"items"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := decoded.Properties["validation"].Items.Ref; got != Ref(ValidationItemName) {
		t.Errorf("expected validation items to reference %s, got %q", Ref(ValidationItemName), got)
	}
}

func TestComponents_FreshValues(t *testing.T) {
	a := Components()
	a[HTTPErrorName].Value.Title = "changed"
	if Components()[HTTPErrorName].Value.Title == "changed" {
		t.Error("expected independent component values")
	}
}

func TestHTTPErrorSchema_RejectsMissingCode(t *testing.T) {
	s := HTTPErrorSchema()
	if err := s.VisitJSON(map[string]any{"statusCode": float64(404), "message": "x"}); err == nil {
		t.Error("expected a body without code to be rejected")
	}
	if err := s.VisitJSON(map[string]any{"statusCode": float64(404), "code": "X", "message": "x"}); err != nil {
		t.Errorf("expected valid body, got %v", err)
	}
}
