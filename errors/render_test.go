package errors

import "testing"

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no args keeps template", "100%% %s", nil, "100%% %s"},
		{"string", "user %s not found", []any{"42"}, "user 42 not found"},
		{"several", "%s of %s", []any{"a", "b"}, "a of b"},
		{"missing arg kept", "%s and %s", []any{"a"}, "a and %s"},
		{"extra args ignored", "Not Found", []any{"x", "y"}, "Not Found"},
		{"escaped percent", "%d%% done", []any{50}, "50% done"},
		{"number", "%d items", []any{3}, "3 items"},
		{"float keeps fraction", "%d", []any{2.5}, "2.5"},
		{"integer floors", "%i", []any{2.9}, "2"},
		{"float verb", "%f", []any{float32(1.5)}, "1.5"},
		{"numeric string", "%d", []any{"12"}, "12"},
		{"not a number", "%d", []any{"abc"}, "NaN"},
		{"nil number kept", "%d!", []any{nil}, "%d!"},
		{"nil string", "%s", []any{nil}, "null"},
		{"json object", "%j", []any{map[string]int{"a": 1}}, `{"a":1}`},
		{"json string quoted", "%o", []any{"x"}, "'x'"},
		{"unsupported verb verbatim", "%x %v %s", []any{"a"}, "%x %v a"},
		{"format verbs are not interpreted", "%s", []any{"%d %s"}, "%d %s"},
		{"stringer", "%s", []any{stringer{}}, "stringer"},
		{"trailing percent", "50%", []any{"x"}, "50%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.template, tc.args...); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
