package errors

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Render substitutes args into template positionally. Supported placeholders:
//
//	%s        string form of the argument
//	%d, %f    numeric form of the argument
//	%i        integer part of the numeric form
//	%j %o %O  JSON form (strings are single-quoted)
//	%%        a literal percent sign
//
// Any other verb is copied verbatim, a placeholder with no remaining argument
// is kept as is, and unused arguments are ignored. With no arguments the
// template is returned unchanged. Template text is never handed to fmt as a
// format string.
func Render(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	a := 0
	last := 0
	for i := 0; i < len(template)-1; i++ {
		if template[i] != '%' {
			continue
		}
		verb := template[i+1]
		var repl string
		switch verb {
		case '%':
			repl = "%"
		case 's', 'd', 'f', 'i', 'j', 'o', 'O':
			if a >= len(args) {
				continue
			}
			arg := args[a]
			a++
			if arg == nil && verb != 's' {
				i++
				continue
			}
			repl = formatArg(verb, arg)
		default:
			continue
		}
		b.WriteString(template[last:i])
		b.WriteString(repl)
		last = i + 2
		i++
	}
	b.WriteString(template[last:])
	return b.String()
}

func formatArg(verb byte, arg any) string {
	switch verb {
	case 's':
		return stringArg(arg)
	case 'd', 'f':
		return numberArg(arg, false)
	case 'i':
		return numberArg(arg, true)
	default:
		return jsonArg(arg)
	}
}

func stringArg(arg any) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(arg)
}

func numberArg(arg any, integer bool) string {
	var f float64
	switch v := arg.(type) {
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		if integer {
			return strconv.FormatInt(v, 10)
		}
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		if integer {
			return strconv.FormatUint(v, 10)
		}
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case bool:
		if v {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "NaN"
		}
		f = parsed
	default:
		return "NaN"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	if integer {
		f = math.Floor(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func jsonArg(arg any) string {
	if s, ok := arg.(string); ok {
		return "'" + s + "'"
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return `"[Circular]"`
	}
	return string(data)
}
