package logger

import (
	stderrors "errors"
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldRoute      = "route"
	FieldStatusCode = "status_code"
	FieldErrorCode  = "error_code"
	FieldClientIP   = "client_ip"
	FieldError      = "error"
	FieldCauseChain = "cause_chain"
	FieldDuration   = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorChainFields describes err and the causes beneath it. cause_chain
// holds one message per unwrapped error, outermost first, and is omitted
// when err wraps nothing. Joined errors are followed through their first
// branch only.
func ErrorChainFields(err error) map[string]interface{} {
	if err == nil {
		return map[string]interface{}{}
	}
	fields := map[string]interface{}{FieldError: err.Error()}

	var chain []string
	for cause := unwrapOne(err); cause != nil; cause = unwrapOne(cause) {
		chain = append(chain, cause.Error())
	}
	if len(chain) > 0 {
		fields[FieldCauseChain] = chain
	}
	return fields
}

func unwrapOne(err error) error {
	if next := stderrors.Unwrap(err); next != nil {
		return next
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if e != nil {
				return e
			}
		}
	}
	return nil
}

// DurationFields creates fields for a timed operation.
func DurationFields(d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldDuration: d.Milliseconds(),
	}
}

// Merge copies every map into a new one; later keys win.
func Merge(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
