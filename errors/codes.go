package errors

// Application error codes of the standard catalog. Clients match on these
// values, so they are part of the wire contract and never change.

// Client errors (4xx)
const (
	CodeBadRequest                  = "ERR_BAD_REQUEST"
	CodeUnauthorized                = "ERR_UNAUTHORIZED"
	CodePaymentRequired             = "ERR_PAYMENT_REQUIRED"
	CodeForbidden                   = "ERR_FORBIDDEN"
	CodeNotFound                    = "ERR_NOT_FOUND"
	CodeMethodNotAllowed            = "ERR_METHOD_NOT_ALLOWED"
	CodeNotAcceptable               = "ERR_NOT_ACCEPTABLE"
	CodeProxyAuthenticationRequired = "ERR_PROXY_AUTHENTICATION_REQUIRED"
	CodeRequestTimeout              = "ERR_REQUEST_TIMEOUT"
	CodeConflict                    = "ERR_CONFLICT"
	CodeGone                        = "ERR_GONE"
	CodeLengthRequired              = "ERR_LENGTH_REQUIRED"
	CodePreconditionFailed          = "ERR_PRECONDITION_FAILED"
	CodePayloadTooLarge             = "ERR_PAYLOAD_TOO_LARGE"
	CodeUriTooLong                  = "ERR_URI_TOO_LONG"
	CodeUnsupportedMediaType        = "ERR_UNSUPPORTED_MEDIA_TYPE"
	CodeRangeNotSatisfiable         = "ERR_RANGE_NOT_SATISFIABLE"
	CodeExpectationFailed           = "ERR_EXPECTATION_FAILED"
	CodeImATeapot                   = "ERR_IM_A_TEAPOT"
	CodeMisdirectedRequest          = "ERR_MISDIRECTED_REQUEST"
	CodeUnprocessableEntity         = "ERR_UNPROCESSABLE_ENTITY"
	CodeLocked                      = "ERR_LOCKED"
	CodeFailedDependency            = "ERR_FAILED_DEPENDENCY"
	CodeTooEarly                    = "ERR_TOO_EARLY"
	CodeUpgradeRequired             = "ERR_UPGRADE_REQUIRED"
	CodePreconditionRequired        = "ERR_PRECONDITION_REQUIRED"
	CodeTooManyRequests             = "ERR_TOO_MANY_REQUESTS"
	CodeRequestHeaderFieldsTooLarge = "ERR_REQUEST_HEADER_FIELDS_TOO_LARGE"
	CodeUnavailableForLegalReasons  = "ERR_UNAVAILABLE_FOR_LEGAL_REASONS"
)

// Server errors (5xx)
const (
	CodeInternalServerError           = "ERR_INTERNAL_SERVER_ERROR"
	CodeNotImplemented                = "ERR_NOT_IMPLEMENTED"
	CodeBadGateway                    = "ERR_BAD_GATEWAY"
	CodeServiceUnavailable            = "ERR_SERVICE_UNAVAILABLE"
	CodeGatewayTimeout                = "ERR_GATEWAY_TIMEOUT"
	CodeHttpVersionNotSupported       = "ERR_HTTP_VERSION_NOT_SUPPORTED"
	CodeVariantAlsoNegotiates         = "ERR_VARIANT_ALSO_NEGOTIATES"
	CodeInsufficientStorage           = "ERR_INSUFFICIENT_STORAGE"
	CodeLoopDetected                  = "ERR_LOOP_DETECTED"
	CodeBandwidthLimitExceeded        = "ERR_BANDWIDTH_LIMIT_EXCEEDED"
	CodeNotExtended                   = "ERR_NOT_EXTENDED"
	CodeNetworkAuthenticationRequired = "ERR_NETWORK_AUTHENTICATION_REQUIRED"
)

// CodeValidation is the code carried by request validation failures.
const CodeValidation = "FST_ERR_VALIDATION"
