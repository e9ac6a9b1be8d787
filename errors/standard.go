package errors

import "net/http"

// Standard HTTP error kinds. Each is declared once and shared process-wide;
// kinds are immutable, so concurrent use needs no synchronization.
var (
	BadRequestError                    = Declare(400, CodeBadRequest, "Bad Request")
	UnauthorizedError                  = Declare(401, CodeUnauthorized, "Unauthorized")
	PaymentRequiredError               = Declare(402, CodePaymentRequired, "Payment Required")
	ForbiddenError                     = Declare(403, CodeForbidden, "Forbidden")
	NotFoundError                      = Declare(404, CodeNotFound, "Not Found")
	MethodNotAllowedError              = Declare(405, CodeMethodNotAllowed, "Method Not Allowed")
	NotAcceptableError                 = Declare(406, CodeNotAcceptable, "Not Acceptable")
	ProxyAuthenticationRequiredError   = Declare(407, CodeProxyAuthenticationRequired, "Proxy Authentication Required")
	RequestTimeoutError                = Declare(408, CodeRequestTimeout, "Request Timeout")
	ConflictError                      = Declare(409, CodeConflict, "Conflict")
	GoneError                          = Declare(410, CodeGone, "Gone")
	LengthRequiredError                = Declare(411, CodeLengthRequired, "Length Required")
	PreconditionFailedError            = Declare(412, CodePreconditionFailed, "Precondition Failed")
	PayloadTooLargeError               = Declare(413, CodePayloadTooLarge, "Payload Too Large")
	UriTooLongError                    = Declare(414, CodeUriTooLong, "URI Too Long")
	UnsupportedMediaTypeError          = Declare(415, CodeUnsupportedMediaType, "Unsupported Media Type")
	RangeNotSatisfiableError           = Declare(416, CodeRangeNotSatisfiable, "Range Not Satisfiable")
	ExpectationFailedError             = Declare(417, CodeExpectationFailed, "Expectation Failed")
	ImATeapotError                     = Declare(418, CodeImATeapot, "I'm a teapot")
	MisdirectedRequestError            = Declare(421, CodeMisdirectedRequest, "Misdirected Request")
	UnprocessableEntityError           = Declare(422, CodeUnprocessableEntity, "Unprocessable Entity")
	LockedError                        = Declare(423, CodeLocked, "Locked")
	FailedDependencyError              = Declare(424, CodeFailedDependency, "Failed Dependency")
	TooEarlyError                      = Declare(425, CodeTooEarly, "Too Early")
	UpgradeRequiredError               = Declare(426, CodeUpgradeRequired, "Upgrade Required")
	PreconditionRequiredError          = Declare(428, CodePreconditionRequired, "Precondition Required")
	TooManyRequestsError               = Declare(429, CodeTooManyRequests, "Too Many Requests")
	RequestHeaderFieldsTooLargeError   = Declare(431, CodeRequestHeaderFieldsTooLarge, "Request Header Fields Too Large")
	UnavailableForLegalReasonsError    = Declare(451, CodeUnavailableForLegalReasons, "Unavailable For Legal Reasons")
	InternalServerError                = Declare(500, CodeInternalServerError, "Internal Server Error")
	NotImplementedError                = Declare(501, CodeNotImplemented, "Not Implemented")
	BadGatewayError                    = Declare(502, CodeBadGateway, "Bad Gateway")
	ServiceUnavailableError            = Declare(503, CodeServiceUnavailable, "Service Unavailable")
	GatewayTimeoutError                = Declare(504, CodeGatewayTimeout, "Gateway Timeout")
	HttpVersionNotSupportedError       = Declare(505, CodeHttpVersionNotSupported, "HTTP Version Not Supported")
	VariantAlsoNegotiatesError         = Declare(506, CodeVariantAlsoNegotiates, "Variant Also Negotiates")
	InsufficientStorageError           = Declare(507, CodeInsufficientStorage, "Insufficient Storage")
	LoopDetectedError                  = Declare(508, CodeLoopDetected, "Loop Detected")
	BandwidthLimitExceededError        = Declare(509, CodeBandwidthLimitExceeded, "Bandwidth Limit Exceeded")
	NotExtendedError                   = Declare(510, CodeNotExtended, "Not Extended")
	NetworkAuthenticationRequiredError = Declare(511, CodeNetworkAuthenticationRequired, "Network Authentication Required")
)

// ValidationError is raised when inbound data fails schema checks. Its message
// template is a bare placeholder filled with the first failure's headline.
var ValidationError = Declare(http.StatusBadRequest, CodeValidation, "%s",
	WithDescription("A validation error occurred in the request parameters, query, or body"),
	WithExample(Example{
		Message: `params/id must match format "uuid"`,
		Validation: []ValidationItem{{
			InstancePath: "/id",
			SchemaPath:   "#/properties/id/format",
			Keyword:      "format",
			Params:       map[string]any{"format": "uuid"},
			Message:      `must match format "uuid"`,
		}},
		ValidationContext: "params",
	}),
)

// ValidationErrorName is the catalog name of ValidationError.
const ValidationErrorName = "ValidationError"

type entry struct {
	name string
	kind *Kind
}

// httpKinds is the standard table, one kind per status code, in status order.
var httpKinds = []entry{
	{"BadRequestError", BadRequestError},
	{"UnauthorizedError", UnauthorizedError},
	{"PaymentRequiredError", PaymentRequiredError},
	{"ForbiddenError", ForbiddenError},
	{"NotFoundError", NotFoundError},
	{"MethodNotAllowedError", MethodNotAllowedError},
	{"NotAcceptableError", NotAcceptableError},
	{"ProxyAuthenticationRequiredError", ProxyAuthenticationRequiredError},
	{"RequestTimeoutError", RequestTimeoutError},
	{"ConflictError", ConflictError},
	{"GoneError", GoneError},
	{"LengthRequiredError", LengthRequiredError},
	{"PreconditionFailedError", PreconditionFailedError},
	{"PayloadTooLargeError", PayloadTooLargeError},
	{"UriTooLongError", UriTooLongError},
	{"UnsupportedMediaTypeError", UnsupportedMediaTypeError},
	{"RangeNotSatisfiableError", RangeNotSatisfiableError},
	{"ExpectationFailedError", ExpectationFailedError},
	{"ImATeapotError", ImATeapotError},
	{"MisdirectedRequestError", MisdirectedRequestError},
	{"UnprocessableEntityError", UnprocessableEntityError},
	{"LockedError", LockedError},
	{"FailedDependencyError", FailedDependencyError},
	{"TooEarlyError", TooEarlyError},
	{"UpgradeRequiredError", UpgradeRequiredError},
	{"PreconditionRequiredError", PreconditionRequiredError},
	{"TooManyRequestsError", TooManyRequestsError},
	{"RequestHeaderFieldsTooLargeError", RequestHeaderFieldsTooLargeError},
	{"UnavailableForLegalReasonsError", UnavailableForLegalReasonsError},
	{"InternalServerError", InternalServerError},
	{"NotImplementedError", NotImplementedError},
	{"BadGatewayError", BadGatewayError},
	{"ServiceUnavailableError", ServiceUnavailableError},
	{"GatewayTimeoutError", GatewayTimeoutError},
	{"HttpVersionNotSupportedError", HttpVersionNotSupportedError},
	{"VariantAlsoNegotiatesError", VariantAlsoNegotiatesError},
	{"InsufficientStorageError", InsufficientStorageError},
	{"LoopDetectedError", LoopDetectedError},
	{"BandwidthLimitExceededError", BandwidthLimitExceededError},
	{"NotExtendedError", NotExtendedError},
	{"NetworkAuthenticationRequiredError", NetworkAuthenticationRequiredError},
}
