package constant

const (
	// ContextKeyRequestID is the fiber.Ctx locals key holding the request id.
	ContextKeyRequestID = "requestId"

	// RequestIDHeader is the response header carrying the request id.
	RequestIDHeader = "X-Mingpan-Request-ID"

	// CacheSep joins the parts of composite cache keys.
	CacheSep = "|"

	// DefaultBirthHour is assumed when the request omits the time of birth.
	DefaultBirthHour = 12

	// AdminKeyHeader authenticates requests on the admin endpoint group.
	AdminKeyHeader = "X-Mingpan-Admin-Key"
)
