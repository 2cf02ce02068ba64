package routes

var (
	RequestDurationSecondsBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}
	RequestLabels                 = []string{"operation", "code"}
	DurationLabels                = []string{"operation"}
)

const (
	// API route constants
	MetricsRouteAPI = "/metrics"
	UsernameParam   = "username"
	OrderQueryParam = "order"

	// Operation names used for tracing and metrics labels
	OperationList    = "list_users"
	OperationGet     = "get_user"
	OperationReplace = "replace_user"
	OperationCreate  = "create_user"
	OperationModify  = "modify_user"
	OperationDelete  = "delete_user"

	// Content-Type constants
	ContentType               = "Content-Type"
	ContentTypeJson           = "application/json"
	ContentTypeJavascript     = "text/javascript"
	ContentTypeText           = "text/plain"
	ContentTypeTextUTF8       = "text/plain; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	LocationHeader            = "Location"

	// Request body limit for PUT
	MaxBodyBytes = 1 << 20

	// message constants
	MsgModifySuccess    = "Success!"
	MsgUserExistsFormat = "User %s already exists"

	// Error messages
	ErrFailedToEncodeResponse = "failed to encode response"
	ErrFailedToReadBody       = "failed to read request body"
	ErrFailedToParseForm      = "failed to parse form"
	ErrFailedToDecodeForm     = "failed to decode form"
	ErrMissingUsername        = "form has no username field"

	// metrics constants
	UserRequestsTotal              = "user_requests_total"
	UserRequestsTotalHelp          = "Total number of user directory requests by operation and status code"
	UserRequestDurationSeconds     = "user_request_duration_seconds"
	UserRequestDurationSecondsHelp = "Duration of user directory requests in seconds"
)
