package constants

const (
	AppName = "equiptrack"
	Version = "v0.2.0"

	// DateFormat is the wire format for all dates (YYYY-MM-DD, ISO 8601)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is how dates are rendered for the operator
	DisplayDateFormat = "Jan 02, 2006"

	// DefaultAPIBaseURL points at a locally running equipment service
	DefaultAPIBaseURL = "http://localhost:8080"

	// DefaultHTTPTimeoutSeconds bounds every API request
	DefaultHTTPTimeoutSeconds = 15
)
