package errs

import "strings"

// ErrorResponse is the body written for single-message failures
// (404, 500, ...).
//
//	{ "error": "Hero not found" }
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body written for 400 Bad Request.
// Every validation or integrity failure ends up as one entry.
//
//	{ "errors": ["Description must be at least 20 characters long."] }
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is never serialized directly; Body() picks the wire shape.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logged only.
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: list of messages returned to the client on 400.
type HTTPError struct {
	Code    string
	Message string
	Status  int

	// Errors holds the client-facing messages of a 400.
	// When empty, Message is used as the only entry.
	Errors []string
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// This implementation returns true if `target` is also a *HTTPError.
// It does NOT compare Code/Status/etc.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Body returns the JSON value to write for this error.
//
// 400 errors use the plural {"errors": [...]} shape, everything else
// uses {"error": "..."}.
func (e *HTTPError) Body() any {
	if e.Status == 400 {
		messages := e.Errors
		if len(messages) == 0 {
			messages = []string{e.Message}
		}
		return ErrorsResponse{Errors: messages}
	}
	return ErrorResponse{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
