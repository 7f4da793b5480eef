package errs

import (
	"errors"
	"net/http"

	"github.com/deppfellow/superheroes/internal/model"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional client-facing messages (if empty, message is used)
//
// This is designed for validation and “you sent garbage” cases.
func NewBadRequestError(message string, code *string, errors []string) *HTTPError {
	// Default code comes from HTTP status text:
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	// If caller supplies custom code pointer, use it.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts an entity validation failure into a 400 Bad Request.
//
// The model message is returned to the client as is:
//
//	return errs.ValidationError(err)
//
// Errors that are not *model.ValidationError still become a 400 with
// their own message.
func ValidationError(err error) *HTTPError {
	code := "VALIDATION_FAILED"
	message := err.Error()

	// Unwrap to the model error so wrapping context stays out of the body.
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		code = MakeUpperCaseWithUnderscores(vErr.Field) + "_INVALID"
		message = vErr.Message
	}

	return NewBadRequestError(message, &code, []string{message})
}
