package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInactiveAccount is returned when the account has been deactivated.
	ErrInactiveAccount = errors.New("inactive user account")
	// ErrUnauthenticated is returned for missing, invalid, expired or revoked tokens.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrMealNotFound is returned when a meal is missing or owned by someone else.
	ErrMealNotFound = errors.New("meal not found")
	// ErrMealExists is returned when creating a second meal for the same user and date.
	ErrMealExists = errors.New("meal already exists for this date")
	// ErrInvalidImage is returned when a photo payload cannot be decoded or is not an image.
	ErrInvalidImage = errors.New("invalid image")
	// ErrAIUnavailable is returned when the completion service fails. Callers may retry.
	ErrAIUnavailable = errors.New("analysis service unavailable, please try again")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors (possibly wrapped) to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInactiveAccount):
		return NewHTTPError(http.StatusForbidden, ErrInactiveAccount.Error(), "ACCOUNT_INACTIVE")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrMealNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMealNotFound.Error(), "MEAL_NOT_FOUND")
	case errors.Is(err, ErrMealExists):
		return NewHTTPError(http.StatusConflict, ErrMealExists.Error(), "MEAL_EXISTS")
	case errors.Is(err, ErrInvalidImage):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidImage.Error(), "INVALID_IMAGE")
	case errors.Is(err, ErrAIUnavailable):
		return NewHTTPError(http.StatusBadGateway, ErrAIUnavailable.Error(), "AI_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
