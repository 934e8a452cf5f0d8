package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtime/internal/auth"
	"foodtime/internal/errors"
	"foodtime/internal/model"
)

// Context keys set by the authentication middleware.
const (
	ClaimsContextKey = "token_claims"
	UserContextKey   = "current_user"
)

// currentUser returns the user resolved for this request. Routes using it are
// always behind the authentication middleware.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, errorResponse(errors.ErrUnauthenticated)
	}
	return user, nil
}

func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errorResponse(errors.ErrUnauthenticated)
	}
	return claims, nil
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return validationError(err.Error())
	}
	return nil
}

func validationError(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: msg,
		Code:  "VALIDATION_ERROR",
	})
}

// errorResponse maps a domain error to its HTTP status and JSON body.
func errorResponse(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
