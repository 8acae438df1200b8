package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"jobmatrix/internal/auth"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
)

// UserContextKey is where the authenticated *model.User is stored.
const UserContextKey = "user"

var errNotAuthenticated = apperrors.NewHTTPError(http.StatusUnauthorized,
	"Authentication credentials were not provided.", "NOT_AUTHENTICATED")

// JWT verifies the bearer token and stores the token's user in the context.
func JWT(authn *auth.Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  UserContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authn.Verify(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extraction *echojwt.TokenExtractionError
			if errors.As(err, &extraction) {
				return echo.NewHTTPError(errNotAuthenticated.StatusCode, errNotAuthenticated.ToErrorResponse())
			}
			he := apperrors.MapErrorToHTTP(err)
			if errors.Is(err, apperrors.ErrNotFound) {
				// the token names a user that no longer exists
				he.StatusCode = http.StatusUnauthorized
			}
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		},
	})
}

// CurrentUser returns the authenticated user, or nil on public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}

// Require rejects requests whose user fails check.
func Require(check auth.Check) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(errNotAuthenticated.StatusCode, errNotAuthenticated.ToErrorResponse())
			}
			if err := auth.Authorize(user, check); err != nil {
				he := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireRole passes users holding any of roles.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	checks := make([]auth.Check, len(roles))
	for i, role := range roles {
		checks[i] = auth.HasRole(role)
	}
	return Require(auth.AnyOf(checks...))
}
