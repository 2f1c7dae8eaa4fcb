package auth

import (
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"booknotes/internal/errors"
)

// ContextKey is where the middleware binds the resolved *Claims.
const ContextKey = "user"

// Middleware guards protected routes. It extracts the bearer token from the
// Authorization header, validates it through the JWT service and binds the
// resolved claims into the request context. A missing or malformed header and
// a failed validation are reported with different messages, but both are 401.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// The header itself decides which failure this was: anything that
			// does not split into a literal "Bearer" scheme plus a non-empty
			// token never reached validation.
			parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "Missing auth token",
					Code:  "MISSING_AUTH_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// CurrentUser returns the claims bound by Middleware for this request.
func CurrentUser(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Missing auth token",
			Code:  "MISSING_AUTH_TOKEN",
		})
	}
	return claims, nil
}
