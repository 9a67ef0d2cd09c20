package middleware

import (
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
	"grocery-bazaar-backend/internal/token"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// RequireAuth rejects requests without a verifiable bearer token. 401 when no
// token is presented, 403 when the token is malformed, expired or forged.
func RequireAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized Access",
				})
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			identity, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized Access",
				})
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireAuth. The role check reads the user
// record rather than trusting the token's role claim, so a promotion or
// deletion takes effect before the token expires.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error:   true,
					Message: "Forbidden Access",
				})
			}

			user, err := users.FindByEmail(c.Request().Context(), identity.Email)
			if err != nil || user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error:   true,
					Message: "Forbidden Access",
				})
			}

			return next(c)
		}
	}
}

// IdentityFrom returns the verified identity set by RequireAuth, or nil on an
// unauthenticated route.
func IdentityFrom(c echo.Context) *token.Identity {
	identity, _ := c.Get(identityKey).(*token.Identity)
	return identity
}
