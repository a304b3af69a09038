package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/greytg/bridge/internal/pkg/jwt"
	"github.com/greytg/bridge/internal/utils"
)

// TenantTokenMiddleware validates the bearer token on tenant-scoped routes
// and rejects requests whose token is bound to a different tenant than the
// one in the path.
func TenantTokenMiddleware(secret string) echo.MiddlewareFunc {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &jwtpkg.TenantClaims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "unauthorized", "Invalid or missing token")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "unauthorized", "Invalid token")
			}
			claims, ok := token.Claims.(*jwtpkg.TenantClaims)
			if !ok {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "unauthorized", "Invalid token claims")
			}

			if pathTenant := c.Param("tenant_id"); pathTenant != "" && claims.TenantID != pathTenant {
				return utils.ErrorResponseHandler(c, http.StatusForbidden, "forbidden", "Token is not valid for this tenant")
			}

			c.Set("tenant_id", claims.TenantID)
			return next(c)
		})
	}
}
