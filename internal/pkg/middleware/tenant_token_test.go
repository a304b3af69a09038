package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/greytg/bridge/internal/pkg/jwt"
	"github.com/greytg/bridge/internal/pkg/models"
)

const testSecret = "test-secret"

func newTokenConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{Secret: testSecret, Issuer: "bridge", Expiration: 60},
	}
}

func newGuardedEcho() *echo.Echo {
	e := echo.New()
	e.GET("/tenants/:tenant_id/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"tenant_id": c.Get("tenant_id"),
		})
	}, TenantTokenMiddleware(testSecret))
	return e
}

func TestTenantTokenMiddleware_ValidToken(t *testing.T) {
	// Arrange
	tenantID := uuid.New()
	token, err := jwtpkg.GenerateTenantToken(tenantID, newTokenConfig())
	require.NoError(t, err)

	e := newGuardedEcho()
	req := httptest.NewRequest(http.MethodGet, "/tenants/"+tenantID.String()+"/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), tenantID.String())
}

func TestTenantTokenMiddleware_WrongTenant(t *testing.T) {
	// Arrange
	token, err := jwtpkg.GenerateTenantToken(uuid.New(), newTokenConfig())
	require.NoError(t, err)

	e := newGuardedEcho()
	req := httptest.NewRequest(http.MethodGet, "/tenants/"+uuid.New().String()+"/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden")
}

func TestTenantTokenMiddleware_MissingToken(t *testing.T) {
	// Arrange
	e := newGuardedEcho()
	req := httptest.NewRequest(http.MethodGet, "/tenants/"+uuid.New().String()+"/status", nil)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTenantTokenMiddleware_GarbageToken(t *testing.T) {
	// Arrange
	e := newGuardedEcho()
	req := httptest.NewRequest(http.MethodGet, "/tenants/"+uuid.New().String()+"/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
