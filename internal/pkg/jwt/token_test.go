package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greytg/bridge/internal/pkg/models"
)

func testConfig(expirationMinutes int) *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Issuer:     "bridge",
			Expiration: expirationMinutes,
		},
	}
}

func TestGenerateAndParseTenantToken(t *testing.T) {
	// Arrange
	tenantID := uuid.New()
	cfg := testConfig(60)

	// Act
	token, err := GenerateTenantToken(tenantID, cfg)
	require.NoError(t, err)

	claims, err := ParseTenantToken(token, cfg.JWT.Secret)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, "bridge", claims.Issuer)
	assert.Equal(t, tenantID.String(), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerateTenantTokenWithoutExpiration(t *testing.T) {
	// Arrange
	tenantID := uuid.New()
	cfg := testConfig(0)

	// Act
	token, err := GenerateTenantToken(tenantID, cfg)
	require.NoError(t, err)

	claims, err := ParseTenantToken(token, cfg.JWT.Secret)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseTenantTokenWrongSecret(t *testing.T) {
	// Arrange
	token, err := GenerateTenantToken(uuid.New(), testConfig(60))
	require.NoError(t, err)

	// Act
	_, err = ParseTenantToken(token, "other-secret")

	// Assert
	assert.Error(t, err)
}

func TestParseTenantTokenGarbage(t *testing.T) {
	_, err := ParseTenantToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
