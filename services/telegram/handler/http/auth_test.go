package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
	"github.com/greytg/bridge/services/telegram/mocks"
)

func newTenantContext(e *echo.Echo, method, target, body string, tenantID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tenant_id")
	c.SetParamValues(tenantID)
	return c, rec
}

func TestStartAuth_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)
	tenantID := uuid.New()

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/"+tenantID.String()+"/auth/start",
		`{"phone": "+6281234567890"}`, tenantID.String())

	mockUC.EXPECT().
		StartAuth(gomock.Any(), tenantID, "+6281234567890").
		Return(&models.AuthStartResponse{
			OK:             true,
			Message:        "Login code sent.",
			Delivery:       "telegram_app",
			TimeoutSeconds: 60,
		}, nil)

	// Act
	err := authHandler.StartAuth(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, "telegram_app", response["delivery"])
}

func TestStartAuth_InvalidTenantID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/not-a-uuid/auth/start",
		`{"phone": "+6281234567890"}`, "not-a-uuid")

	// Act
	err := authHandler.StartAuth(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid_tenant", response["error"])
}

func TestStartAuth_CooldownCarriesRetryAfter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)
	tenantID := uuid.New()

	cooldownErr := telegram.NewError(telegram.ErrCooldown, "Code already sent.")
	cooldownErr.RetryAfter = 42

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/"+tenantID.String()+"/auth/start",
		`{"phone": "+6281234567890"}`, tenantID.String())

	mockUC.EXPECT().
		StartAuth(gomock.Any(), tenantID, "+6281234567890").
		Return(nil, cooldownErr)

	// Act
	err := authHandler.StartAuth(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "cooldown", response["error"])
	assert.Equal(t, float64(42), response["retry_after_seconds"])
}

func TestVerifyAuth_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)
	tenantID := uuid.New()

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/"+tenantID.String()+"/auth/verify",
		`{"phone": "+6281234567890", "code": "12345"}`, tenantID.String())

	mockUC.EXPECT().
		VerifyAuth(gomock.Any(), tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *models.AuthVerifyRequest) error {
			assert.Equal(t, "+6281234567890", req.Phone)
			assert.Equal(t, "12345", req.Code)
			return nil
		})

	// Act
	err := authHandler.VerifyAuth(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["authorized"])
}

func TestVerifyAuth_TwoFactorRequired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)
	tenantID := uuid.New()

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/"+tenantID.String()+"/auth/verify",
		`{"phone": "+6281234567890", "code": "12345"}`, tenantID.String())

	mockUC.EXPECT().
		VerifyAuth(gomock.Any(), tenantID, gomock.Any()).
		Return(telegram.NewError(telegram.ErrTwoFactorRequired, "Two-factor password required."))

	// Act
	err := authHandler.VerifyAuth(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "2fa_required", response["error"])
}

func TestLogout_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelegramUC(ctrl)
	authHandler := NewAuthHandler(mockUC)
	tenantID := uuid.New()

	e := echo.New()
	c, rec := newTenantContext(e, http.MethodPost, "/tenants/"+tenantID.String()+"/auth/logout",
		"", tenantID.String())

	mockUC.EXPECT().Logout(gomock.Any(), tenantID).Return(nil)

	// Act
	err := authHandler.Logout(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
