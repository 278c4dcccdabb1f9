package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type mockSettingsService struct {
	mock.Mock
}

func (m *mockSettingsService) GetSettings(ctx context.Context) ledger.Settings {
	return m.Called(ctx).Get(0).(ledger.Settings)
}

func (m *mockSettingsService) UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(ledger.Settings), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSettingsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_GetSettings(t *testing.T) {
	mockSvc := new(mockSettingsService)
	mockSvc.On("GetSettings", mock.Anything).Return(ledger.DefaultSettings())

	resp := newTestAPI(t, mockSvc).Get("/v1/settings")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VND", body.DefaultCurrency)
	assert.True(t, body.RememberLastAccount)
}

func TestHTTP_UpdateSettings(t *testing.T) {
	updated := ledger.DefaultSettings()
	updated.Theme = "dark"
	updated.RememberLastCurrency = false
	mockSvc := new(mockSettingsService)
	mockSvc.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(p ledger.SettingsPatch) bool {
		return p.Theme.GetOrZero() == "dark" && p.RememberLastCurrency.IsValue() && !p.DefaultCurrency.IsValue()
	})).Return(updated, nil)

	resp := newTestAPI(t, mockSvc).Patch("/v1/settings", map[string]any{"theme": "dark", "rememberLastCurrency": false})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dark", body.Theme)
	assert.False(t, body.RememberLastCurrency)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateSettings_Errors(t *testing.T) {
	mockSvc := new(mockSettingsService)
	mockSvc.On("UpdateSettings", mock.Anything, mock.Anything).Return(ledger.Settings{}, errors.New("boom"))
	api := newTestAPI(t, mockSvc)

	assert.Equal(t, http.StatusUnprocessableEntity, api.Patch("/v1/settings", map[string]any{"defaultCurrency": "EURO"}).Code)
	assert.Equal(t, http.StatusInternalServerError, api.Patch("/v1/settings", map[string]any{"theme": "x"}).Code)
}
