package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

// Settings is the API model for the ledger preferences.
type Settings struct {
	DefaultCurrency      string `json:"defaultCurrency" doc:"ISO 4217 code used for new accounts"`
	Theme                string `json:"theme" doc:"UI theme name"`
	Language             string `json:"language" doc:"UI language"`
	RememberLastAccount  bool   `json:"rememberLastAccount" doc:"Remember the account of the last transaction"`
	RememberLastCategory bool   `json:"rememberLastCategory" doc:"Remember the category of the last transaction"`
	RememberLastCurrency bool   `json:"rememberLastCurrency" doc:"Remember the currency of the last transaction"`
	LastAccountID        string `json:"lastAccountID,omitempty" doc:"Account of the last transaction"`
	LastCategoryID       string `json:"lastCategoryID,omitempty" doc:"Category of the last transaction"`
	LastCurrency         string `json:"lastCurrency,omitempty" doc:"Currency of the last transaction"`
}

func fromLedger(s ledger.Settings) Settings {
	return Settings(s)
}

type SettingsOutput struct {
	Body Settings
}

type UpdateSettingsBody struct {
	DefaultCurrency      *string `json:"defaultCurrency,omitempty" minLength:"3" maxLength:"3" doc:"ISO 4217 code"`
	Theme                *string `json:"theme,omitempty" doc:"UI theme name"`
	Language             *string `json:"language,omitempty" doc:"UI language"`
	RememberLastAccount  *bool   `json:"rememberLastAccount,omitempty"`
	RememberLastCategory *bool   `json:"rememberLastCategory,omitempty"`
	RememberLastCurrency *bool   `json:"rememberLastCurrency,omitempty"`
}

type UpdateSettingsInput struct {
	Body UpdateSettingsBody
}

type settingsManager interface {
	GetSettings(ctx context.Context) ledger.Settings
	UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error)
}

// Handler serves /v1/settings.
type Handler struct {
	CatalogService settingsManager
}

func NewHandler(svc settingsManager) *Handler {
	return &Handler{CatalogService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-settings",
		Method:      http.MethodPatch,
		Path:        "/v1/settings",
		Summary:     "Update settings",
		Description: "Merges the given preferences and returns the result. The last-used values are maintained by transaction creation.",
		Tags:        []string{"Settings"},
	}, h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: fromLedger(h.CatalogService.GetSettings(ctx))}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	b := input.Body
	patch := ledger.SettingsPatch{
		DefaultCurrency:      v1.Optional(b.DefaultCurrency),
		Theme:                v1.Optional(b.Theme),
		Language:             v1.Optional(b.Language),
		RememberLastAccount:  v1.Optional(b.RememberLastAccount),
		RememberLastCategory: v1.Optional(b.RememberLastCategory),
		RememberLastCurrency: v1.Optional(b.RememberLastCurrency),
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("updateSettingsMs")
	}
	updated, err := h.CatalogService.UpdateSettings(ctx, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, v1.ServiceError("failed to update settings", err)
	}
	return &SettingsOutput{Body: fromLedger(updated)}, nil
}
