package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

type AccountIDInput struct {
	ID string `path:"id" doc:"Account ID"`
}

type GetAccountOutput struct {
	Body Account
}

// UpdateAccountBody lists the fields to overwrite. Absent fields are kept.
type UpdateAccountBody struct {
	GroupID         *string `json:"groupID,omitempty" doc:"Account group ID"`
	Name            *string `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Description     *string `json:"description,omitempty" doc:"Description"`
	DateStart       *string `json:"dateStart,omitempty" doc:"RFC3339 opening date"`
	BalanceStart    *string `json:"balanceStart,omitempty" doc:"Decimal starting balance"`
	Currency        *string `json:"currency,omitempty" doc:"ISO 4217 currency code"`
	Note            *string `json:"note,omitempty" doc:"Free text note"`
	ShowInSelection *bool   `json:"showInSelection,omitempty" doc:"Offered when picking an account"`
}

type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account ID"`
	Body UpdateAccountBody
}

type accountManager interface {
	GetAccount(ctx context.Context, id string) (*ledger.Account, error)
	UpdateAccount(ctx context.Context, id string, patch ledger.AccountPatch) error
	DeleteAccount(ctx context.Context, id string) error
}

// AccountHandler serves single-account reads and mutations.
type AccountHandler struct {
	AccountService accountManager
}

func NewAccountHandler(svc accountManager) *AccountHandler {
	return &AccountHandler{AccountService: svc}
}

func (h *AccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get account",
		Tags:        []string{"Accounts"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID:   "update-account",
		Method:        http.MethodPatch,
		Path:          "/v1/account/{id}",
		Summary:       "Update account",
		Description:   "Merges the given fields and recomputes every balance. Unknown IDs are ignored.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete account",
		Description:   "Removes the account. Its transactions are kept and report the account as unknown.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *AccountHandler) get(ctx context.Context, input *AccountIDInput) (*GetAccountOutput, error) {
	acc, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, v1.ServiceError("account not found", err)
	}
	return &GetAccountOutput{Body: fromLedger(*acc)}, nil
}

func parseUpdateAccountInput(input *UpdateAccountInput) (ledger.AccountPatch, error) {
	b := input.Body
	dateStart, err := v1.OptionalTime("dateStart", b.DateStart)
	if err != nil {
		return ledger.AccountPatch{}, err
	}
	balanceStart, err := v1.OptionalDecimal("balanceStart", b.BalanceStart)
	if err != nil {
		return ledger.AccountPatch{}, err
	}
	return ledger.AccountPatch{
		GroupID:         v1.Optional(b.GroupID),
		Name:            v1.Optional(b.Name),
		Description:     v1.Optional(b.Description),
		DateStart:       dateStart,
		BalanceStart:    balanceStart,
		Currency:        v1.Optional(b.Currency),
		Note:            v1.Optional(b.Note),
		ShowInSelection: v1.Optional(b.ShowInSelection),
	}, nil
}

func (h *AccountHandler) update(ctx context.Context, input *UpdateAccountInput) (*struct{}, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
	}
	patch, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}
	if err := h.AccountService.UpdateAccount(ctx, input.ID, patch); err != nil {
		return nil, v1.ServiceError("failed to update account", err)
	}
	return nil, nil
}

func (h *AccountHandler) delete(ctx context.Context, input *AccountIDInput) (*struct{}, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
	}
	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, v1.ServiceError("failed to delete account", err)
	}
	return nil, nil
}
