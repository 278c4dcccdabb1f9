package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name            string `json:"name" minLength:"1" doc:"Account name"`
	GroupID         string `json:"groupID" minLength:"1" doc:"Account group ID"`
	Description     string `json:"description,omitempty" doc:"Description"`
	DateStart       string `json:"dateStart,omitempty" doc:"RFC3339 opening date, defaults to now"`
	BalanceStart    string `json:"balanceStart,omitempty" doc:"Opening balance (e.g. '0' or '1234.56'), defaults to 0. Booked as a reconciled income transaction and reported back as openingBalance"`
	Currency        string `json:"currency,omitempty" doc:"ISO 4217 code, defaults to the settings currency"`
	Note            string `json:"note,omitempty" doc:"Free text note"`
	ShowInSelection bool   `json:"showInSelection,omitempty" doc:"Offered when picking an account for a transaction"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	Account Account `json:"account" doc:"Created account"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, data ledger.NewAccount) (ledger.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create an account",
		Description:   "Creates an account. A non-zero opening balance is booked as a reconciled income transaction.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (ledger.NewAccount, error) {
	balanceStart, err := v1.ParseDecimal("balanceStart", input.Body.BalanceStart)
	if err != nil {
		return ledger.NewAccount{}, err
	}
	dateStart, err := v1.ParseTime("dateStart", input.Body.DateStart)
	if err != nil {
		return ledger.NewAccount{}, err
	}

	return ledger.NewAccount{
		GroupID:         input.Body.GroupID,
		Name:            input.Body.Name,
		Description:     input.Body.Description,
		DateStart:       dateStart,
		BalanceStart:    balanceStart,
		Currency:        input.Body.Currency,
		Note:            input.Body.Note,
		ShowInSelection: input.Body.ShowInSelection,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	data, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, data)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, v1.ServiceError("failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", created.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{Account: fromLedger(created)},
	}, nil
}
