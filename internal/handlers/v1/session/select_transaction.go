package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/atm"
)

// SelectTransactionBody is the request body for selecting a transaction type.
type SelectTransactionBody struct {
	Type string `json:"type" required:"true" doc:"BALANCE_INQUIRY, WITHDRAWAL, DEPOSIT, or TRANSFER"`
}

// SelectTransactionInput is the Huma input for selecting a transaction type.
type SelectTransactionInput struct {
	Body SelectTransactionBody
}

// SelectTransactionOutput is the Huma output for selecting a transaction type.
type SelectTransactionOutput struct {
	Body SessionStateBody
}

// SelectTransactionHandler handles POST /v1/session/transaction.
type SelectTransactionHandler struct {
	Session sessionDriver
}

// NewSelectTransactionHandler creates a new SelectTransactionHandler.
func NewSelectTransactionHandler(session sessionDriver) *SelectTransactionHandler {
	return &SelectTransactionHandler{Session: session}
}

// Register registers the select-transaction endpoint with the Huma API.
func (h *SelectTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "select-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/session/transaction",
		Summary:     "Select transaction",
		Description: "Selects (or reselects) the transaction type to execute.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *SelectTransactionHandler) handle(ctx context.Context, input *SelectTransactionInput) (*SelectTransactionOutput, error) {
	txType, err := atm.ParseTransactionType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction type", err)
	}
	if err := h.Session.SelectTransaction(txType); err != nil {
		return nil, mapSessionError(err)
	}
	return &SelectTransactionOutput{Body: stateBody(h.Session.Status())}, nil
}
