package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// ExecuteTransactionBody is the request body for executing the selected
// transaction.
type ExecuteTransactionBody struct {
	Amount          string `json:"amount" required:"true" doc:"Decimal amount; ignored for balance inquiry"`
	TargetAccountID string `json:"targetAccountId,omitempty" doc:"Target account, transfers only"`
}

// ExecuteTransactionInput is the Huma input for executing a transaction.
type ExecuteTransactionInput struct {
	Body ExecuteTransactionBody
}

// ExecuteTransactionOutput is the Huma output for executing a transaction.
// The record is returned whether the attempt succeeded or failed; business
// failures surface as a FAILED status, not an HTTP error.
type ExecuteTransactionOutput struct {
	Body TransactionBody
}

// ExecuteTransactionHandler handles POST /v1/session/execute.
type ExecuteTransactionHandler struct {
	Session sessionDriver
}

// NewExecuteTransactionHandler creates a new ExecuteTransactionHandler.
func NewExecuteTransactionHandler(session sessionDriver) *ExecuteTransactionHandler {
	return &ExecuteTransactionHandler{Session: session}
}

// Register registers the execute endpoint with the Huma API.
func (h *ExecuteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "execute-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/session/execute",
		Summary:     "Execute transaction",
		Description: "Runs the selected transaction and returns its record.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *ExecuteTransactionHandler) handle(ctx context.Context, input *ExecuteTransactionInput) (*ExecuteTransactionOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	tx, err := h.Session.Execute(amount, input.Body.TargetAccountID)
	if err != nil {
		return nil, mapSessionError(err)
	}
	return &ExecuteTransactionOutput{Body: transactionBody(tx)}, nil
}
