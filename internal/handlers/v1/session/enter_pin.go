package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// EnterPINBody is the request body for PIN entry.
type EnterPINBody struct {
	PIN string `json:"pin" required:"true" doc:"Account PIN"`
}

// EnterPINInput is the Huma input for PIN entry.
type EnterPINInput struct {
	Body EnterPINBody
}

// EnterPINOutput is the Huma output for PIN entry.
type EnterPINOutput struct {
	Body SessionStateBody
}

// EnterPINHandler handles POST /v1/session/pin.
type EnterPINHandler struct {
	Session sessionDriver
}

// NewEnterPINHandler creates a new EnterPINHandler.
func NewEnterPINHandler(session sessionDriver) *EnterPINHandler {
	return &EnterPINHandler{Session: session}
}

// Register registers the enter-pin endpoint with the Huma API.
func (h *EnterPINHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "enter-pin",
		Method:      http.MethodPost,
		Path:        "/v1/session/pin",
		Summary:     "Enter PIN",
		Description: "Validates the PIN for the inserted card's account.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *EnterPINHandler) handle(ctx context.Context, input *EnterPINInput) (*EnterPINOutput, error) {
	if err := h.Session.EnterPIN(input.Body.PIN); err != nil {
		return nil, mapSessionError(err)
	}
	return &EnterPINOutput{Body: stateBody(h.Session.Status())}, nil
}
