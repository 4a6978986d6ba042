package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// EjectCardInput is the Huma input for ejecting the card.
type EjectCardInput struct{}

// EjectCardOutput is the Huma output for ejecting the card.
type EjectCardOutput struct {
	Body SessionStateBody
}

// EjectCardHandler handles DELETE /v1/session/card.
type EjectCardHandler struct {
	Session sessionDriver
}

// NewEjectCardHandler creates a new EjectCardHandler.
func NewEjectCardHandler(session sessionDriver) *EjectCardHandler {
	return &EjectCardHandler{Session: session}
}

// Register registers the eject-card endpoint with the Huma API.
func (h *EjectCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "eject-card",
		Method:      http.MethodDelete,
		Path:        "/v1/session/card",
		Summary:     "Eject card",
		Description: "Returns the card and resets the session to idle.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *EjectCardHandler) handle(ctx context.Context, input *EjectCardInput) (*EjectCardOutput, error) {
	if err := h.Session.EjectCard(); err != nil {
		return nil, mapSessionError(err)
	}
	return &EjectCardOutput{Body: stateBody(h.Session.Status())}, nil
}
