package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// CancelInput is the Huma input for cancelling the current step.
type CancelInput struct{}

// CancelOutput is the Huma output for cancelling the current step.
type CancelOutput struct {
	Body SessionStateBody
}

// CancelHandler handles POST /v1/session/cancel.
type CancelHandler struct {
	Session sessionDriver
}

// NewCancelHandler creates a new CancelHandler.
func NewCancelHandler(session sessionDriver) *CancelHandler {
	return &CancelHandler{Session: session}
}

// Register registers the cancel endpoint with the Huma API.
func (h *CancelHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "cancel",
		Method:      http.MethodPost,
		Path:        "/v1/session/cancel",
		Summary:     "Cancel",
		Description: "Backs out of the current step; a pending selection is cleared, otherwise the card is ejected.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *CancelHandler) handle(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if err := h.Session.Cancel(); err != nil {
		return nil, mapSessionError(err)
	}
	return &CancelOutput{Body: stateBody(h.Session.Status())}, nil
}
