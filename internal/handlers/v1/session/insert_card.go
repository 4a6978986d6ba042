package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// InsertCardBody is the request body for inserting a card.
type InsertCardBody struct {
	CardNumber string `json:"cardNumber" required:"true" doc:"Number of an issued card"`
}

// InsertCardInput is the Huma input for inserting a card.
type InsertCardInput struct {
	Body InsertCardBody
}

// InsertCardOutput is the Huma output for inserting a card.
type InsertCardOutput struct {
	Body SessionStateBody
}

// InsertCardHandler handles POST /v1/session/card.
type InsertCardHandler struct {
	Session sessionDriver
	Cards   cardResolver
}

// NewInsertCardHandler creates a new InsertCardHandler.
func NewInsertCardHandler(session sessionDriver, cards cardResolver) *InsertCardHandler {
	return &InsertCardHandler{Session: session, Cards: cards}
}

// Register registers the insert-card endpoint with the Huma API.
func (h *InsertCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "insert-card",
		Method:      http.MethodPost,
		Path:        "/v1/session/card",
		Summary:     "Insert card",
		Description: "Inserts an issued card into the machine.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *InsertCardHandler) handle(ctx context.Context, input *InsertCardInput) (*InsertCardOutput, error) {
	card, err := h.Cards.LookupCard(input.Body.CardNumber)
	if err != nil {
		return nil, mapSessionError(err)
	}
	if err := h.Session.InsertCard(card); err != nil {
		return nil, mapSessionError(err)
	}
	return &InsertCardOutput{Body: stateBody(h.Session.Status())}, nil
}
