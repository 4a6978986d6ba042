package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/logging"
)

// machine is the session surface the status page reads.
type machine interface {
	Status() atm.Status
}

// dispenser is the inventory surface the status page reads.
type dispenser interface {
	TotalValue() decimal.Decimal
}

type Handler struct {
	Machine   machine
	Inventory dispenser
}

func NewHandler(m machine, inv dispenser) Handler {
	return Handler{Machine: m, Inventory: inv}
}

// Response is the machine status snapshot.
type Response struct {
	ATMID        string `json:"atmId"`
	Location     string `json:"location"`
	State        string `json:"state"`
	Card         string `json:"card,omitempty"`
	Account      string `json:"account,omitempty"`
	Transactions int    `json:"transactions"`
	CashOnHand   string `json:"cashOnHand"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	snap := h.Machine.Status()
	logData.AddData("state", snap.State.String())

	resp := Response{
		ATMID:        snap.ATMID,
		Location:     snap.Location,
		State:        snap.State.String(),
		Card:         snap.Card,
		Account:      snap.AccountID,
		Transactions: snap.Transactions,
		CashOnHand:   h.Inventory.TotalValue().StringFixed(2),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
