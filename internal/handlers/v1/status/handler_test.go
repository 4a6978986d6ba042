package status

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/logging"
)

type stubMachine struct {
	status atm.Status
}

func (s stubMachine) Status() atm.Status { return s.status }

type stubDispenser struct {
	total decimal.Decimal
}

func (s stubDispenser) TotalValue() decimal.Decimal { return s.total }

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging()
	return logging.NewLogData(logger)
}

func newTestHandler() Handler {
	return NewHandler(
		stubMachine{status: atm.Status{
			ATMID:        "ATM-001",
			Location:     "123 Main Street, City Center",
			State:        atm.StateIdle,
			Transactions: 2,
		}},
		stubDispenser{total: decimal.RequireFromString("35000")},
	)
}

func TestHandler_GoodMethod(t *testing.T) {
	statusHandler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)

	body := w.Body.String()
	assert.Contains(t, body, `"atmId":"ATM-001"`)
	assert.Contains(t, body, `"state":"IDLE"`)
	assert.Contains(t, body, `"cashOnHand":"35000.00"`)
	assert.Contains(t, body, `"transactions":2`)
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}
