package session

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
	"github.com/carson-networks/atm-server/internal/cash"
)

// mockSession is a mock for sessionDriver, used to pin the error mapping.
type mockSession struct {
	mock.Mock
}

func (m *mockSession) InsertCard(card *bank.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *mockSession) EnterPIN(pin string) error {
	args := m.Called(pin)
	return args.Error(0)
}

func (m *mockSession) SelectTransaction(txType atm.TransactionType) error {
	args := m.Called(txType)
	return args.Error(0)
}

func (m *mockSession) Execute(amount decimal.Decimal, targetAccountID string) (*atm.Transaction, error) {
	args := m.Called(amount, targetAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atm.Transaction), args.Error(1)
}

func (m *mockSession) Cancel() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockSession) EjectCard() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockSession) Status() atm.Status {
	args := m.Called()
	return args.Get(0).(atm.Status)
}

// newTestAPI wires all session handlers against a real session and returns
// the humatest API driving it.
func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	directory := bank.NewDirectory()
	directory.AddAccount(bank.NewAccount("ACC001", "John Doe", decimal.RequireFromString("5000.00"), "1234"))
	directory.AddAccount(bank.NewAccount("ACC002", "Jane Smith", decimal.RequireFromString("3000.00"), "5678"))
	directory.AddCard(&bank.Card{
		Number:     "1234567890123456",
		HolderName: "John Doe",
		Type:       bank.CardTypeDebit,
		ExpiresAt:  time.Now().AddDate(3, 0, 0),
		AccountID:  "ACC001",
	})
	inventory := cash.NewInventory(map[int]int{100: 100, 50: 200, 20: 500, 10: 500})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	sess := atm.NewSession(atm.SessionConfig{
		ATMID:     "ATM-001",
		Location:  "test",
		Directory: directory,
		Inventory: inventory,
		Logger:    logger,
	})

	_, api := humatest.New(t)
	NewInsertCardHandler(sess, directory).Register(api)
	NewEnterPINHandler(sess).Register(api)
	NewSelectTransactionHandler(sess).Register(api)
	NewExecuteTransactionHandler(sess).Register(api)
	NewCancelHandler(sess).Register(api)
	NewEjectCardHandler(sess).Register(api)
	return api
}

func TestInsertCard_Success(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "CARD_INSERTED")
	assert.Contains(t, resp.Body.String(), "****-****-****-3456")
}

func TestInsertCard_UnknownCard(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/session/card", map[string]any{"cardNumber": "0000000000000000"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEnterPIN_BeforeInsertIsConflict(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/session/pin", map[string]any{"pin": "1234"})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestEnterPIN_WrongPIN(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"}).Code)

	resp := api.Post("/v1/session/pin", map[string]any{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestFullWithdrawalFlow(t *testing.T) {
	api := newTestAPI(t)

	require.Equal(t, http.StatusOK, api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"}).Code)

	resp := api.Post("/v1/session/pin", map[string]any{"pin": "1234"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "PIN_VERIFIED")

	resp = api.Post("/v1/session/transaction", map[string]any{"type": "WITHDRAWAL"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "TRANSACTION_SELECTED")

	resp = api.Post("/v1/session/execute", map[string]any{"amount": "280"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"SUCCESS"`)
	assert.Contains(t, resp.Body.String(), `"amount":"280.00"`)

	resp = api.Delete("/v1/session/card")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "IDLE")
}

func TestExecute_BusinessFailureIsSoft(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"}).Code)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/pin", map[string]any{"pin": "1234"}).Code)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/transaction", map[string]any{"type": "WITHDRAWAL"}).Code)

	resp := api.Post("/v1/session/execute", map[string]any{"amount": "50000"})
	assert.Equal(t, http.StatusOK, resp.Code, "business failures are recorded, not HTTP errors")
	assert.Contains(t, resp.Body.String(), `"status":"FAILED"`)
}

func TestSelectTransaction_InvalidType(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"}).Code)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/pin", map[string]any{"pin": "1234"}).Code)

	resp := api.Post("/v1/session/transaction", map[string]any{"type": "LOTTERY"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestExecute_InvalidAmount(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/card", map[string]any{"cardNumber": "1234567890123456"}).Code)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/pin", map[string]any{"pin": "1234"}).Code)
	require.Equal(t, http.StatusOK, api.Post("/v1/session/transaction", map[string]any{"type": "DEPOSIT"}).Code)

	resp := api.Post("/v1/session/execute", map[string]any{"amount": "not-a-number"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCancel_WhileIdle(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/session/cancel", map[string]any{})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "IDLE")
}

func TestCancel_BusyMapsToConflict(t *testing.T) {
	sess := &mockSession{}
	sess.On("Cancel").Return(atm.ErrSessionBusy)

	_, api := humatest.New(t)
	NewCancelHandler(sess).Register(api)

	resp := api.Post("/v1/session/cancel", map[string]any{})
	assert.Equal(t, http.StatusConflict, resp.Code)
	sess.AssertExpectations(t)
}

func TestEnterPIN_LockedMapsToForbidden(t *testing.T) {
	sess := &mockSession{}
	sess.On("EnterPIN", "5678").Return(atm.ErrAccountLocked)

	_, api := humatest.New(t)
	NewEnterPINHandler(sess).Register(api)

	resp := api.Post("/v1/session/pin", map[string]any{"pin": "5678"})
	assert.Equal(t, http.StatusForbidden, resp.Code)
	sess.AssertExpectations(t)
}
