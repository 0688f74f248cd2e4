package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hookbot/pkg/market"
	"hookbot/pkg/signal"
	"hookbot/pkg/types"

	"github.com/adshao/go-binance/v2/common"
	"github.com/gofiber/fiber/v2"
	"gotest.tools/v3/assert"
)

type stubExchange struct {
	filters    market.PairFilters
	balances   map[string]float64
	balanceErr error
	orderErr   error
}

func (s *stubExchange) GetPairFilters(ctx context.Context, symbol string) (market.PairFilters, error) {
	return s.filters, nil
}

func (s *stubExchange) GetAssetBalance(ctx context.Context, asset string) (float64, error) {
	if s.balanceErr != nil {
		return 0, s.balanceErr
	}
	return s.balances[asset], nil
}

func (s *stubExchange) OpenMarketOrderByQuote(ctx context.Context, symbol string, side types.OrderSide, quoteQty float64) (*types.OrderResult, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return &types.OrderResult{Symbol: symbol, Side: side, ExecutedQty: "0.03100000", Status: "FILLED", AvgPrice: "3123.45"}, nil
}

func (s *stubExchange) OpenMarketOrderByQty(ctx context.Context, symbol string, side types.OrderSide, qty float64) (*types.OrderResult, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return &types.OrderResult{Symbol: symbol, Side: side, ExecutedQty: "1.23", Status: "FILLED"}, nil
}

func newStub() *stubExchange {
	f := market.New("ETHUSDC")
	f.StepSize = 0.01
	f.MinQty = 0.01
	f.HasLotSize = true
	return &stubExchange{
		filters:  f,
		balances: map[string]float64{"USDC": 100.00, "ETH": 1.23456},
	}
}

func newTestApp(stub *stubExchange, token string) *fiber.App {
	return SetupFiberApp(&signal.Dispatcher{
		Exchange:   stub,
		Symbol:     "ETHUSDC",
		BaseAsset:  "ETH",
		QuoteAsset: "USDC",
		Token:      token,
	})
}

func postWebhook(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NilError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)

	var parsed map[string]interface{}
	assert.NilError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(newStub(), "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NilError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, resp.StatusCode, http.StatusOK)

	raw, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)
	var parsed map[string]interface{}
	assert.NilError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, parsed["status"], "ok")
	assert.Equal(t, parsed["symbol"], "ETHUSDC")
}

func TestWebhook_BuySuccess(t *testing.T) {
	app := newTestApp(newStub(), "")

	status, body := postWebhook(t, app, `{"message":"buy"}`)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, body["status"], "ok")
	assert.Equal(t, body["action"], "buy")
	assert.Equal(t, body["executedQty"], "0.03100000")
	assert.Equal(t, body["avgPrice"], "3123.45")
}

func TestWebhook_SellSuccess(t *testing.T) {
	app := newTestApp(newStub(), "")

	status, body := postWebhook(t, app, `{"message":"sell"}`)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, body["orderStatus"], "FILLED")
	// no fills reported on this order
	assert.Assert(t, body["avgPrice"] == nil)
}

func TestWebhook_UnknownAction(t *testing.T) {
	app := newTestApp(newStub(), "")

	status, body := postWebhook(t, app, `{"message":"hold"}`)
	assert.Equal(t, status, http.StatusBadRequest)
	detail, _ := body["detail"].(string)
	assert.Assert(t, strings.Contains(detail, "buy"), "detail: %v", detail)
}

func TestWebhook_Unauthorized(t *testing.T) {
	app := newTestApp(newStub(), "s3cret")

	status, body := postWebhook(t, app, `{"message":"buy"}`)
	assert.Equal(t, status, http.StatusUnauthorized)
	assert.Equal(t, body["detail"], "invalid token")
}

func TestWebhook_ExchangeRejection(t *testing.T) {
	stub := newStub()
	stub.orderErr = &common.APIError{Code: -2010, Message: "Account has insufficient balance for requested action."}
	app := newTestApp(stub, "")

	status, body := postWebhook(t, app, `{"message":"buy"}`)
	assert.Equal(t, status, http.StatusBadRequest)
	detail, _ := body["detail"].(string)
	assert.Assert(t, strings.HasPrefix(detail, "Binance error:"), "detail: %v", detail)
}

func TestWebhook_InternalError(t *testing.T) {
	stub := newStub()
	stub.balanceErr = errors.New("connection reset while reading account")
	app := newTestApp(stub, "")

	status, body := postWebhook(t, app, `{"message":"buy"}`)
	assert.Equal(t, status, http.StatusInternalServerError)
	// internal details must not leak to the caller
	assert.Equal(t, body["detail"], "server error")
}
