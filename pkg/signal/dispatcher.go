package signal

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"hookbot/pkg/exchange"
	"hookbot/pkg/sizing"
	"hookbot/pkg/types"

	log "github.com/sirupsen/logrus"
)

// Dispatcher turns one inbound webhook body into at most one market order.
// It holds only read-only configuration, so a single instance serves
// concurrent requests. There is no cross-request atomicity: two concurrent
// buy signals can both read the same balance before either order lands;
// callers that care must serialize signals upstream.
type Dispatcher struct {
	Exchange   exchange.Exchange
	Symbol     string
	BaseAsset  string
	QuoteAsset string

	// Token is the optional shared webhook secret; empty disables the check.
	Token string

	// MinQuoteSpend overrides sizing.DefaultMinQuoteSpend when > 0.
	MinQuoteSpend float64
}

// Summary is the success response of one handled signal.
type Summary struct {
	Status      string  `json:"status"`
	Action      string  `json:"action"`
	Symbol      string  `json:"symbol"`
	ExecutedQty string  `json:"executedQty"`
	Side        string  `json:"side"`
	OrderStatus string  `json:"orderStatus"`
	AvgPrice    *string `json:"avgPrice"`
}

// Handle validates the payload, sizes the order and submits it. Every
// rejection fires before the order-submission call.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) (*Summary, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if d.Token != "" {
		if subtle.ConstantTimeCompare([]byte(p.Token), []byte(d.Token)) != 1 {
			return nil, ErrUnauthorized
		}
	}

	side, err := ResolveAction(p.ActionText())
	if err != nil {
		return nil, err
	}

	filters, err := d.Exchange.GetPairFilters(ctx, d.Symbol)
	if err != nil {
		return nil, err
	}

	var req sizing.OrderRequest
	switch side {
	case types.OrderSideBuy:
		free, err := d.Exchange.GetAssetBalance(ctx, d.QuoteAsset)
		if err != nil {
			return nil, err
		}
		req, err = sizing.SizeBuy(free, filters, d.MinQuoteSpend)
		if err != nil {
			return nil, err
		}
	case types.OrderSideSell:
		free, err := d.Exchange.GetAssetBalance(ctx, d.BaseAsset)
		if err != nil {
			return nil, err
		}
		req, err = sizing.SizeSell(free, filters)
		if err != nil {
			return nil, err
		}
	}

	var res *types.OrderResult
	switch req.Mode {
	case types.SizingQuoteAmount:
		res, err = d.Exchange.OpenMarketOrderByQuote(ctx, d.Symbol, req.Side, req.Amount)
	case types.SizingBaseQuantity:
		res, err = d.Exchange.OpenMarketOrderByQty(ctx, d.Symbol, req.Side, req.Amount)
	default:
		return nil, fmt.Errorf("unknown sizing mode: %s", req.Mode)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("market %s placed: symbol=%s amount=%v executedQty=%s status=%s",
		req.Side, d.Symbol, req.Amount, res.ExecutedQty, res.Status)

	summary := &Summary{
		Status:      "ok",
		Action:      string(side),
		Symbol:      d.Symbol,
		ExecutedQty: res.ExecutedQty,
		Side:        string(res.Side),
		OrderStatus: res.Status,
	}
	if res.AvgPrice != "" {
		summary.AvgPrice = &res.AvgPrice
	}
	return summary, nil
}
