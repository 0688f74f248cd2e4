package bns

import (
	"context"
	"errors"
	"fmt"

	"hookbot/pkg/exchange"
	"hookbot/pkg/market"
	"hookbot/pkg/types"
	"hookbot/pkg/utils"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
)

// Binance rejects requests for symbols it does not know with this code.
const apiCodeInvalidSymbol = -1121

type BnsExchange struct {
	client *binance.Client
}

func New(apiKey string, apiSecret string, testnet bool) (*BnsExchange, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("API key or secret is not set")
	}
	binance.UseTestnet = testnet
	return &BnsExchange{client: binance.NewClient(apiKey, apiSecret)}, nil
}

// ╔═════════════╗
//      Info
// ╚═════════════╝

func (e *BnsExchange) GetPairFilters(ctx context.Context, symbol string) (market.PairFilters, error) {
	res, err := e.client.NewExchangeInfoService().Symbol(symbol).Do(ctx)
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Code == apiCodeInvalidSymbol {
			return market.PairFilters{}, fmt.Errorf("%w: %s", exchange.ErrUnknownPair, symbol)
		}
		return market.PairFilters{}, fmt.Errorf("fail to get exchange info: %w", err)
	}

	for _, s := range res.Symbols {
		if s.Symbol == symbol {
			return parsePairFilters(symbol, s.Filters)
		}
	}
	return market.PairFilters{}, fmt.Errorf("%w: %s", exchange.ErrUnknownPair, symbol)
}

// ╔═════════════╗
//     Balance
// ╚═════════════╝

func (e *BnsExchange) GetAssetBalance(ctx context.Context, asset string) (float64, error) {
	account, err := e.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("fail to get account: %w", err)
	}
	for _, b := range account.Balances {
		if b.Asset == asset {
			return utils.StrToFloat(b.Free)
		}
	}
	// Binance omits assets the account never held
	return 0, nil
}

// ╔═════════════╗
//      Order
// ╚═════════════╝

func (e *BnsExchange) OpenMarketOrderByQuote(ctx context.Context, symbol string, orderSide types.OrderSide, quoteQty float64) (*types.OrderResult, error) {
	side, err := convertOrderSide(orderSide)
	if err != nil {
		return nil, err
	}
	res, err := e.client.NewCreateOrderService().
		Symbol(symbol).
		Side(side).
		Type(binance.OrderTypeMarket).
		QuoteOrderQty(utils.FloatToStr(quoteQty)).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	return parseOrderResult(res), nil
}

func (e *BnsExchange) OpenMarketOrderByQty(ctx context.Context, symbol string, orderSide types.OrderSide, qty float64) (*types.OrderResult, error) {
	side, err := convertOrderSide(orderSide)
	if err != nil {
		return nil, err
	}
	res, err := e.client.NewCreateOrderService().
		Symbol(symbol).
		Side(side).
		Type(binance.OrderTypeMarket).
		Quantity(utils.FloatToStr(qty)).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	return parseOrderResult(res), nil
}
