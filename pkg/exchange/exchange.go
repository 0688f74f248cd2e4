package exchange

import (
	"context"
	"errors"

	"hookbot/pkg/market"
	"hookbot/pkg/types"
)

// ErrUnknownPair is returned when the exchange does not know the requested
// trading pair. It is a client input error, not a server fault.
var ErrUnknownPair = errors.New("unknown trading pair")

type Exchange interface {
	// GetPairFilters fetches the pair's trading rules from exchange metadata.
	GetPairFilters(ctx context.Context, symbol string) (market.PairFilters, error)

	// GetAssetBalance returns the free (unlocked) balance of one asset.
	GetAssetBalance(ctx context.Context, asset string) (float64, error)

	// OpenMarketOrderByQuote places a market order sized by quote amount to spend.
	OpenMarketOrderByQuote(ctx context.Context, symbol string, side types.OrderSide, quoteQty float64) (*types.OrderResult, error)

	// OpenMarketOrderByQty places a market order sized by base quantity.
	OpenMarketOrderByQty(ctx context.Context, symbol string, side types.OrderSide, qty float64) (*types.OrderResult, error)
}
