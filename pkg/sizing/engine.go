package sizing

import (
	"errors"
	"fmt"

	"hookbot/pkg/market"
	"hookbot/pkg/types"
	"hookbot/pkg/utils"
)

const (
	// ReserveFactor keeps 2% of the quote balance unspent so the order
	// survives fee deduction and slippage rounding on the exchange side.
	ReserveFactor = 0.98

	// QuoteDecimals is the precision a quote spend is truncated to.
	QuoteDecimals = 2

	// DefaultMinQuoteSpend is a hard floor on the quote spend, applied on
	// top of the exchange-reported minNotional (5 USD-equivalent for
	// stablecoin quotes). Override it through config rather than editing.
	DefaultMinQuoteSpend = 5.0
)

var (
	ErrInsufficientBalance  = errors.New("insufficient quote balance")
	ErrInsufficientQuantity = errors.New("insufficient base quantity")
	ErrMissingLotSizeFilter = errors.New("lot size filter unavailable")
)

// OrderRequest is a computed, ready-to-submit market order. Amount is a
// quote spend for buys and a base quantity for sells, already cut to
// exchange-legal precision.
type OrderRequest struct {
	Side   types.OrderSide
	Mode   types.SizingMode
	Amount float64
}

// SizeBuy converts a free quote balance into a quote-denominated spend.
// minQuoteSpend <= 0 falls back to DefaultMinQuoteSpend.
func SizeBuy(freeQuote float64, filters market.PairFilters, minQuoteSpend float64) (OrderRequest, error) {
	if minQuoteSpend <= 0 {
		minQuoteSpend = DefaultMinQuoteSpend
	}

	spend := utils.TruncateDecimals(freeQuote*ReserveFactor, QuoteDecimals)

	if filters.HasMinNotional && spend < filters.MinNotional {
		return OrderRequest{}, fmt.Errorf("%w: quoteOrderQty=%v < minNotional=%v",
			ErrInsufficientBalance, spend, filters.MinNotional)
	}
	if spend < minQuoteSpend {
		return OrderRequest{}, fmt.Errorf("%w: free=%v", ErrInsufficientBalance, freeQuote)
	}

	return OrderRequest{
		Side:   types.OrderSideBuy,
		Mode:   types.SizingQuoteAmount,
		Amount: spend,
	}, nil
}

// SizeSell converts a free base balance into a step-aligned base quantity.
func SizeSell(freeBase float64, filters market.PairFilters) (OrderRequest, error) {
	if !filters.HasLotSize || filters.StepSize <= 0 {
		return OrderRequest{}, fmt.Errorf("%w: %s", ErrMissingLotSizeFilter, filters.Symbol)
	}

	stepped := utils.RoundToStep(freeBase, filters.StepSize)

	// re-round to the step's own precision to strip binary float noise
	// (0.1+0.2 artifacts) from the stepped value
	decimals := utils.StepDecimals(filters.StepSize)
	qty := utils.RoundFloat(stepped, decimals)

	// the cleanup pass rounds to nearest; it must never push the quantity
	// over the floored step boundary
	if qty > stepped+filters.StepSize/2 {
		qty = utils.TruncateDecimals(stepped, decimals)
	}

	if qty < filters.MinQty {
		return OrderRequest{}, fmt.Errorf("%w: qty=%v < minQty=%v",
			ErrInsufficientQuantity, qty, filters.MinQty)
	}

	return OrderRequest{
		Side:   types.OrderSideSell,
		Mode:   types.SizingBaseQuantity,
		Amount: qty,
	}, nil
}
