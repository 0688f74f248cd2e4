package types

type OrderSide string

const (
	OrderSideBuy  = OrderSide("buy")
	OrderSideSell = OrderSide("sell")
)

type SizingMode string

// Buys are sized by the quote amount to spend, sells by the base quantity
// to liquidate.
const (
	SizingQuoteAmount  = SizingMode("quote_amount")
	SizingBaseQuantity = SizingMode("base_quantity")
)

// OrderResult summarizes the exchange's response to a market order.
// Numeric fields stay in the exchange's string form; AvgPrice is the price
// of the first reported fill, or empty when no fills were reported.
type OrderResult struct {
	Symbol      string
	Side        OrderSide
	ExecutedQty string
	Status      string
	AvgPrice    string
}
