package market

// PairFilters holds one pair's exchange-enforced trading constraints.
// StepSize and MinQty come from the same LOT_SIZE record, so HasLotSize
// covers both. MinNotional is reported under its own filter and may be
// missing entirely.
type PairFilters struct {
	Symbol string

	StepSize    float64 // base qty granularity (e.g. 0.001 means 0.0015 ETH is invalid)
	MinQty      float64 // min base order quantity
	MinNotional float64 // min order value in quote units

	HasLotSize     bool
	HasMinNotional bool
}

func New(symbol string) PairFilters {
	return PairFilters{Symbol: symbol}
}
