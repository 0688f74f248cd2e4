package bns

import (
	"fmt"

	"hookbot/pkg/market"
	"hookbot/pkg/types"
	"hookbot/pkg/utils"

	"github.com/adshao/go-binance/v2"
)

func parsePairFilters(symbol string, filters []map[string]interface{}) (market.PairFilters, error) {
	f := market.New(symbol)
	for _, filter := range filters {
		switch filter["filterType"] {
		case "LOT_SIZE":
			stepSize, err := extractFilter(filter, "stepSize")
			if err != nil {
				return market.PairFilters{}, err
			}
			minQty, err := extractFilter(filter, "minQty")
			if err != nil {
				return market.PairFilters{}, err
			}
			f.StepSize = stepSize
			f.MinQty = minQty
			f.HasLotSize = true
		// depending on the symbol's listing era the filter is named
		// "MIN_NOTIONAL" or "NOTIONAL"; the field stays minNotional
		case "MIN_NOTIONAL", "NOTIONAL":
			if v, ok := extractOptionalFilter(filter, "minNotional"); ok {
				f.MinNotional = v
				f.HasMinNotional = true
			}
		}
	}
	return f, nil
}

func extractFilter(filter map[string]interface{}, key string) (float64, error) {
	raw, ok := filter[key].(string)
	if !ok {
		return 0, fmt.Errorf("bad string assertion: %s", key)
	}
	return utils.StrToFloat(raw)
}

// extractOptionalFilter reads a filter field that some records omit; a
// missing or unparsable field leaves the value absent instead of failing.
func extractOptionalFilter(filter map[string]interface{}, key string) (float64, bool) {
	raw, ok := filter[key].(string)
	if !ok {
		return 0, false
	}
	v, err := utils.StrToFloat(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseOrderResult(res *binance.CreateOrderResponse) *types.OrderResult {
	result := &types.OrderResult{
		Symbol:      res.Symbol,
		Side:        convertSideBack(res.Side),
		ExecutedQty: res.ExecutedQuantity,
		Status:      string(res.Status),
	}
	if len(res.Fills) > 0 {
		result.AvgPrice = res.Fills[0].Price
	}
	return result
}
