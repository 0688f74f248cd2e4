package signal

import (
	"errors"
	"fmt"
	"strings"

	"hookbot/pkg/types"
)

var (
	ErrMalformedPayload = errors.New("invalid payload")
	ErrUnauthorized     = errors.New("invalid token")
	ErrUnknownAction    = errors.New("expect 'buy' or 'sell' in the message")
)

// Payload is the inbound webhook body. All fields are optional at the JSON
// level; validation happens in the dispatcher.
// Example: {"token":"<secret>", "message":"buy"}
type Payload struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// ActionText returns the first non-empty candidate field. Alerting services
// put the signal text under different keys, so the lookup order is explicit.
func (p *Payload) ActionText() string {
	for _, candidate := range []string{p.Message, p.Action} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ResolveAction normalizes the raw action text (case, surrounding
// whitespace) and maps it onto an order side.
func ResolveAction(text string) (types.OrderSide, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "buy":
		return types.OrderSideBuy, nil
	case "sell":
		return types.OrderSideSell, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownAction, text)
	}
}
