package core

import (
	"fmt"

	"hookbot/config"
	"hookbot/pkg/exchange/bns"
	"hookbot/pkg/signal"
	"hookbot/pkg/types"

	log "github.com/sirupsen/logrus"
)

// Bootstrap builds the exchange client and the signal dispatcher from the
// startup config.
func Bootstrap(cfg config.Config) (*signal.Dispatcher, error) {
	log.Info("🦾 Bootstrapping...")

	testnet := config.Env.EnvName != types.EnvProd
	exchg, err := bns.New(cfg.Binance.APIKey, cfg.Binance.APISecret, testnet)
	if err != nil {
		return nil, fmt.Errorf("fail to init binance client: %w", err)
	}

	dispatcher := &signal.Dispatcher{
		Exchange:      exchg,
		Symbol:        cfg.Pair.Symbol,
		BaseAsset:     cfg.Pair.BaseAsset,
		QuoteAsset:    cfg.Pair.QuoteAsset,
		Token:         cfg.WebhookToken,
		MinQuoteSpend: cfg.Sizing.MinQuoteSpend,
	}

	log.Infof("dispatcher ready: symbol=%v base=%v quote=%v testnet=%v auth=%v",
		cfg.Pair.Symbol, cfg.Pair.BaseAsset, cfg.Pair.QuoteAsset, testnet, cfg.WebhookToken != "")
	return dispatcher, nil
}
