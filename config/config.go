package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hookbot/pkg/s3client"
	"hookbot/pkg/types"
	"hookbot/pkg/utils"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is assembled once at startup and treated as immutable afterwards.
// The optional YAML file carries tunables; environment variables supply
// secrets and override the file (SYMBOL, BASE_ASSET, QUOTE_ASSET, PORT,
// MIN_QUOTE_SPEND).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Pair   PairConfig   `yaml:"pair"`
	Sizing SizingConfig `yaml:"sizing"`

	Binance      BinanceConfig `yaml:"-"`
	WebhookToken string        `yaml:"-"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type PairConfig struct {
	Symbol     string `yaml:"symbol"`
	BaseAsset  string `yaml:"baseAsset"`
	QuoteAsset string `yaml:"quoteAsset"`
}

type SizingConfig struct {
	// MinQuoteSpend of 0 keeps the engine's built-in floor.
	MinQuoteSpend float64 `yaml:"minQuoteSpend"`
}

type BinanceConfig struct {
	APIKey    string
	APISecret string
}

func LoadConfig(envName types.EnvName) (*Config, error) {
	var config Config

	data, err := readConfigFile(envName)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("fail to decode config file: %w", err)
		}
	}

	applyEnv(&config)

	if config.Binance.APIKey == "" || config.Binance.APISecret == "" {
		return nil, fmt.Errorf("BINANCE_API_KEY and BINANCE_API_SECRET must be set")
	}
	return &config, nil
}

// readConfigFile loads the per-environment YAML, from disk or from S3
// (CONFIG_MODE=S3). A missing local file is fine: the service then runs on
// environment variables and defaults alone.
func readConfigFile(envName types.EnvName) ([]byte, error) {
	yamlFiles := map[types.EnvName]string{
		types.EnvLocal: "hookbot.yaml",
		types.EnvDev:   "hookbot.dev.yaml",
		types.EnvProd:  "hookbot.prod.yaml",
	}
	fileName := yamlFiles[envName]

	if types.ConfigMode(strings.ToUpper(os.Getenv("CONFIG_MODE"))) == types.ConfigModeS3 {
		client, err := s3client.Init(
			utils.LoadEnv("AWS_ACCESS_KEY"),
			utils.LoadEnv("AWS_SECRET_KEY"),
			utils.LoadEnvWithDefault("AWS_REGION", "ap-southeast-1"),
		)
		if err != nil {
			return nil, err
		}
		return s3client.GetObject(client, utils.LoadEnv("CONFIG_S3_BUCKET"), fileName)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config file '%s', using env and defaults", fileName)
			return nil, nil
		}
		return nil, fmt.Errorf("fail to load config file '%s': %w", fileName, err)
	}
	return data, nil
}

func applyEnv(config *Config) {
	config.Binance.APIKey = os.Getenv("BINANCE_API_KEY")
	config.Binance.APISecret = os.Getenv("BINANCE_API_SECRET")
	config.WebhookToken = os.Getenv("WEBHOOK_TOKEN")

	config.Pair.Symbol = firstNonEmpty(os.Getenv("SYMBOL"), config.Pair.Symbol, "ETHUSDC")
	config.Pair.BaseAsset = firstNonEmpty(os.Getenv("BASE_ASSET"), config.Pair.BaseAsset, "ETH")
	config.Pair.QuoteAsset = firstNonEmpty(os.Getenv("QUOTE_ASSET"), config.Pair.QuoteAsset, "USDC")

	if config.Server.Port == 0 {
		config.Server.Port = 8000
	}
	config.Server.Port = utils.LoadIntEnvWithDefault("PORT", config.Server.Port)

	if raw := os.Getenv("MIN_QUOTE_SPEND"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("env 'MIN_QUOTE_SPEND' is not a number: %v", raw)
		}
		config.Sizing.MinQuoteSpend = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
