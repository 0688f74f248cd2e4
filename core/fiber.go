package core

import (
	"errors"
	"fmt"

	"hookbot/pkg/exchange"
	"hookbot/pkg/signal"
	"hookbot/pkg/sizing"

	"github.com/adshao/go-binance/v2/common"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func SetupFiberApp(dispatcher *signal.Dispatcher) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "hookbot",
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "symbol": dispatcher.Symbol})
	})

	app.Post("/webhook", func(c *fiber.Ctx) error {
		summary, err := dispatcher.Handle(c.Context(), c.Body())
		if err != nil {
			status, detail := classifyError(err)
			if status >= fiber.StatusInternalServerError {
				log.Errorf("webhook internal error: %v", err)
			} else {
				log.Warnf("webhook rejected: %v", err)
			}
			return c.Status(status).JSON(fiber.Map{"detail": detail})
		}
		return c.JSON(summary)
	})

	return app
}

func ShutdownFiberApp(app *fiber.App) {
	_ = app.Shutdown()
}

// classifyError maps the dispatcher's error taxonomy onto HTTP statuses:
// client input errors and exchange rejections stay 400-level with their
// message; anything unexpected is a generic 500.
func classifyError(err error) (int, string) {
	var apiErr *common.APIError
	switch {
	case errors.Is(err, signal.ErrUnauthorized):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, signal.ErrMalformedPayload),
		errors.Is(err, signal.ErrUnknownAction),
		errors.Is(err, exchange.ErrUnknownPair),
		errors.Is(err, sizing.ErrMissingLotSizeFilter),
		errors.Is(err, sizing.ErrInsufficientBalance),
		errors.Is(err, sizing.ErrInsufficientQuantity):
		return fiber.StatusBadRequest, err.Error()
	case errors.As(err, &apiErr):
		return fiber.StatusBadRequest, fmt.Sprintf("Binance error: %v", apiErr.Message)
	default:
		return fiber.StatusInternalServerError, "server error"
	}
}
