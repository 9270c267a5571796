package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// InfactoryProxy forwards raw archive requests upstream. The API key stays
// on the server; browsers never see it.
func InfactoryProxy(baseURL, apiKey string, logger zerolog.Logger) fiber.Handler {
	proxyLogger := logger.With().Str("component", "infactory_proxy").Logger()

	return func(c *fiber.Ctx) error {
		target := baseURL + "/" + c.Params("*")
		if query := string(c.Request().URI().QueryString()); query != "" {
			target += "?" + query
		}

		c.Request().Header.Set("X-API-Key", apiKey)
		if err := proxy.Do(c, target); err != nil {
			proxyLogger.Error().Err(err).Str("target", target).Msg("upstream request failed")
			return utils.SendError(c, fiber.StatusBadGateway, "archive upstream unavailable")
		}

		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}
