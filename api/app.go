// Package api exposes the resolvers and the watch history over HTTP.
package api

import (
	"strings"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/session"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp creates the fiber app with middlewares and routes registered.
func NewApp(service *session.Service, cfg *ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               constant.AnimeFlow,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
		}))
	}
	app.Use(recover.New())
	// fiber's cors treats an empty list as "*".
	if len(cfg.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET,HEAD,POST,DELETE",
		}))
	}

	routes(app, service)

	return app
}

type errorBody struct {
	Message string `json:"message"`
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(errorBody{Message: err.Error()})
}
