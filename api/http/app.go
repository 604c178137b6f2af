package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/swiftstream/site/api/http/presenter"
)

// NewApp creates the Fiber app with the standard middleware chain.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "swiftstream-site",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())
	return app
}

// errorHandler keeps the {"message": ...} envelope for errors raised by Fiber itself.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := "internal error"
	if fe != nil {
		msg = fe.Message
	}
	return presenter.Error(c, code, msg)
}
