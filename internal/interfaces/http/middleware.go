package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// UseMiddleware registra los middlewares comunes de la API. RequestLogger va antes que
// recover para que las peticiones que terminan en pánico también queden registradas.
func UseMiddleware(app *fiber.App, log *logger.Logger) {
	app.Use(RequestLogger(log))
	app.Use(recover.New())
}
