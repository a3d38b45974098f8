package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/artem13815/jobmatch/api/http/handlers"
	"github.com/artem13815/jobmatch/api/http/presenter"
)

// Register wires all API routes onto given Fiber app.
func Register(app *fiber.App, jobs *handlers.JobsHandler, cv *handlers.CVHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Get("/jobs", jobs.List)
	api.Get("/jobs/:id", jobs.Get)

	// CV upload and matching
	api.Post("/analyze-cv", cv.Analyze)
}

// Frontend serves the static client from root. Must be registered after the API routes.
func Frontend(app *fiber.App, root nethttp.FileSystem) {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   root,
		Browse: false,
		Index:  "index.html",
	}))
}

// NotFound answers every unmatched route with a JSON 404. Register it last.
func NotFound(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return presenter.Error(c, fiber.StatusNotFound, "route not found")
	})
}
