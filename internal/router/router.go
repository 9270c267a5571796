package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thebeat-edu/beat-go-api/internal/config"
	"github.com/thebeat-edu/beat-go-api/internal/handler"
	"github.com/thebeat-edu/beat-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ClassroomHandler *handler.ClassroomHandler
	ResearchHandler  *handler.ResearchHandler
	WritingHandler   *handler.WritingHandler
	ActivityHandler  *handler.ActivityHandler
	DemoHandler      *handler.DemoHandler
	SessionHandler   *handler.SessionHandler
	ArticleHandler   *handler.ArticleHandler
	SocraticHandler  *handler.SocraticHandler
	InfactoryProxy   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.ClassroomHandler != nil {
		deps.ClassroomHandler.Register(api.Group("/classrooms"))
	}
	if deps.ResearchHandler != nil {
		deps.ResearchHandler.Register(api.Group("/research/:scope"))
	}
	if deps.WritingHandler != nil {
		deps.WritingHandler.Register(api.Group("/workspace"))
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activity"))
	}
	if deps.DemoHandler != nil {
		deps.DemoHandler.Register(api.Group("/demo"))
	}
	if deps.SessionHandler != nil {
		deps.SessionHandler.Register(api.Group("/session"))
	}
	if deps.ArticleHandler != nil {
		deps.ArticleHandler.Register(api.Group("/articles"))
	}
	if deps.SocraticHandler != nil {
		deps.SocraticHandler.Register(api.Group("/socratic"))
	}

	// Raw pass-through for front-end code that speaks the archive API
	// directly. Keyed server-side.
	if deps.InfactoryProxy != nil {
		app.All("/api/infactory/*", deps.InfactoryProxy)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
