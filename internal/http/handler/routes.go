package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
	"portfolio/internal/http/middleware"
	"portfolio/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// images may be nil when object storage is not configured; the upload
// endpoint then degrades to 503.
func RegisterRoutes(app *fiber.App, db *sql.DB, projects service.ProjectService, images service.ImageService, admin *auth.Authenticator, sessions *middleware.SessionAuth) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Public pages
	app.Get("/", Index(projects, sessions))
	app.Get("/login", LoginForm())
	app.Post("/login", LoginSubmit(admin, sessions))
	app.Get("/logout", Logout(sessions))

	// Admin dashboard, session-gated with a redirect for browsers
	app.Get("/admin", sessions.RequirePage(), AdminDashboard(projects))

	// Unified project CRUD API, session-gated for every method
	api := app.Group("/api", sessions.RequireAPI())
	api.Get("/projects", ListProjects(projects))
	api.Post("/projects", CreateProject(projects))
	api.Put("/projects", UpdateProject(projects))
	api.Delete("/projects", DeleteProject(projects))
	api.Post("/projects/image", UploadProjectImage(images))
}

// HealthCheck reports whether the project store is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
