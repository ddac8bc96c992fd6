package handler

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
	"portfolio/internal/http/middleware"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// Index renders the public portfolio page: all projects oldest first plus the
// caller's authentication flag. A storage failure degrades to an empty list,
// the page itself always renders.
func Index(projects service.ProjectService, sessions *middleware.SessionAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := projects.List(c.UserContext(), repository.OrderAsc)
		if err != nil {
			logEvent(c, "public_listing_degraded", err)
			list = []model.Project{}
		}
		return c.Render("index", fiber.Map{
			"Projects": list,
			"IsAdmin":  sessions.IsAuthenticated(c),
		})
	}
}

// LoginForm renders the admin login form.
func LoginForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{})
	}
}

// LoginSubmit checks the submitted credentials. Success establishes a session
// and redirects to the dashboard; failure re-renders the form with a generic
// error that never says which field was wrong.
func LoginSubmit(admin *auth.Authenticator, sessions *middleware.SessionAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.FormValue("username")
		password := c.FormValue("password")

		if err := admin.Login(username, password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
			}
			return err
		}

		if err := sessions.Establish(c); err != nil {
			logEvent(c, "session_create_failed", err)
			return c.Render("login", fiber.Map{"Error": "Login temporarily unavailable"})
		}
		return c.Redirect("/admin", fiber.StatusFound)
	}
}

// Logout clears the session and returns to the public page. Idempotent.
func Logout(sessions *middleware.SessionAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sessions.Destroy(c); err != nil {
			logEvent(c, "session_destroy_failed", err)
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// AdminDashboard renders the management view: same data as the public page,
// newest first. Mounted behind RequirePage.
func AdminDashboard(projects service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := projects.List(c.UserContext(), repository.OrderDesc)
		if err != nil {
			logEvent(c, "admin_listing_degraded", err)
			list = []model.Project{}
		}
		return c.Render("admin", fiber.Map{
			"Projects": list,
		})
	}
}

// logEvent emits a one-line JSON event in the same shape the request logger
// uses, tagged with the request id.
func logEvent(c *fiber.Ctx, event string, err error) {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	_ = json.NewEncoder(os.Stdout).Encode(map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"event":      event,
		"request_id": rid,
		"error":      err.Error(),
	})
}
