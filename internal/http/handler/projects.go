package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// ListProjects returns every project as a JSON array, newest first.
func ListProjects(projects service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := projects.List(c.UserContext(), repository.OrderDesc)
		if err != nil {
			logEvent(c, "list_projects_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "failed to load projects")
		}
		if list == nil {
			list = []model.Project{}
		}
		return c.Status(fiber.StatusOK).JSON(list)
	}
}

// CreateProject adds a new project from a JSON body and answers with the
// assigned id. Validation failures and write failures both map to 400.
func CreateProject(projects service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProjectInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		id, err := projects.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, err.Error())
			}
			logEvent(c, "create_project_failed", err)
			return writeError(c, fiber.StatusBadRequest, "failed to add project")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"id":      id,
			"message": "Project added successfully",
		})
	}
}

// updateRequest is the PUT body: the target id plus the full replacement
// field set.
type updateRequest struct {
	ID int `json:"id"`
	service.ProjectInput
}

// UpdateProject replaces all mutable fields of the identified project.
// A missing id succeeds without effect, matching the repository contract.
func UpdateProject(projects service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		if err := projects.Update(c.UserContext(), req.ID, req.ProjectInput); err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, err.Error())
			}
			logEvent(c, "update_project_failed", err)
			return writeError(c, fiber.StatusBadRequest, "failed to update project")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Project updated successfully",
		})
	}
}

type deleteRequest struct {
	ID int `json:"id"`
}

// DeleteProject removes the identified project. Deleting an id that is
// already gone still reports success.
func DeleteProject(projects service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req deleteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		if err := projects.Delete(c.UserContext(), req.ID); err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, err.Error())
			}
			logEvent(c, "delete_project_failed", err)
			return writeError(c, fiber.StatusBadRequest, "failed to delete project")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Project deleted successfully",
		})
	}
}

// UploadProjectImage accepts a multipart form with an "image" part, stores it
// and returns the public URL. Answers 503 when object storage is not
// configured.
func UploadProjectImage(images service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if images == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "image storage not configured")
		}

		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "image file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "unable to read image file")
		}
		defer f.Close()

		url, err := images.Upload(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			logEvent(c, "image_upload_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "failed to upload image")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
	}
}
