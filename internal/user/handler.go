package user

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gvormbrock/user-registry-backend/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/users", h.listUsers)
	app.Get("/users/:id", h.getUser)
	app.Post("/users", h.createUser)
	app.Put("/users", h.saveUser)
	app.Delete("/users/:id", h.deleteUser)
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	return c.JSON(h.service.FindAll())
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return bindingError(c, err)
	}

	dto, err := h.service.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	dto := new(Dto)
	if err := c.BodyParser(dto); err != nil {
		return bindingError(c, err)
	}

	saved, err := h.service.Save(*dto, true)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// saveUser handles PUT. The verify query parameter (default true) selects
// create-with-duplicate-check vs. create-or-update-without-check.
func (h *Handler) saveUser(c *fiber.Ctx) error {
	verify, err := strconv.ParseBool(c.Query("verify", "true"))
	if err != nil {
		return bindingError(c, err)
	}

	dto := new(Dto)
	if err := c.BodyParser(dto); err != nil {
		return bindingError(c, err)
	}

	saved, err := h.service.Save(*dto, verify)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return bindingError(c, err)
	}

	if err := h.service.DeleteByID(id); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// writeError maps workflow failures to the HTTP contract: not-found
// conditions answer 404, validation and business-rule failures answer 500
// with their workflow code, anything else answers 500 with code 0.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(apperr.Details(err))
}

// bindingError covers malformed bodies, path ids and query values; they
// answer 400 with errorCode 0.
func bindingError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(apperr.Details(err))
}
