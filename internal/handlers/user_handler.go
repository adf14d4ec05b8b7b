package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/services"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user CRUD routes on the users group. Any
// middleware is attached per route so the register/login/logout/verify
// endpoints sharing the prefix stay open.
func (h *UserHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	chain := func(handler fiber.Handler) []fiber.Handler {
		hs := make([]fiber.Handler, 0, len(mw)+1)
		hs = append(hs, mw...)
		return append(hs, handler)
	}
	router.Get("/", chain(h.HandleGetUsers)...)
	router.Get("/:id", chain(h.HandleGetUserByID)...)
	router.Put("/:id", chain(h.HandleUpdateUser)...)
	router.Delete("/:id", chain(h.HandleDeleteUser)...)
}

// HandleGetUsers lists all users, ordered by id ascending.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"users": users})
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

// HandleUpdateUser updates exactly the name, contact number and email of an
// existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	var input services.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}

	if err := h.service.UpdateUser(id, input); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "User updated successfully!", nil)
}

// HandleDeleteUser removes a user permanently.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteUser(id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "User deleted successfully!", nil)
}
