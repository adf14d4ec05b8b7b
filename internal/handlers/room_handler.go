package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

// RoomHandler handles HTTP requests for room listings.
type RoomHandler struct {
	service  *services.RoomService
	validate *validator.Validate
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the room routes.
func (h *RoomHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetRooms)
	router.Get("/:id", h.HandleGetRoomByID)
	router.Post("/", h.HandleCreateRoom)
	router.Put("/:id", h.HandleUpdateRoom)
	router.Delete("/:id", h.HandleDeleteRoom)
}

// HandleGetRooms lists rooms, optionally filtered by boarding house via the
// boarding_id query parameter.
func (h *RoomHandler) HandleGetRooms(c *fiber.Ctx) error {
	var (
		rooms []models.Room
		err   error
	)
	if boardingID := c.QueryInt("boarding_id"); boardingID > 0 {
		rooms, err = h.service.GetRoomsByBoarding(uint(boardingID))
	} else {
		rooms, err = h.service.GetAllRooms()
	}
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"rooms": rooms})
}

// HandleGetRoomByID retrieves a single room.
func (h *RoomHandler) HandleGetRoomByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	room, err := h.service.GetRoomByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"room": room})
}

// HandleCreateRoom creates a new room.
func (h *RoomHandler) HandleCreateRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(room); err != nil {
		return fail(c, validationError(err))
	}

	if err := h.service.CreateRoom(&room); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "Room created successfully!", fiber.Map{"room": room})
}

// HandleUpdateRoom updates an existing room.
func (h *RoomHandler) HandleUpdateRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(room); err != nil {
		return fail(c, validationError(err))
	}

	room.ID = id
	if err := h.service.UpdateRoom(&room); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Room updated successfully!", nil)
}

// HandleDeleteRoom deletes a room.
func (h *RoomHandler) HandleDeleteRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteRoom(id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Room deleted successfully!", nil)
}
