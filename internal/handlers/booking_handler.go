package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service  *services.BookingService
	validate *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the booking routes.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetBookings)
	router.Get("/:id", h.HandleGetBookingByID)
	router.Post("/", h.HandleCreateBooking)
	router.Patch("/:id/status", h.HandleUpdateBookingStatus)
	router.Delete("/:id", h.HandleDeleteBooking)
}

// HandleGetBookings lists bookings, optionally filtered by user via the
// user_id query parameter.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	var (
		bookings []models.Booking
		err      error
	)
	if userID := c.QueryInt("user_id"); userID > 0 {
		bookings, err = h.service.GetBookingsByUser(uint(userID))
	} else {
		bookings, err = h.service.GetAllBookings()
	}
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"bookings": bookings})
}

// HandleGetBookingByID retrieves a single booking.
func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	booking, err := h.service.GetBookingByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"booking": booking})
}

// HandleCreateBooking creates a new booking.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var input services.BookingInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(input); err != nil {
		return fail(c, validationError(err))
	}

	booking, err := h.service.CreateBooking(input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "Booking created successfully!", fiber.Map{"booking": booking})
}

// StatusUpdateRequest represents the request body for a status change.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateBookingStatus changes the status of a booking.
func (h *BookingHandler) HandleUpdateBookingStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, validationError(err))
	}

	if err := h.service.UpdateBookingStatus(id, req.Status); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Booking status updated successfully!", nil)
}

// HandleDeleteBooking removes a booking.
func (h *BookingHandler) HandleDeleteBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteBooking(id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Booking deleted successfully!", nil)
}
