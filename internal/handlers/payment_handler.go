package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetPayments)
	router.Get("/:id", h.HandleGetPaymentByID)
	router.Post("/", h.HandleRecordPayment)
}

// HandleGetPayments lists payments, optionally filtered by booking via the
// booking_id query parameter.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	var (
		payments []models.Payment
		err      error
	)
	if bookingID := c.QueryInt("booking_id"); bookingID > 0 {
		payments, err = h.service.GetPaymentsByBooking(uint(bookingID))
	} else {
		payments, err = h.service.GetAllPayments()
	}
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"payments": payments})
}

// HandleGetPaymentByID retrieves a single payment record.
func (h *PaymentHandler) HandleGetPaymentByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	payment, err := h.service.GetPaymentByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"payment": payment})
}

// HandleRecordPayment records a payment against a booking.
func (h *PaymentHandler) HandleRecordPayment(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(input); err != nil {
		return fail(c, validationError(err))
	}

	payment, err := h.service.RecordPayment(input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "Payment recorded successfully!", fiber.Map{"payment": payment})
}
