package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/services"
)

// EmailHandler handles the contact-form email endpoint.
type EmailHandler struct {
	service *services.EmailService
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(service *services.EmailService) *EmailHandler {
	return &EmailHandler{
		service: service,
	}
}

// RegisterRoutes registers the contact-form route.
func (h *EmailHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-email", h.HandleSendEmail)
}

// HandleSendEmail forwards a contact-form submission to the configured
// inbox.
func (h *EmailHandler) HandleSendEmail(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}

	if err := h.service.SendContactMessage(input); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Email sent successfully", nil)
}
