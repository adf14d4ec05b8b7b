package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

// BoardingHandler handles HTTP requests for boarding house listings.
type BoardingHandler struct {
	service  *services.BoardingService
	validate *validator.Validate
}

// NewBoardingHandler creates a new BoardingHandler.
func NewBoardingHandler(service *services.BoardingService) *BoardingHandler {
	return &BoardingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the boarding house routes.
func (h *BoardingHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetBoardings)
	router.Get("/:id", h.HandleGetBoardingByID)
	router.Post("/", h.HandleCreateBoarding)
	router.Put("/:id", h.HandleUpdateBoarding)
	router.Delete("/:id", h.HandleDeleteBoarding)
}

// HandleGetBoardings lists boarding houses, optionally filtered by
// university via the university_id query parameter.
func (h *BoardingHandler) HandleGetBoardings(c *fiber.Ctx) error {
	var (
		boardings []models.Boarding
		err       error
	)
	if universityID := c.QueryInt("university_id"); universityID > 0 {
		boardings, err = h.service.GetBoardingsByUniversity(uint(universityID))
	} else {
		boardings, err = h.service.GetAllBoardings()
	}
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"boardings": boardings})
}

// HandleGetBoardingByID retrieves a single boarding house.
func (h *BoardingHandler) HandleGetBoardingByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	boarding, err := h.service.GetBoardingByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"boarding": boarding})
}

// HandleCreateBoarding creates a new boarding house listing.
func (h *BoardingHandler) HandleCreateBoarding(c *fiber.Ctx) error {
	var boarding models.Boarding
	if err := c.BodyParser(&boarding); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(boarding); err != nil {
		return fail(c, validationError(err))
	}

	if err := h.service.CreateBoarding(&boarding); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "Boarding created successfully!", fiber.Map{"boarding": boarding})
}

// HandleUpdateBoarding updates an existing boarding house listing.
func (h *BoardingHandler) HandleUpdateBoarding(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	var boarding models.Boarding
	if err := c.BodyParser(&boarding); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(boarding); err != nil {
		return fail(c, validationError(err))
	}

	boarding.ID = id
	if err := h.service.UpdateBoarding(&boarding); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Boarding updated successfully!", nil)
}

// HandleDeleteBoarding deletes a boarding house listing.
func (h *BoardingHandler) HandleDeleteBoarding(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteBoarding(id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "Boarding deleted successfully!", nil)
}
