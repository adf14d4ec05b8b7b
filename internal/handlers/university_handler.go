package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

// UniversityHandler handles HTTP requests for university listings.
type UniversityHandler struct {
	service  *services.UniversityService
	validate *validator.Validate
}

// NewUniversityHandler creates a new UniversityHandler.
func NewUniversityHandler(service *services.UniversityService) *UniversityHandler {
	return &UniversityHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the university routes.
func (h *UniversityHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetUniversities)
	router.Get("/:id", h.HandleGetUniversityByID)
	router.Post("/", h.HandleCreateUniversity)
	router.Put("/:id", h.HandleUpdateUniversity)
	router.Delete("/:id", h.HandleDeleteUniversity)
}

// HandleGetUniversities lists all universities.
func (h *UniversityHandler) HandleGetUniversities(c *fiber.Ctx) error {
	universities, err := h.service.GetAllUniversities()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"universities": universities})
}

// HandleGetUniversityByID retrieves a single university.
func (h *UniversityHandler) HandleGetUniversityByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	university, err := h.service.GetUniversityByID(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"university": university})
}

// HandleCreateUniversity creates a new university listing.
func (h *UniversityHandler) HandleCreateUniversity(c *fiber.Ctx) error {
	var university models.University
	if err := c.BodyParser(&university); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(university); err != nil {
		return fail(c, validationError(err))
	}

	if err := h.service.CreateUniversity(&university); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "University created successfully!", fiber.Map{"university": university})
}

// HandleUpdateUniversity updates an existing university listing.
func (h *UniversityHandler) HandleUpdateUniversity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	var university models.University
	if err := c.BodyParser(&university); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}
	if err := h.validate.Struct(university); err != nil {
		return fail(c, validationError(err))
	}

	university.ID = id
	if err := h.service.UpdateUniversity(&university); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "University updated successfully!", nil)
}

// HandleDeleteUniversity deletes a university listing.
func (h *UniversityHandler) HandleDeleteUniversity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteUniversity(id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "University deleted successfully!", nil)
}

// validationError folds a validator error into a single client-facing
// validation message naming the first failing field.
func validationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return apperrors.NewValidation(fmt.Sprintf("Field '%s' failed on the '%s' rule", errs[0].Field(), errs[0].Tag()))
	}
	return apperrors.NewValidation("Validation failed!")
}
