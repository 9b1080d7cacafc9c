package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskControl/Models"
)

// CollaboratorController handles the collaborator roster
type CollaboratorController struct {
	DB *gorm.DB
}

// NewCollaboratorController creates a new CollaboratorController
func NewCollaboratorController(db *gorm.DB) *CollaboratorController {
	return &CollaboratorController{DB: db}
}

// GetCollaborators retrieves all collaborators
func (c *CollaboratorController) GetCollaborators(ctx *fiber.Ctx) error {
	var collaborators []Models.Collaborator
	if result := c.DB.Find(&collaborators); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve collaborators"})
	}
	return ctx.JSON(collaborators)
}

// CreateCollaborator adds a collaborator to the roster
func (c *CollaboratorController) CreateCollaborator(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	collaborator := Models.Collaborator{Name: input.Name}
	if result := c.DB.Create(&collaborator); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create collaborator"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(collaborator)
}

// DeleteCollaborator removes a collaborator. Tasks assigned to them keep
// their assignee name; dangling references are tolerated.
func (c *CollaboratorController) DeleteCollaborator(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid collaborator ID"})
	}

	var collaborator Models.Collaborator
	if result := c.DB.First(&collaborator, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Collaborator not found"})
	}

	c.DB.Delete(&collaborator)

	return ctx.JSON(fiber.Map{"message": "Collaborator deleted successfully"})
}
