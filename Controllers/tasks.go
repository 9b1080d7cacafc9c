package Controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskControl/AbstractFunctions"
	"TaskControl/Lifecycle"
	"TaskControl/Models"
)

// TaskController handles task CRUD and lifecycle endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// GetTasks retrieves all tasks
func (c *TaskController) GetTasks(ctx *fiber.Ctx) error {
	var tasks []Models.Task
	if result := c.DB.Find(&tasks); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	return ctx.JSON(tasks)
}

// GetFinishedTasks lists finished tasks that have not been archived. This
// feeds the finished-tasks dashboard page.
func (c *TaskController) GetFinishedTasks(ctx *fiber.Ctx) error {
	var tasks []Models.Task
	result := c.DB.Where("status = ? AND archived = ?", Models.StatusFinished, false).Find(&tasks)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	return ctx.JSON(tasks)
}

type taskInput struct {
	Description string `json:"description" validate:"required"`
	Assignee    string `json:"assignee" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
}

// CreateTask creates a task in the NotStarted state with all timestamps null.
func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description, assignee and due date are required"})
	}
	if _, err := AbstractFunctions.ParseDate(input.DueDate); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due date"})
	}

	// Assignee must reference a known collaborator. Existing rows keep their
	// names if the collaborator is later deleted.
	var count int64
	c.DB.Model(&Models.Collaborator{}).Where("name = ?", input.Assignee).Count(&count)
	if count == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown collaborator"})
	}

	task := Models.Task{
		Description: input.Description,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
		Status:      Models.StatusNotStarted,
	}
	if result := c.DB.Create(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask is the correction escape hatch: it overwrites the descriptive
// fields without going through the state machine and never recomputes the
// frozen duration.
func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if result := c.DB.First(&task, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description, assignee and due date are required"})
	}

	Lifecycle.Edit(&task, Lifecycle.EditFields{
		Description: input.Description,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
	})
	if result := c.DB.Save(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// StartTask moves a task to InProgress, stamping the start time.
func (c *TaskController) StartTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if result := c.DB.First(&task, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if err := Lifecycle.Start(&task, AbstractFunctions.LocalNow()); err != nil {
		return lifecycleError(ctx, err)
	}
	if result := c.DB.Save(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// FinishTask moves a task to Finished, stamping the finish time and freezing
// the elapsed duration.
func (c *TaskController) FinishTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if result := c.DB.First(&task, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if err := Lifecycle.Finish(&task, AbstractFunctions.LocalNow()); err != nil {
		return lifecycleError(ctx, err)
	}
	if result := c.DB.Save(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// ArchiveTask retires a finished task from the active views.
func (c *TaskController) ArchiveTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if result := c.DB.First(&task, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if task.Status != Models.StatusFinished {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only finished tasks can be archived"})
	}

	task.Archived = true
	if result := c.DB.Save(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// DeleteTask removes a task
func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if result := c.DB.First(&task, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	c.DB.Delete(&task)

	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// lifecycleError maps the transition errors to client responses. A rejected
// transition never persists anything, so the stored row stays unchanged.
func lifecycleError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, Lifecycle.ErrInvalidTransition):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, Lifecycle.ErrMissingStartTime):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
