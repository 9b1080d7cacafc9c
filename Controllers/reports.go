package Controllers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskControl/Models"
	"TaskControl/Reports"
)

// ReportController serves the read-side report views
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetNotStarted lists tasks that have not been started, optionally for one
// collaborator. The filter is by status only; due dates are never compared
// against today here.
func (c *ReportController) GetNotStarted(ctx *fiber.Ctx) error {
	query := c.DB.Where("status = ?", Models.StatusNotStarted)
	if collaborator := ctx.Query("collaborator"); collaborator != "" {
		query = query.Where("assignee = ?", collaborator)
	}

	var tasks []Models.Task
	if result := query.Find(&tasks); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}
	return ctx.JSON(tasks)
}

// GetSummary recomputes the per-collaborator summary from the full task
// collection on every request and returns it sorted by collaborator name.
func (c *ReportController) GetSummary(ctx *fiber.Ctx) error {
	var tasks []Models.Task
	if result := c.DB.Find(&tasks); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	summaries := Reports.Summarize(tasks)

	rows := make([]Reports.CollaboratorSummary, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Collaborator < rows[j].Collaborator
	})

	return ctx.JSON(rows)
}
