package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"TaskControl/Models"
	"TaskControl/Reports"
)

// ExportController renders finished tasks as a downloadable workbook
type ExportController struct {
	DB *gorm.DB
}

// NewExportController creates a new ExportController
func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

const exportTimestampLayout = "2006-01-02 15:04:05"

// BuildFinishedTasksWorkbook renders every finished task into a workbook.
// Archived tasks are included with their flag so the spreadsheet stays a
// complete record.
func BuildFinishedTasksWorkbook(db *gorm.DB) (*excelize.File, error) {
	var tasks []Models.Task
	if result := db.Where("status = ?", Models.StatusFinished).Find(&tasks); result.Error != nil {
		return nil, fmt.Errorf("error fetching finished tasks: %w", result.Error)
	}

	f := excelize.NewFile()

	sheetName := "Finished Tasks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Description", "Assignee", "Due Date",
		"Started At", "Finished At", "Elapsed Minutes", "On Time", "Archived",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, task := range tasks {
		row := rowIndex + 2 // data starts below the header row

		startedAt := ""
		if task.StartedAt != nil {
			startedAt = task.StartedAt.Format(exportTimestampLayout)
		}
		finishedAt := ""
		onTime := ""
		if task.FinishedAt != nil {
			finishedAt = task.FinishedAt.Format(exportTimestampLayout)
			if Reports.IsOnTime(*task.FinishedAt, task.DueDate) {
				onTime = "Yes"
			} else {
				onTime = "No"
			}
		}
		elapsed := interface{}(nil)
		if task.ElapsedMinutes != nil {
			elapsed = *task.ElapsedMinutes
		}

		values := []interface{}{
			task.ID,
			task.Description,
			task.Assignee,
			task.DueDate,
			startedAt,
			finishedAt,
			elapsed,
			onTime,
			task.Archived,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 18)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	return f, nil
}

// DownloadFinishedTasks streams the finished-tasks workbook as an attachment
func (c *ExportController) DownloadFinishedTasks(ctx *fiber.Ctx) error {
	f, err := BuildFinishedTasksWorkbook(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to build export: %v", err),
		})
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to write workbook",
		})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("finished_tasks_%s.xlsx", timestamp)

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	return ctx.Send(buf.Bytes())
}
