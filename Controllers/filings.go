package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskControl/Models"
)

// TaxFilingController handles the monthly tax-compliance checklist
type TaxFilingController struct {
	DB *gorm.DB
}

func NewTaxFilingController(db *gorm.DB) *TaxFilingController {
	return &TaxFilingController{DB: db}
}

type filingInput struct {
	ClientName string `json:"clientName" validate:"required"`
	PersonType string `json:"personType" validate:"required,oneof=Natural Juridica"`
	Period     string `json:"period" validate:"required"`
}

// GetTaxFilings lists checklist rows, optionally scoped to one period
func (c *TaxFilingController) GetTaxFilings(ctx *fiber.Ctx) error {
	var filings []Models.TaxFiling
	query := c.DB
	if period := ctx.Query("period"); period != "" {
		query = query.Where("period = ?", period)
	}
	if result := query.Find(&filings); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tax filings"})
	}
	return ctx.JSON(filings)
}

// CreateTaxFiling adds a checklist row for a client and period. The
// (clientName, period) pair must not exist yet; the check runs before the
// insert rather than as a storage constraint.
func (c *TaxFilingController) CreateTaxFiling(ctx *fiber.Ctx) error {
	var input filingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Client name, person type (Natural/Juridica) and period are required"})
	}

	var count int64
	c.DB.Model(&Models.TaxFiling{}).
		Where("client_name = ? AND period = ?", input.ClientName, input.Period).
		Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A filing for this client and period already exists"})
	}

	filing := Models.TaxFiling{
		ClientName: input.ClientName,
		PersonType: input.PersonType,
		Period:     input.Period,
	}
	if result := c.DB.Create(&filing); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tax filing"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(filing)
}

// UpdateTaxFiling overwrites the milestone flags, dates and comments of a
// row. The dashboard saves the whole row on every checkbox toggle.
func (c *TaxFilingController) UpdateTaxFiling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filing ID"})
	}

	var filing Models.TaxFiling
	if result := c.DB.First(&filing, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tax filing not found"})
	}

	var input Models.TaxFiling
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filing.Collaborator = input.Collaborator
	filing.Comment = input.Comment
	filing.DocumentsRequested = input.DocumentsRequested
	filing.DocumentsProvided = input.DocumentsProvided
	filing.ReturnsFiled = input.ReturnsFiled
	filing.PaymentOrdersDelivered = input.PaymentOrdersDelivered
	filing.DeliveredOn = input.DeliveredOn
	if result := c.DB.Save(&filing); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tax filing"})
	}

	return ctx.JSON(filing)
}

// DeleteTaxFiling removes a checklist row
func (c *TaxFilingController) DeleteTaxFiling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filing ID"})
	}

	var filing Models.TaxFiling
	if result := c.DB.First(&filing, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tax filing not found"})
	}

	c.DB.Delete(&filing)

	return ctx.JSON(fiber.Map{"message": "Tax filing deleted successfully"})
}

// PayrollFilingController handles the monthly payroll checklist
type PayrollFilingController struct {
	DB *gorm.DB
}

func NewPayrollFilingController(db *gorm.DB) *PayrollFilingController {
	return &PayrollFilingController{DB: db}
}

// GetPayrollFilings lists checklist rows, optionally scoped to one period
func (c *PayrollFilingController) GetPayrollFilings(ctx *fiber.Ctx) error {
	var filings []Models.PayrollFiling
	query := c.DB
	if period := ctx.Query("period"); period != "" {
		query = query.Where("period = ?", period)
	}
	if result := query.Find(&filings); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payroll filings"})
	}
	return ctx.JSON(filings)
}

// CreatePayrollFiling adds a checklist row, rejecting duplicate
// (clientName, period) pairs with the same existence check as tax filings.
func (c *PayrollFilingController) CreatePayrollFiling(ctx *fiber.Ctx) error {
	var input filingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Client name, person type (Natural/Juridica) and period are required"})
	}

	var count int64
	c.DB.Model(&Models.PayrollFiling{}).
		Where("client_name = ? AND period = ?", input.ClientName, input.Period).
		Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A filing for this client and period already exists"})
	}

	filing := Models.PayrollFiling{
		ClientName: input.ClientName,
		PersonType: input.PersonType,
		Period:     input.Period,
	}
	if result := c.DB.Create(&filing); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payroll filing"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(filing)
}

// UpdatePayrollFiling overwrites the milestone flags, dates and comments
func (c *PayrollFilingController) UpdatePayrollFiling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filing ID"})
	}

	var filing Models.PayrollFiling
	if result := c.DB.First(&filing, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll filing not found"})
	}

	var input Models.PayrollFiling
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filing.Collaborator = input.Collaborator
	filing.Comment = input.Comment
	filing.PayrollDetail = input.PayrollDetail
	filing.PayrollApproved = input.PayrollApproved
	filing.PaymentOrdersDelivered = input.PaymentOrdersDelivered
	filing.DeliveredOn = input.DeliveredOn
	if result := c.DB.Save(&filing); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payroll filing"})
	}

	return ctx.JSON(filing)
}

// DeletePayrollFiling removes a checklist row
func (c *PayrollFilingController) DeletePayrollFiling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filing ID"})
	}

	var filing Models.PayrollFiling
	if result := c.DB.First(&filing, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll filing not found"})
	}

	c.DB.Delete(&filing)

	return ctx.JSON(fiber.Map{"message": "Payroll filing deleted successfully"})
}
