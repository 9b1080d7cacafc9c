package Controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskControl/Models"
)

func setupFilingApp(t *testing.T) *fiber.App {
	t.Helper()

	db := setupTestDB(t)
	tax := NewTaxFilingController(db)
	payroll := NewPayrollFilingController(db)

	app := fiber.New()
	app.Get("/api/tax-filings", tax.GetTaxFilings)
	app.Post("/api/tax-filings", tax.CreateTaxFiling)
	app.Put("/api/tax-filings/:id", tax.UpdateTaxFiling)
	app.Delete("/api/tax-filings/:id", tax.DeleteTaxFiling)
	app.Get("/api/payroll-filings", payroll.GetPayrollFilings)
	app.Post("/api/payroll-filings", payroll.CreatePayrollFiling)
	app.Put("/api/payroll-filings/:id", payroll.UpdatePayrollFiling)
	return app
}

func TestCreateTaxFiling(t *testing.T) {
	app := setupFilingApp(t)

	var filing Models.TaxFiling
	resp := doJSON(t, app, http.MethodPost, "/api/tax-filings", fiber.Map{
		"clientName": "Cafetalera El Roble",
		"personType": "Juridica",
		"period":     "2024-03",
	}, &filing)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Cafetalera El Roble", filing.ClientName)
	assert.False(t, filing.DocumentsRequested)
}

func TestCreateTaxFilingRejectsDuplicatePeriod(t *testing.T) {
	app := setupFilingApp(t)

	body := fiber.Map{
		"clientName": "Cafetalera El Roble",
		"personType": "Juridica",
		"period":     "2024-03",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/tax-filings", body, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/tax-filings", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Same client, different period is fine
	body["period"] = "2024-04"
	resp = doJSON(t, app, http.MethodPost, "/api/tax-filings", body, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateTaxFilingValidatesPersonType(t *testing.T) {
	app := setupFilingApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/tax-filings", fiber.Map{
		"clientName": "Cafetalera El Roble",
		"personType": "Sociedad",
		"period":     "2024-03",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTaxFilingMilestones(t *testing.T) {
	app := setupFilingApp(t)

	var filing Models.TaxFiling
	doJSON(t, app, http.MethodPost, "/api/tax-filings", fiber.Map{
		"clientName": "Ferreteria La Union",
		"personType": "Natural",
		"period":     "2024-03",
	}, &filing)

	var updated Models.TaxFiling
	resp := doJSON(t, app, http.MethodPut, "/api/tax-filings/1", fiber.Map{
		"collaborator":           "Ana",
		"comment":                "waiting on bank statements",
		"documentsRequested":     true,
		"documentsProvided":      true,
		"returnsFiled":           false,
		"paymentOrdersDelivered": false,
		"deliveredOn":            "",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, updated.DocumentsRequested)
	assert.True(t, updated.DocumentsProvided)
	assert.False(t, updated.ReturnsFiled)
	assert.Equal(t, "Ana", updated.Collaborator)
	assert.Equal(t, "Ferreteria La Union", updated.ClientName, "identity fields are not overwritten")
}

func TestGetTaxFilingsFiltersByPeriod(t *testing.T) {
	app := setupFilingApp(t)

	for _, period := range []string{"2024-03", "2024-04"} {
		doJSON(t, app, http.MethodPost, "/api/tax-filings", fiber.Map{
			"clientName": "Cafetalera El Roble",
			"personType": "Juridica",
			"period":     period,
		}, nil)
	}

	var filings []Models.TaxFiling
	resp := doJSON(t, app, http.MethodGet, "/api/tax-filings?period=2024-03", nil, &filings)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filings, 1)
	assert.Equal(t, "2024-03", filings[0].Period)
}

func TestPayrollFilingDuplicateCheck(t *testing.T) {
	app := setupFilingApp(t)

	body := fiber.Map{
		"clientName": "Transporte Rivera",
		"personType": "Natural",
		"period":     "2024-03",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/payroll-filings", body, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/payroll-filings", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdatePayrollFilingMilestones(t *testing.T) {
	app := setupFilingApp(t)

	doJSON(t, app, http.MethodPost, "/api/payroll-filings", fiber.Map{
		"clientName": "Transporte Rivera",
		"personType": "Natural",
		"period":     "2024-03",
	}, nil)

	var updated Models.PayrollFiling
	resp := doJSON(t, app, http.MethodPut, "/api/payroll-filings/1", fiber.Map{
		"collaborator":    "Luis",
		"payrollDetail":   true,
		"payrollApproved": true,
		"deliveredOn":     "2024-03-28",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, updated.PayrollDetail)
	assert.True(t, updated.PayrollApproved)
	assert.False(t, updated.PaymentOrdersDelivered)
	assert.Equal(t, "2024-03-28", updated.DeliveredOn)
}
