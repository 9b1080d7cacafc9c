package FiberConfig

import (
	"log"
	"os"

	"TaskControl/Controllers"
	"TaskControl/Models"
	"TaskControl/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db)
	taskController := Controllers.NewTaskController(db)
	collaboratorController := Controllers.NewCollaboratorController(db)
	taxFilingController := Controllers.NewTaxFilingController(db)
	payrollFilingController := Controllers.NewPayrollFilingController(db)
	reportController := Controllers.NewReportController(db)
	exportController := Controllers.NewExportController(db)

	// API group
	api := app.Group("/api")

	api.Post("/login", authController.Login)

	// Task routes
	tasks := api.Group("/tasks", middleware.Verify(""))
	tasks.Get("/", taskController.GetTasks)
	tasks.Get("/finished", taskController.GetFinishedTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Post("/:id/start", taskController.StartTask)
	tasks.Post("/:id/finish", taskController.FinishTask)
	tasks.Post("/:id/archive", taskController.ArchiveTask)
	tasks.Delete("/:id", middleware.Verify(Models.RoleAdmin), taskController.DeleteTask)

	// Collaborator routes
	collaborators := api.Group("/collaborators", middleware.Verify(""))
	collaborators.Get("/", collaboratorController.GetCollaborators)
	collaborators.Post("/", middleware.Verify(Models.RoleAdmin), collaboratorController.CreateCollaborator)
	collaborators.Delete("/:id", middleware.Verify(Models.RoleAdmin), collaboratorController.DeleteCollaborator)

	// Report routes
	reports := api.Group("/reports", middleware.Verify(""))
	reports.Get("/not-started", reportController.GetNotStarted)
	reports.Get("/summary", reportController.GetSummary)

	// Compliance checklist routes
	taxes := api.Group("/tax-filings", middleware.Verify(""))
	taxes.Get("/", taxFilingController.GetTaxFilings)
	taxes.Post("/", taxFilingController.CreateTaxFiling)
	taxes.Put("/:id", taxFilingController.UpdateTaxFiling)
	taxes.Delete("/:id", middleware.Verify(Models.RoleAdmin), taxFilingController.DeleteTaxFiling)

	payroll := api.Group("/payroll-filings", middleware.Verify(""))
	payroll.Get("/", payrollFilingController.GetPayrollFilings)
	payroll.Post("/", payrollFilingController.CreatePayrollFiling)
	payroll.Put("/:id", payrollFilingController.UpdatePayrollFiling)
	payroll.Delete("/:id", middleware.Verify(Models.RoleAdmin), payrollFilingController.DeletePayrollFiling)

	// Export route
	api.Get("/export/finished-tasks", middleware.Verify(""), exportController.DownloadFinishedTasks)
}

func FiberConfig() {
	log.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Fatal(app.Listen(":" + port))
}
