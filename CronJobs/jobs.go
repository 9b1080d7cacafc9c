package CronJobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"TaskControl/Controllers"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ExportScheduler writes a nightly snapshot of the finished-tasks workbook
// to the export directory.
type ExportScheduler struct {
	cronScheduler *cron.Cron
	db            *gorm.DB
	outputDir     string
	schedule      string
	jobID         cron.EntryID
}

// NewExportScheduler creates a new export scheduler with the given schedule.
// Format: "0 0 1 * * *" = at 01:00:00 AM every day.
func NewExportScheduler(db *gorm.DB, outputDir, schedule string) *ExportScheduler {
	return &ExportScheduler{
		cronScheduler: cron.New(cron.WithSeconds()),
		db:            db,
		outputDir:     outputDir,
		schedule:      schedule,
	}
}

// Start initiates the export cron job
func (s *ExportScheduler) Start() error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("error creating export directory: %w", err)
	}

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(s.schedule, func() {
		log.Println("Running scheduled finished-tasks export")
		s.runExport()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Printf("Export scheduler started with schedule %q", s.schedule)

	return nil
}

// Stop terminates the export scheduler
func (s *ExportScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Export scheduler stopped")
	}
}

func (s *ExportScheduler) runExport() {
	f, err := Controllers.BuildFinishedTasksWorkbook(s.db)
	if err != nil {
		log.Printf("Scheduled export failed: %v", err)
		return
	}

	filename := filepath.Join(s.outputDir, fmt.Sprintf("finished_tasks_%s.xlsx", time.Now().Format("20060102")))
	if err := f.SaveAs(filename); err != nil {
		log.Printf("Error saving scheduled export: %v", err)
		return
	}

	log.Printf("Scheduled export written to %s", filename)
}
