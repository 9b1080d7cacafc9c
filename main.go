package main

import (
	"flag"
	"log"
	"os"

	"TaskControl/CronJobs"
	"TaskControl/FiberConfig"
	"TaskControl/Models"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "apply seed data and exit")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	Models.Connect()

	// Seeding runs as an explicit deploy step, not on every boot
	if *seed {
		if err := Models.EnsureSeedData(Models.DB); err != nil {
			log.Fatal("Failed to apply seed data:", err)
		}
		log.Println("Seed data applied")
		return
	}

	if schedule := os.Getenv("EXPORT_SCHEDULE"); schedule != "" {
		exporter := CronJobs.NewExportScheduler(Models.DB, "exports", schedule)
		if err := exporter.Start(); err != nil {
			log.Printf("Failed to start export scheduler: %v", err)
		}
	}

	FiberConfig.FiberConfig()
}
