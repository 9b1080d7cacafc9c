package Models

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and migrates the schema. DATABASE_URL selects
// Postgres (the hosted deployment); otherwise a local sqlite file is used.
func Connect() {
	var connection *gorm.DB
	var err error

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		connection, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "database.db"
		}
		connection, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	migrateLegacyColumns(DB)

	// 1. Base tables with no references
	DB.AutoMigrate(
		&User{},
		&Collaborator{},
	)

	// 2. Tables that reference collaborators by name
	DB.AutoMigrate(&Task{})
	DB.AutoMigrate(
		&TaxFiling{},
		&PayrollFiling{},
	)
}

// migrateLegacyColumns aliases columns left behind by earlier schema
// versions so old rows keep loading under the canonical field names.
func migrateLegacyColumns(db *gorm.DB) {
	renames := []struct {
		model    interface{}
		old, new string
	}{
		{&Task{}, "archivada", "archived"},
		{&Task{}, "tiempo", "elapsed_minutes"},
		{&TaxFiling{}, "persona", "person_type"},
		{&PayrollFiling{}, "persona", "person_type"},
	}

	m := db.Migrator()
	for _, r := range renames {
		if !m.HasTable(r.model) {
			continue
		}
		if m.HasColumn(r.model, r.old) && !m.HasColumn(r.model, r.new) {
			if err := m.RenameColumn(r.model, r.old, r.new); err != nil {
				log.Printf("Failed to rename legacy column %s: %v", r.old, err)
			}
		}
	}
}
