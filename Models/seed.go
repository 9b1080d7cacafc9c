package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureSeedData upserts the fixed login accounts and the initial
// collaborator roster. It is idempotent and meant to be invoked explicitly
// at deploy time (the -seed flag), not on every boot.
func EnsureSeedData(db *gorm.DB) error {
	users := []struct {
		Username    string
		PasswordEnv string
		Role        string
	}{
		{"admin", "SEED_ADMIN_PASSWORD", RoleAdmin},
		{"operations", "SEED_COLLABORATOR_PASSWORD", RoleCollaborator},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		password := os.Getenv(u.PasswordEnv)
		if password == "" {
			password = "changeme"
			log.Printf("%s not set, seeding user %q with the default password", u.PasswordEnv, u.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&User{Username: u.Username, Password: hash, Role: u.Role}).Error; err != nil {
			return err
		}
	}

	names := []string{
		"Didier Ortiz",
		"Álvaro Melara",
		"Erick Arévalo",
		"Rodrigo Pineda",
		"Silvia Baires",
	}
	for _, name := range names {
		var count int64
		if err := db.Model(&Collaborator{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&Collaborator{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
