package initializers

import (
	"errors"
	"log"
	"os"

	"github.com/jawaharlalr/dpadmin/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial operator account from ADMIN_EMAIL and
// ADMIN_PASSWORD if it does not exist yet. Further operators can be
// added by listing their emails in ADMIN_EMAILS.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}

	var existing models.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Admin seed lookup failed:", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("Admin seed hashing failed:", err)
		return
	}

	admin := models.User{
		Fullname: os.Getenv("ADMIN_NAME"),
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Admin seed failed:", err)
		return
	}
	log.Println("Seeded admin account:", email)
}
