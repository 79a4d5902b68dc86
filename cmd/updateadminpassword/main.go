// Command updateadminpassword rotates an existing admin's password.
// With no plaintext login fallback, this is the recovery path for a
// forgotten credential.
package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"school-site-api/config"
	"school-site-api/internal/auth"
	"school-site-api/internal/util"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "new admin password (will be bcrypt hashed)")
	flag.Parse()

	if strings.TrimSpace(*email) == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	hash, err := util.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	svc := &auth.AuthService{DB: db}
	admin, err := svc.UpdateAdminPassword(*email, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("No admin found with email %s; use createadmin first", *email)
		}
		log.Fatal("Failed to update password:", err)
	}

	log.Printf("Updated password for admin %s (id %d)", admin.Email, admin.ID)
}
