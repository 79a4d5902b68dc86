// Command createadmin seeds an admin user with a bcrypt password hash.
// Logins require a stored hash, so this is the only bootstrap path.
package main

import (
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
	password := flag.String("password", "", "admin password (will be bcrypt hashed; defaults to ADMIN_PASSWORD)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if *password == "" {
		*password = cfg.AdminPassword
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		log.Fatal("-email and a password (-password or ADMIN_PASSWORD) are required")
	}

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

	if err := db.AutoMigrate(&auth.AdminUser{}); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := util.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	svc := &auth.AuthService{DB: db}
	admin, err := svc.CreateAdmin(*email, hash)
	if err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Created admin %s (id %d)", admin.Email, admin.ID)
}
