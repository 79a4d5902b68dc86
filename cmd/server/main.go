package main

import (
	"log"
	"os"
	"strings"

	"school-site-api/config"
	"school-site-api/internal/activity"
	"school-site-api/internal/auth"
	"school-site-api/internal/contact"
	"school-site-api/internal/content"
	"school-site-api/internal/gallery"
	"school-site-api/internal/music"
	"school-site-api/internal/staff"
	"school-site-api/internal/topper"
	"school-site-api/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
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

	if err := db.AutoMigrate(
		&auth.AdminUser{},
		&gallery.GalleryImage{},
		&topper.Topper{},
		&staff.StaffMember{},
		&activity.Activity{},
		&content.PageContent{},
		&music.MusicSettings{},
		&contact.ContactSubmission{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if cfg.AdminPassword != "" {
		log.Println("WARNING: ADMIN_PASSWORD is only read by the createadmin command; logins always require a stored password hash")
	}

	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.CORSOrigins != "" {
		origins = origins[:0]
		for _, o := range strings.Split(cfg.CORSOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService)

	galleryService := &gallery.GalleryService{DB: db, Bucket: cfg.GCSBucket}
	gallery.RegisterRoutes(r, galleryService)

	topperService := &topper.TopperService{DB: db}
	topper.RegisterRoutes(r, topperService)

	staffService := &staff.StaffService{DB: db}
	staff.RegisterRoutes(r, staffService)

	activityService := &activity.ActivityService{DB: db}
	activity.RegisterRoutes(r, activityService)

	contentService := &content.ContentService{DB: db}
	content.RegisterRoutes(r, contentService)

	musicService := &music.MusicService{DB: db}
	music.RegisterRoutes(r, musicService)

	contactService := &contact.ContactService{DB: db}
	contact.RegisterRoutes(r, contactService)

	uploadService := &upload.UploadService{Bucket: cfg.GCSBucket}
	upload.RegisterRoutes(r, uploadService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
