package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mentorhub/internal/database"
	"mentorhub/internal/middleware"
	"mentorhub/internal/modules/auth"
	"mentorhub/internal/modules/availability"
	"mentorhub/internal/modules/booking"
	"mentorhub/internal/modules/mentor"
	jwtsvc "mentorhub/internal/pkg/jwt"
	"mentorhub/internal/pkg/mailer"
	"mentorhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "mentorhub.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	mail := newMailer()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	mentorService := mentor.NewService(mentorRepo)
	mentorHandler := mentor.NewHandler(mentorService)

	availabilityService := availability.NewService(availabilityRepo, mentorRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, mentorRepo, mail, os.Getenv("ADMIN_EMAIL"))
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		mentorHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// editor or admin
		editor := v1.Group("/")
		editor.Use(middleware.JWTAuth(j), middleware.RequireEditor())
		{
			availabilityHandler.RegisterEditorRoutes(editor)
			bookingHandler.RegisterEditorRoutes(editor)
		}

		// admin only
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			mentorHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// newMailer picks SMTP when configured and falls back to console logging.
func newMailer() mailer.Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, using console mailer")
		return mailer.NewConsoleMailer()
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}

	return mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})
}
