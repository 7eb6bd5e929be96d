package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/internal/database"
	"mentorhub/internal/domain"
)

type mentorSeed struct {
	name  string
	title string
	email string
	rules [][3]interface{} // day, start, end
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "mentorhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Mentor{},
		&domain.AvailabilityRule{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_rules")
	db.Exec("DELETE FROM mentors")
	db.Exec("DELETE FROM users")

	log.Println("Creating staff accounts...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "admin@innovationcenter.edu",
		PasswordHash: string(adminHash),
		Name:         "Center Admin",
		Role:         domain.RoleAdmin,
	})

	editorHash, _ := bcrypt.GenerateFromPassword([]byte("editor123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "editor@innovationcenter.edu",
		PasswordHash: string(editorHash),
		Name:         "Content Editor",
		Role:         domain.RoleEditor,
	})

	log.Println("Creating mentors with availability...")
	mentors := []mentorSeed{
		{
			name: "Dana Whitfield", title: "Startup Strategy", email: "dana@innovationcenter.edu",
			rules: [][3]interface{}{{1, "09:00", "12:00"}, {3, "14:00", "17:00"}},
		},
		{
			name: "Marcus Lee", title: "Product & Design", email: "marcus@innovationcenter.edu",
			rules: [][3]interface{}{{2, "10:00", "13:00"}, {4, "09:00", "10:30"}},
		},
		{
			name: "Priya Raman", title: "Venture Finance", email: "",
			rules: [][3]interface{}{{5, "13:00", "16:00"}},
		},
	}

	for _, ms := range mentors {
		m := domain.Mentor{Name: ms.name, Title: ms.title, Email: ms.email, Active: true}
		if err := db.Create(&m).Error; err != nil {
			log.Fatal("seed mentor failed:", err)
		}
		for _, r := range ms.rules {
			rule := domain.AvailabilityRule{
				MentorID:  m.ID,
				DayOfWeek: r[0].(int),
				StartTime: r[1].(string),
				EndTime:   r[2].(string),
				Active:    true,
			}
			if err := db.Create(&rule).Error; err != nil {
				log.Fatal("seed rule failed:", err)
			}
		}
	}

	log.Println("Seed complete.")
}
