package seeder

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/util"
)

func adminSeeder(db *sqlx.DB) {
	phone := os.Getenv("ADMIN_PHONE")
	if phone == "" {
		phone = "0123456789"
	}

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM users WHERE phone = $1", phone)
	if err != nil {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required to seed the admin account")
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (phone, email, full_name, password, role, is_phone_verified, is_email_verified, is_active)
		VALUES ($1, $2, $3, $4, 'admin', true, true, true)
		RETURNING id
	`, phone, "admin@vilaw.vn", "Quản trị viên", hashedPassword).Scan(&userID)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user with ID: %d", userID)
}
