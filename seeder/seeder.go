package seeder

import (
	"log"

	"github.com/jmoiron/sqlx"
)

func RunSeeder(db *sqlx.DB) {
	log.Println("Running seeders...")

	adminSeeder(db)
	categorySeeder(db)
	siteContentSeeder(db)

	log.Println("Seeders completed.")
}
