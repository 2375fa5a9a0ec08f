package seeder

import (
	"log"

	"github.com/jmoiron/sqlx"
)

var defaultCategories = []struct {
	Value string
	Label string
}{
	{"dan_su", "Dân sự"},
	{"hinh_su", "Hình sự"},
	{"hanh_chinh", "Hành chính"},
	{"lao_dong", "Lao động"},
	{"hon_nhan_gia_dinh", "Hôn nhân và gia đình"},
	{"dat_dai", "Đất đai"},
	{"doanh_nghiep", "Doanh nghiệp"},
	{"thue", "Thuế"},
}

func categorySeeder(db *sqlx.DB) {
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM category")
	if err != nil {
		log.Fatalf("Failed to check category table: %v", err)
	}

	if count > 0 {
		log.Println("Categories already exist.")
		return
	}

	for _, c := range defaultCategories {
		_, err := db.Exec(`
			INSERT INTO category (value, label, is_approved, is_active)
			VALUES ($1, $2, true, true)
			ON CONFLICT (value) DO NOTHING
		`, c.Value, c.Label)
		if err != nil {
			log.Fatalf("Failed to insert category %s: %v", c.Value, err)
		}
	}

	log.Printf("Seeded %d default categories.", len(defaultCategories))
}
