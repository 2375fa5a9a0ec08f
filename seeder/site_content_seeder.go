package seeder

import (
	"log"

	"github.com/jmoiron/sqlx"
)

const defaultAboutContent = `{
	"headerTitle": "VỀ CHÚNG TÔI",
	"companyName": "Công ty Luật TNHH ViLaw",
	"introParagraphs": [
		"Thời Gian - Tận Tâm - Tận Lực là triết lý hoạt động của chúng tôi.",
		"ViLaw cam kết mang đến chất lượng dịch vụ pháp lý tốt nhất cho khách hàng."
	]
}`

const defaultContactContent = `{
	"headerTitle": "LIÊN HỆ",
	"companyName": "Công ty Luật TNHH ViLaw",
	"hotline": "1900 0000",
	"email": "lienhe@vilaw.vn",
	"address": "Hà Nội, Việt Nam"
}`

func siteContentSeeder(db *sqlx.DB) {
	seeds := map[string]string{
		"about":   defaultAboutContent,
		"contact": defaultContactContent,
	}

	for key, content := range seeds {
		_, err := db.Exec(`
			INSERT INTO site_content (content_key, content, version, updated_by)
			VALUES ($1, $2, 1, 'seeder')
			ON CONFLICT (content_key) DO NOTHING
		`, key, content)
		if err != nil {
			log.Fatalf("Failed to seed site content %s: %v", key, err)
		}
	}

	log.Println("Seeded default site content.")
}
