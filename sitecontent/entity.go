package sitecontent

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	KeyAbout   = "about"
	KeyContact = "contact"
)

func ValidKey(key string) bool {
	return key == KeyAbout || key == KeyContact
}

type SiteContent struct {
	ContentKey string         `db:"content_key" json:"content_key"`
	Content    types.JSONText `db:"content" json:"content"`
	Version    int            `db:"version" json:"version"`
	UpdatedBy  *string        `db:"updated_by" json:"updated_by"`
	TsUpdate   time.Time      `db:"ts_update" json:"ts_update"`
}

// AboutContent is the editable About page payload.
type AboutContent struct {
	HeaderTitle     string          `json:"headerTitle"`
	CompanyName     string          `json:"companyName"`
	IntroParagraphs []string        `json:"introParagraphs,omitempty"`
	Timeline        []TimelineEntry `json:"timeline,omitempty"`
	Awards          []Award         `json:"awards,omitempty"`
	Testimonials    []Testimonial   `json:"testimonials,omitempty"`
	Principles      []string        `json:"principles,omitempty"`
	Mission         string          `json:"mission,omitempty"`
	CoreValues      []string        `json:"coreValues,omitempty"`
	Stats           []StatEntry     `json:"stats,omitempty"`
	Services        []string        `json:"services,omitempty"`
	ServicesImage   string          `json:"servicesImage,omitempty"`
	Offices         []Office        `json:"offices,omitempty"`
	ContactCTA      string          `json:"contactCTA,omitempty"`
}

type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Award struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	Issuer string `json:"issuer"`
}

type Testimonial struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Content  string `json:"content"`
}

type StatEntry struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type Office struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ContactContent is the editable Contact page payload.
type ContactContent struct {
	HeroTitle     string         `json:"heroTitle"`
	HeroSubtitle  string         `json:"heroSubtitle,omitempty"`
	CompanyInfo   string         `json:"companyInfo,omitempty"`
	Address       string         `json:"address,omitempty"`
	Hotline       string         `json:"hotline,omitempty"`
	Email         string         `json:"email,omitempty"`
	BusinessHours []BusinessHour `json:"businessHours,omitempty"`
	MapEmbedSrc   string         `json:"mapEmbedSrc,omitempty"`
}

type BusinessHour struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}
