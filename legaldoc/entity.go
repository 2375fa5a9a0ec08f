package legaldoc

import (
	"time"

	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type LegalDocument struct {
	ID               int64          `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	DocumentNumber   string         `db:"document_number" json:"document_number"`
	DocumentType     string         `db:"document_type" json:"document_type"`
	IssuingAuthority string         `db:"issuing_authority" json:"issuing_authority"`
	IssuedDate       *time.Time     `db:"issued_date" json:"issued_date"`
	EffectiveDate    *time.Time     `db:"effective_date" json:"effective_date"`
	ExpiryDate       *time.Time     `db:"expiry_date" json:"expiry_date"`
	Status           string         `db:"status" json:"status"`
	Tags             pq.StringArray `db:"tags" json:"tags"`
	FileURL          *string        `db:"file_url" json:"file_url"`
	FileSize         int64          `db:"file_size" json:"file_size"`
	DownloadCount    int64          `db:"download_count" json:"download_count"`
	UploadedBy       *int64         `db:"uploaded_by" json:"uploaded_by"`
	UploadedByName   *string        `db:"uploaded_by_name" json:"uploaded_by_name,omitempty"`
	IsImportant      bool           `db:"is_important" json:"is_important"`
	IsApproved       bool           `db:"is_approved" json:"is_approved"`
	IsActive         bool           `db:"is_active" json:"-"`
	HTMLContent      *string        `db:"html_content" json:"html_content,omitempty"`
	TsCreate         time.Time      `db:"ts_create" json:"ts_create"`
	TsUpdate         time.Time      `db:"ts_update" json:"ts_update"`
}

// DocumentDetail is the single-document payload with the generated table
// of contents attached.
type DocumentDetail struct {
	LegalDocument
	HTMLToc []Heading `json:"html_toc"`
}

type ListFilter struct {
	Limit            int
	Offset           int
	Search           string
	DocumentType     string
	Status           string
	IssuingAuthority string
	IsImportant      *bool
	Tags             []string
	Pending          lifecycle.PendingHint
	Role             lifecycle.Role
}

type CreateRequest struct {
	Title            string   `json:"title" form:"title" binding:"required"`
	DocumentNumber   string   `json:"document_number" form:"document_number" binding:"required"`
	DocumentType     string   `json:"document_type" form:"document_type" binding:"required"`
	IssuingAuthority string   `json:"issuing_authority" form:"issuing_authority" binding:"required"`
	IssuedDate       string   `json:"issued_date" form:"issued_date" binding:"required"`
	EffectiveDate    string   `json:"effective_date" form:"effective_date"`
	ExpiryDate       string   `json:"expiry_date" form:"expiry_date"`
	Tags             string   `json:"tags" form:"tags"`
	IsImportant      bool     `json:"is_important" form:"is_important"`
	HTMLContent      string   `json:"html_content" form:"html_content"`
}

// UpdateRequest fields are pointers so an absent field keeps the stored
// value while an empty string clears a nullable one.
type UpdateRequest struct {
	Title            *string `json:"title" form:"title"`
	DocumentNumber   *string `json:"document_number" form:"document_number"`
	DocumentType     *string `json:"document_type" form:"document_type"`
	IssuingAuthority *string `json:"issuing_authority" form:"issuing_authority"`
	IssuedDate       *string `json:"issued_date" form:"issued_date"`
	EffectiveDate    *string `json:"effective_date" form:"effective_date"`
	ExpiryDate       *string `json:"expiry_date" form:"expiry_date"`
	Tags             *string `json:"tags" form:"tags"`
	IsImportant      *bool   `json:"is_important" form:"is_important"`
	HTMLContent      *string `json:"html_content" form:"html_content"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

type DocumentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type StatusInfo struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
	Name  string `json:"name"`
}
