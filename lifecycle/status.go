package lifecycle

import (
	"fmt"
	"time"
)

// Status is the lifecycle label of a dated legal document. The wire values are
// fixed; existing clients match on them.
type Status string

const (
	StatusUndetermined    Status = "chua_xac_dinh"
	StatusNotYetEffective Status = "chua_hieu_luc"
	StatusEffective       Status = "co_hieu_luc"
	StatusExpired         Status = "het_hieu_luc"
)

var statusNames = map[Status]string{
	StatusUndetermined:    "Chưa xác định",
	StatusNotYetEffective: "Chưa có hiệu lực",
	StatusEffective:       "Có hiệu lực",
	StatusExpired:         "Hết hiệu lực",
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Name returns the display label for the status.
func (s Status) Name() string {
	return statusNames[s]
}

// Statuses lists all lifecycle statuses in presentation order.
func Statuses() []Status {
	return []Status{StatusUndetermined, StatusNotYetEffective, StatusEffective, StatusExpired}
}

// Dates holds the three optional calendar dates of a document. Issued is
// informational only and does not affect the derived status.
type Dates struct {
	Issued    *time.Time
	Effective *time.Time
	Expiry    *time.Time
}

// truncateDay rebuilds the calendar day in UTC so values carrying different
// zones (server-local time.Now vs UTC DATE scans) compare by date alone.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DeriveStatus computes the lifecycle label from the document dates relative to
// today. Comparison is at day resolution; both the effective and the expiry
// boundary day count as effective.
func DeriveStatus(today time.Time, d Dates) Status {
	day := truncateDay(today)

	if d.Effective == nil {
		return StatusUndetermined
	}

	effective := truncateDay(*d.Effective)
	if day.Before(effective) {
		return StatusNotYetEffective
	}

	if d.Expiry != nil {
		expiry := truncateDay(*d.Expiry)
		if day.After(expiry) {
			return StatusExpired
		}
	}

	return StatusEffective
}

// ValidateDates rejects date combinations that can never be effective.
func ValidateDates(d Dates) error {
	if d.Effective != nil && d.Expiry != nil {
		if truncateDay(*d.Expiry).Before(truncateDay(*d.Effective)) {
			return fmt.Errorf("%w: expiry date is before effective date", ErrValidation)
		}
	}
	return nil
}

// StatusCase returns the SQL CASE expression deriving the same label as
// DeriveStatus, for listing queries that filter by status. prefix is the table
// alias including the trailing dot, or empty.
func StatusCase(prefix string) string {
	return fmt.Sprintf(`(CASE
		WHEN %[1]seffective_date IS NULL THEN '%[2]s'
		WHEN CURRENT_DATE < %[1]seffective_date THEN '%[3]s'
		WHEN %[1]sexpiry_date IS NOT NULL AND CURRENT_DATE > %[1]sexpiry_date THEN '%[4]s'
		ELSE '%[5]s'
	END)`, prefix, StatusUndetermined, StatusNotYetEffective, StatusExpired, StatusEffective)
}

// ParseDate parses an ISO-8601 date string. Empty and "null" are treated as
// absent, matching what clients send for cleared date fields.
func ParseDate(s string) (*time.Time, error) {
	if s == "" || s == "null" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return &t, nil
}
