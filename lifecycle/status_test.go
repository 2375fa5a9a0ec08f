package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDeriveStatus(t *testing.T) {
	today := *date("2023-06-01")

	tests := []struct {
		name string
		d    Dates
		want Status
	}{
		{"no dates at all", Dates{}, StatusUndetermined},
		{"effective missing, expiry set", Dates{Issued: date("2020-01-01"), Expiry: date("2022-01-01")}, StatusUndetermined},
		{"effective in the future", Dates{Effective: date("2023-06-02")}, StatusNotYetEffective},
		{"effective today", Dates{Effective: date("2023-06-01")}, StatusEffective},
		{"effective in the past, no expiry", Dates{Issued: date("2020-01-01"), Effective: date("2021-01-01")}, StatusEffective},
		{"expiry today still effective", Dates{Effective: date("2021-01-01"), Expiry: date("2023-06-01")}, StatusEffective},
		{"expiry yesterday", Dates{Effective: date("2021-01-01"), Expiry: date("2023-05-31")}, StatusExpired},
		{"expiry far past", Dates{Effective: date("2019-01-01"), Expiry: date("2020-01-01")}, StatusExpired},
		{"issued date alone is ignored", Dates{Issued: date("2020-01-01")}, StatusUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(today, tt.d))
		})
	}
}

func TestDeriveStatusDeterministic(t *testing.T) {
	today := *date("2023-06-01")
	d := Dates{Issued: date("2020-01-01"), Effective: date("2021-01-01")}

	first := DeriveStatus(today, d)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DeriveStatus(today, d))
	}
	assert.Equal(t, StatusEffective, first)
	assert.Equal(t, "co_hieu_luc", string(first))
}

func TestDeriveStatusIgnoresTimeOfDay(t *testing.T) {
	effective := date("2023-06-01")
	lateToday := time.Date(2023, 6, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, StatusEffective, DeriveStatus(lateToday, Dates{Effective: effective}))

	expiry := date("2023-06-01")
	assert.Equal(t, StatusEffective, DeriveStatus(lateToday, Dates{Effective: date("2023-01-01"), Expiry: expiry}))
}

func TestDeriveStatusIgnoresServerZone(t *testing.T) {
	// Dates come out of the database as UTC midnights; today is server-local.
	hanoi := time.FixedZone("UTC+7", 7*3600)
	bogota := time.FixedZone("UTC-5", -5*3600)

	morningHanoi := time.Date(2023, 6, 1, 9, 0, 0, 0, hanoi)
	assert.Equal(t, StatusEffective,
		DeriveStatus(morningHanoi, Dates{Effective: date("2023-06-01")}))

	morningBogota := time.Date(2023, 6, 1, 9, 0, 0, 0, bogota)
	assert.Equal(t, StatusEffective,
		DeriveStatus(morningBogota, Dates{Effective: date("2023-01-01"), Expiry: date("2023-06-01")}))

	lateHanoi := time.Date(2023, 6, 1, 23, 30, 0, 0, hanoi)
	assert.Equal(t, StatusNotYetEffective,
		DeriveStatus(lateHanoi, Dates{Effective: date("2023-06-02")}))
	assert.Equal(t, StatusExpired,
		DeriveStatus(lateHanoi, Dates{Effective: date("2023-01-01"), Expiry: date("2023-05-31")}))
}

func TestValidateDates(t *testing.T) {
	assert.NoError(t, ValidateDates(Dates{}))
	assert.NoError(t, ValidateDates(Dates{Effective: date("2023-01-01")}))
	assert.NoError(t, ValidateDates(Dates{Effective: date("2023-01-01"), Expiry: date("2023-01-01")}))

	err := ValidateDates(Dates{Effective: date("2023-01-02"), Expiry: date("2023-01-01")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2021-01-01")
	assert.NoError(t, err)
	assert.Equal(t, date("2021-01-01"), got)

	for _, absent := range []string{"", "null"} {
		got, err = ParseDate(absent)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}

	_, err = ParseDate("01/02/2021")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatusCatalog(t *testing.T) {
	assert.Len(t, Statuses(), 4)
	for _, s := range Statuses() {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Name())
	}
	assert.False(t, Status("approved").Valid())
}
