package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "Labor Law", "labor-law"},
		{"vietnamese diacritics", "Hôn nhân và gia đình", "hon-nhan-va-gia-dinh"},
		{"dj letter", "Đất đai", "dat-dai"},
		{"punctuation dropped", "Thuế & phí (2024)", "thue-phi-2024"},
		{"collapsed whitespace", "  Dân   sự  ", "dan-su"},
		{"existing dashes", "kinh-doanh - thương mại", "kinh-doanh-thuong-mai"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
