package sitecontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAbout(t *testing.T) {
	c := &AboutContent{
		HeaderTitle:     "  Về chúng tôi  ",
		CompanyName:     " Vilaw ",
		IntroParagraphs: []string{" đoạn một ", "", "  "},
		Timeline:        []TimelineEntry{{Year: " 2010 ", Title: " Thành lập "}},
		Principles:      []string{"  tận tâm "},
	}

	sanitizeAbout(c)

	assert.Equal(t, "Về chúng tôi", c.HeaderTitle)
	assert.Equal(t, "Vilaw", c.CompanyName)
	assert.Equal(t, []string{"đoạn một"}, c.IntroParagraphs)
	assert.Equal(t, "2010", c.Timeline[0].Year)
	assert.Equal(t, "Thành lập", c.Timeline[0].Title)
	assert.Equal(t, []string{"tận tâm"}, c.Principles)
}

func TestSanitizeContact(t *testing.T) {
	c := &ContactContent{
		HeroTitle:     "  Liên hệ ",
		Hotline:       " 1900 1234 ",
		BusinessHours: []BusinessHour{{Day: " Thứ 2 - Thứ 6 ", Hours: " 8:00 - 17:30 "}},
	}

	sanitizeContact(c)

	assert.Equal(t, "Liên hệ", c.HeroTitle)
	assert.Equal(t, "1900 1234", c.Hotline)
	assert.Equal(t, "Thứ 2 - Thứ 6", c.BusinessHours[0].Day)
	assert.Equal(t, "8:00 - 17:30", c.BusinessHours[0].Hours)
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("about"))
	assert.True(t, ValidKey("contact"))
	assert.False(t, ValidKey("news"))
	assert.False(t, ValidKey(""))
}
