package legaldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOC(t *testing.T) {
	html := `<h1>Chương I</h1><p>text</p><h2 class="x">Điều <b>1</b></h2><h3></h3>`

	headings, modified := GenerateTOC(html)

	require.Len(t, headings, 2)

	assert.Equal(t, Heading{ID: "toc-1", Level: 1, Text: "Chương I"}, headings[0])
	assert.Equal(t, Heading{ID: "toc-2", Level: 2, Text: "Điều 1"}, headings[1])

	assert.Contains(t, modified, `<h1 id="toc-1">Chương I</h1>`)
	assert.Contains(t, modified, `<h2 id="toc-2" class="x">Điều <b>1</b></h2>`)
	// the empty heading keeps no anchor
	assert.Contains(t, modified, `<h3></h3>`)
}

func TestGenerateTOCNoHeadings(t *testing.T) {
	html := `<p>just a paragraph</p>`

	headings, modified := GenerateTOC(html)

	assert.Empty(t, headings)
	assert.Equal(t, html, modified)
}

func TestGenerateTOCNumbersSequentially(t *testing.T) {
	html := `<h2>a</h2><h4></h4><h2>b</h2>`

	headings, _ := GenerateTOC(html)

	require.Len(t, headings, 2)
	assert.Equal(t, "toc-1", headings[0].ID)
	assert.Equal(t, "toc-2", headings[1].ID)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Nil(t, splitTags(" , ,"))
	assert.Equal(t, []string{"đất đai", "thuế"}, []string(splitTags(" đất đai , thuế ,")))
}
