package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 10, ParseLimit(""))
	assert.Equal(t, 10, ParseLimit("abc"))
	assert.Equal(t, 10, ParseLimit("0"))
	assert.Equal(t, 10, ParseLimit("-5"))
	assert.Equal(t, 25, ParseLimit("25"))
	assert.Equal(t, 100, ParseLimit("100"))
	assert.Equal(t, 100, ParseLimit("5000"))
}

func TestParseOffset(t *testing.T) {
	assert.Equal(t, 0, ParseOffset(""))
	assert.Equal(t, 0, ParseOffset("abc"))
	assert.Equal(t, 0, ParseOffset("-1"))
	assert.Equal(t, 40, ParseOffset("40"))
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitCSV("a,b"))
	assert.Equal(t, []string{"luật đất đai", "thuế"}, SplitCSV(" luật đất đai , thuế "))
}
