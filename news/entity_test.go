package news

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFlattenTags(t *testing.T) {
	n := LegalNews{TagsArray: pq.StringArray{"đất đai", "thuế", "doanh nghiệp"}}
	n.flattenTags()
	assert.Equal(t, "đất đai, thuế, doanh nghiệp", n.Tags)

	empty := LegalNews{}
	empty.flattenTags()
	assert.Equal(t, "", empty.Tags)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Nil(t, splitTags(" , "))
	assert.Equal(t, pq.StringArray{"a", "b"}, splitTags("a, b"))
	assert.Equal(t, pq.StringArray{"hôn nhân"}, splitTags(" hôn nhân ,"))
}
