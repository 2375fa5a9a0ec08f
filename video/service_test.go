package video

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSplitHashtags(t *testing.T) {
	assert.Nil(t, splitHashtags(""))
	assert.Nil(t, splitHashtags(" , ,"))
	assert.Equal(t, pq.StringArray{"luatdatdai", "thue"}, splitHashtags("luatdatdai, thue"))
	assert.Equal(t, pq.StringArray{"honnhan"}, splitHashtags(" honnhan "))
}

func TestValidAgeGroup(t *testing.T) {
	for _, g := range []string{"all", "13+", "16+", "18+"} {
		assert.True(t, validAgeGroup(g), g)
	}
	for _, g := range []string{"", "21+", "adult", "13"} {
		assert.False(t, validAgeGroup(g), g)
	}
}

func TestOrderClause(t *testing.T) {
	order, err := orderClause("view_count", "asc")
	assert.NoError(t, err)
	assert.Equal(t, "v.view_count ASC", order)

	order, err = orderClause("ts_create", "desc")
	assert.NoError(t, err)
	assert.Equal(t, "v.ts_create DESC", order)

	order, err = orderClause("ts_create", "")
	assert.NoError(t, err)
	assert.Equal(t, "v.ts_create DESC", order)

	_, err = orderClause("password", "asc")
	assert.Error(t, err)

	_, err = orderClause("title", "sideways")
	assert.Error(t, err)
}
