package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/book"
)

func TestSearchConditions_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, searchConditions("", ""))
}

func TestSearchConditions_StatusOnly(t *testing.T) {
	assert.Equal(t, bson.M{"status": "published"}, searchConditions("published", ""))
}

func TestSearchConditions_SearchTextIsCaseInsensitiveSubstring(t *testing.T) {
	filter := searchConditions("", "har")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "search text must produce an $or over title and author")
	require.Len(t, or, 2)

	title := or[0].(bson.M)["bookName"].(primitive.Regex)
	author := or[1].(bson.M)["authorName"].(primitive.Regex)
	assert.Equal(t, "har", title.Pattern)
	assert.Equal(t, "i", title.Options)
	assert.Equal(t, "har", author.Pattern)
	assert.Equal(t, "i", author.Options)
}

func TestSearchConditions_QuotesRegexMetacharacters(t *testing.T) {
	filter := searchConditions("", "c++ (vol. 1)")

	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["bookName"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(vol\. 1\)`, re.Pattern)
}

func TestSearchOptions_PaginationAndSort(t *testing.T) {
	opts := searchOptions(book.SearchFilter{Limit: 10, Skip: 20})

	require.NotNil(t, opts.Limit)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "price", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}
