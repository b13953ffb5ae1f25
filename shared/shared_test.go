package shared_test

import (
	"testing"

	"vietravel/shared"
	"vietravel/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(7), "id")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(7), Operator: dto.FilterOperatorEq},
		},
	}, result)
	assert.True(t, result.Match(dto.Values{"id": 7}))
	assert.False(t, result.Match(dto.Values{"id": 8}))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "destination:get", shared.BuildCacheKey("destination:get"))
	assert.Equal(t, "destination:get:1", shared.BuildCacheKey("destination:get", "1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	search := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "name", Value: "hoi an", Operator: dto.FilterOperatorLike},
		},
	}

	withSearch := shared.BuildCacheKeyWithQuery("destination:gets", dto.QueryParams{Limit: 2}, search)
	withoutSearch := shared.BuildCacheKeyWithQuery("destination:gets", dto.QueryParams{Limit: 2}, dto.FilterGroup{})
	otherLimit := shared.BuildCacheKeyWithQuery("destination:gets", dto.QueryParams{Limit: 3}, search)

	assert.Equal(t, "destination:gets:0:2:::OR[name.like.hoi an]", withSearch)
	assert.NotEqual(t, withSearch, withoutSearch)
	assert.NotEqual(t, withSearch, otherLimit)
	assert.Equal(t, withSearch, shared.BuildCacheKeyWithQuery("destination:gets", dto.QueryParams{Limit: 2}, search))
}
