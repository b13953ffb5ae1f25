package dto_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vietravel/shared/dto"
	"vietravel/shared/failure"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "with all valid parameters",
			query:    "page=2&limit=20&sort_by=created_at&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:           "with default request enabled and no parameters",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "with default request disabled and no parameters",
			expected: dto.QueryParams{},
		},
		{
			name:           "with invalid page and limit parameters",
			query:          "page=abc&limit=-5",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "sort field defaults to ascending",
			query:    "sort_by=created_at",
			expected: dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirAsc},
		},
		{
			name:     "with invalid sort direction",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    *int
		wantErr error
	}{
		{name: "absent", query: ""},
		{name: "blank", query: "limit=%20"},
		{name: "zero", query: "limit=0", want: intPtr(0)},
		{name: "positive", query: "limit=2", want: intPtr(2)},
		{name: "negative", query: "limit=-1", wantErr: failure.InvalidLimitParam},
		{name: "not a number", query: "limit=two", wantErr: failure.InvalidLimitParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/destinations?"+tt.query, nil)

			got, err := dto.ParseLimit(req)

			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCount(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/quote?adults=3&children=x", nil)

	adults, err := dto.ParseCount(req, "adults", 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, adults)

	infants, err := dto.ParseCount(req, "infants", 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, infants)

	_, err = dto.ParseCount(req, "children", 0)
	assert.EqualError(t, err, "invalid children parameter")
}

func TestWithinPartySize(t *testing.T) {
	assert.True(t, dto.WithinPartySize(1, 0))
	assert.True(t, dto.WithinPartySize(50, 0))
	assert.True(t, dto.WithinPartySize(25, 25))
	assert.False(t, dto.WithinPartySize(51, 0))
	assert.False(t, dto.WithinPartySize(25, 26))
	assert.False(t, dto.WithinPartySize(5_000_000_000_000, 0))
	assert.False(t, dto.WithinPartySize(1, math.MaxInt))
	assert.False(t, dto.WithinPartySize(-1, 2))
}

func TestFilter_Match(t *testing.T) {
	values := dto.Values{
		"name":       "Hội An",
		"id":         int64(2),
		"rating":     4.9,
		"status":     "pending",
		"created_at": time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		"note":       "",
	}

	tests := []struct {
		name   string
		filter dto.Filter
		want   bool
	}{
		{name: "eq string", filter: dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"}, want: true},
		{name: "eq across int kinds", filter: dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: 2}, want: true},
		{name: "not eq", filter: dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "pending"}, want: false},
		{name: "like is case-insensitive", filter: dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "hỘI"}, want: true},
		{name: "like miss", filter: dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "sapa"}, want: false},
		{name: "in slice", filter: dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"confirmed", "pending"}}, want: true},
		{name: "in slice miss", filter: dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"cancelled"}}, want: false},
		{name: "less eq", filter: dto.Filter{Field: "rating", Operator: dto.FilterOperatorLessEq, Value: 5}, want: true},
		{name: "greater eq", filter: dto.Filter{Field: "rating", Operator: dto.FilterOperatorGreaterEq, Value: 4.95}, want: false},
		{name: "greater eq time", filter: dto.Filter{Field: "created_at", Operator: dto.FilterOperatorGreaterEq, Value: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}, want: true},
		{name: "is null", filter: dto.Filter{Field: "note", Operator: dto.FilterIsNull}, want: true},
		{name: "is not null", filter: dto.Filter{Field: "name", Operator: dto.FilterIsNotNull}, want: true},
		{name: "unknown field", filter: dto.Filter{Field: "missing", Operator: dto.FilterIsNull}, want: false},
		{name: "unknown operator", filter: dto.Filter{Field: "name", Operator: "regex", Value: ".*"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(values))
		})
	}
}

func TestFilterGroup_Match(t *testing.T) {
	values := dto.Values{"name": "Sapa", "location": "Lào Cai, Việt Nam", "status": "pending"}

	empty := dto.FilterGroup{}
	assert.True(t, empty.Match(values))
	assert.True(t, empty.IsEmpty())

	anyOf := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "lào"},
			dto.Filter{Field: "location", Operator: dto.FilterOperatorLike, Value: "lào"},
		},
	}
	assert.True(t, anyOf.Match(values))

	allOf := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			anyOf,
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
		},
	}
	assert.False(t, allOf.Match(values))
}

func TestCompare(t *testing.T) {
	cmp, ok := dto.Compare(1, 2.5)
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = dto.Compare("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok = dto.Compare("1", 1)
	assert.False(t, ok)
}

func TestFilterGroup_OrMatchesAnyMember(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fields := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z ]{0,12}`), 1, 4).Draw(t, "fields")
		needle := rapid.StringMatching(`[a-z]{1,3}`).Draw(t, "needle")

		values := dto.Values{}
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}
		want := false

		for idx, field := range fields {
			key := string(rune('a' + idx))
			values[key] = field
			group.Filters = append(group.Filters, dto.Filter{Field: key, Operator: dto.FilterOperatorLike, Value: needle})

			single := dto.Filter{Field: key, Operator: dto.FilterOperatorLike, Value: needle}
			want = want || single.Match(values)
		}

		if got := group.Match(values); got != want {
			t.Fatalf("group match %v, members %v", got, want)
		}
	})
}

func intPtr(v int) *int {
	return &v
}
