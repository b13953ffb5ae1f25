package shared

import (
	"fmt"
	"strconv"
	"strings"

	"vietravel/shared/dto"
)

func FilterByID(id any, fieldID string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

// BuildCacheKey joins a key prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the paging params and filter group.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		describeGroup(filter),
	)
}

func describeGroup(group dto.FilterGroup) string {
	parts := make([]string, 0, len(group.Filters))

	for _, filter := range group.Filters {
		switch fill := filter.(type) {
		case dto.Filter:
			parts = append(parts, fmt.Sprintf("%s.%s.%v", fill.Field, fill.Operator, fill.Value))
		case dto.FilterGroup:
			parts = append(parts, "("+describeGroup(fill)+")")
		}
	}

	operator := group.Operator
	if operator == "" {
		operator = dto.FilterGroupOperatorAnd
	}

	return operator + "[" + strings.Join(parts, ",") + "]"
}
