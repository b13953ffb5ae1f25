package dto

import (
	"net/http"
	"strconv"
	"strings"

	"vietravel/shared/constant"
	"vietravel/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// This will set default values for Page and Limit if they are not provided in the request.
// If `defaultRequest` is false, it will only populate the fields that are present in the request.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if q.SortBy != "" && q.SortDir == "" {
		q.SortDir = SortDirAsc
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// ParseLimit reads an optional, strictly validated limit parameter.
// It returns nil when the parameter is absent and failure.InvalidLimitParam when it is
// not a non-negative integer. Zero is a valid limit.
func ParseLimit(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamLimit))
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return nil, failure.InvalidLimitParam
	}

	return &limit, nil
}

// WithinPartySize reports whether adults and children together stay within constant.RequestMaxPartySize.
func WithinPartySize(adults, children int) bool {
	return adults >= 0 && children >= 0 &&
		adults <= constant.RequestMaxPartySize && children <= constant.RequestMaxPartySize-adults
}

// ParseCount reads an optional non-negative integer query parameter, defaulting to def.
func ParseCount(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, failure.BadRequestFromString("invalid " + name + " parameter")
	}

	return value, nil
}
