package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Values exposes a record's fields by name for filter evaluation.
type Values map[string]any

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
}

// Match reports whether the record satisfies the filter. Unknown fields never match.
func (f *Filter) Match(values Values) bool {
	actual, ok := values[f.Field]
	if !ok {
		return false
	}

	switch f.Operator {
	case FilterOperatorEq:
		return equal(actual, f.Value)
	case FilterOperatorNotEq:
		return !equal(actual, f.Value)
	case FilterOperatorLike:
		needle := strings.ToLower(fmt.Sprint(f.Value))

		return strings.Contains(strings.ToLower(fmt.Sprint(actual)), needle)
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
			return equal(actual, f.Value)
		}

		for idx := range val.Len() {
			if equal(actual, val.Index(idx).Interface()) {
				return true
			}
		}

		return false
	case FilterOperatorLessEq:
		cmp, ok := Compare(actual, f.Value)

		return ok && cmp <= 0
	case FilterOperatorGreaterEq:
		cmp, ok := Compare(actual, f.Value)

		return ok && cmp >= 0
	case FilterIsNull:
		return isZero(actual)
	case FilterIsNotNull:
		return !isZero(actual)
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match evaluates the group. An empty group matches everything; the operator defaults to AND.
func (f *FilterGroup) Match(values Values) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyOf := strings.EqualFold(f.Operator, FilterGroupOperatorOr)

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(values)
		case FilterGroup:
			matched = fill.Match(values)
		default:
			continue
		}

		if anyOf && matched {
			return true
		}

		if !anyOf && !matched {
			return false
		}
	}

	return !anyOf
}

// IsEmpty reports whether the group carries no filters.
func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}

// Compare orders two values of the same family (numbers, strings, times).
// The second result is false when the values are not comparable.
func Compare(a, b any) (int, bool) {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, false
		}

		return at.Compare(bt), true
	}

	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)

	if aNum && bNum {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)

	if aStr && bStr {
		return strings.Compare(as, bs), true
	}

	return 0, false
}

func equal(a, b any) bool {
	if cmp, ok := Compare(a, b); ok {
		return cmp == 0
	}

	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	val := reflect.ValueOf(v)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(val.Uint()), true
	case reflect.Float32, reflect.Float64:
		return val.Float(), true
	default:
		return 0, false
	}
}

func isZero(v any) bool {
	if v == nil {
		return true
	}

	return reflect.ValueOf(v).IsZero()
}
