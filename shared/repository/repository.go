package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"vietravel/infras/otel"
	"vietravel/shared/constant"
	"vietravel/shared/dto"
)

var (
	ErrDuplicate      = errors.New("duplicate value for unique field")
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	index []int
}

// Builder receives the next sequence value and returns the record to store.
type Builder[T any] func(seq int64) (T, error)

// Repository is a process-lifetime, mutex-guarded collection of T.
// Fields are addressed through their `field` struct tags.
type Repository[T any] struct {
	mu            sync.RWMutex
	otel          otel.Otel
	entitas       string
	primaryColumn string
	unique        []string
	columns       []column
	rows          []T
	seq           int64
}

func NewRepository[T any](entitasName, primaryColumn string, otl otel.Otel, uniqueColumns ...string) *Repository[T] {
	var zero T

	return &Repository[T]{
		otel:          otl,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		unique:        uniqueColumns,
		columns:       getColumns(reflect.TypeOf(zero), nil),
	}
}

// Seed replaces the stored rows without touching the sequence. Used for static reference data.
func (repo *Repository[T]) Seed(rows []T) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.rows = slices.Clone(rows)
}

// Insert assigns the next sequence value, builds the record and appends it as one atomic step.
// Nothing is stored, and the sequence is not advanced, when build fails or a unique field collides.
func (repo *Repository[T]) Insert(ctx context.Context, build Builder[T]) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	model, err := build(repo.seq + 1)
	if err != nil {
		scope.TraceError(err)

		var zero T

		return zero, fmt.Errorf("failed to build data (%s): %w", repo.entitas, err)
	}

	values := repo.values(model)

	for _, name := range repo.unique {
		for _, row := range repo.rows {
			if cmp, ok := dto.Compare(repo.values(row)[name], values[name]); ok && cmp == 0 {
				scope.TraceError(ErrDuplicate)
				scope.SetAttribute("unique.column", name)

				var zero T

				return zero, fmt.Errorf("failed to insert data (%s.%s): %w", repo.entitas, name, ErrDuplicate)
			}
		}
	}

	repo.seq++
	repo.rows = append(repo.rows, model)

	return model, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if filter.IsEmpty() {
		return false, errRequiredFilter
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, row := range repo.rows {
		if filter.Match(repo.values(row)) {
			return true, nil
		}
	}

	return false, nil
}

// Get returns the first matching row, or the zero value of T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var model T

	if filter.IsEmpty() {
		scope.TraceError(errRequiredFilter)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, errRequiredFilter)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, row := range repo.rows {
		if filter.Match(repo.values(row)) {
			return row, nil
		}
	}

	return model, nil
}

// GetAll returns matching rows in insertion order unless params ask for a sort,
// then applies page/limit the same way an OFFSET/LIMIT query would. A sort without a direction is ascending.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()

	models := make([]T, 0, len(repo.rows))

	for _, row := range repo.rows {
		if filter.Match(repo.values(row)) {
			models = append(models, row)
		}
	}

	repo.mu.RUnlock()

	if params.SortBy != "" {
		if !repo.hasColumn(params.SortBy) {
			err := fmt.Errorf("unknown sort field %q (%s)", params.SortBy, repo.entitas)
			scope.TraceError(err)

			return nil, err
		}

		desc := strings.EqualFold(params.SortDir, dto.SortDirDesc)

		slices.SortStableFunc(models, func(a, b T) int {
			cmp, _ := dto.Compare(repo.values(a)[params.SortBy], repo.values(b)[params.SortBy])
			if desc {
				return -cmp
			}

			return cmp
		})
	}

	page := params.Page
	limit := params.Limit

	offset := 0
	if page > 0 && limit > 0 {
		offset = (page - 1) * limit
	}

	if offset >= len(models) {
		return []T{}, nil
	}

	models = models[offset:]

	if limit > 0 && limit < len(models) {
		models = models[:limit]
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, row := range repo.rows {
		if filter.Match(repo.values(row)) {
			count++
		}
	}

	return count, nil
}

func (repo *Repository[T]) hasColumn(name string) bool {
	return slices.ContainsFunc(repo.columns, func(col column) bool {
		return col.name == name
	})
}

func (repo *Repository[T]) values(model T) dto.Values {
	val := reflect.ValueOf(model)
	values := make(dto.Values, len(repo.columns))

	for _, col := range repo.columns {
		values[col.name] = val.FieldByIndex(col.index).Interface()
	}

	return values
}

func getColumns(reflectType reflect.Type, parent []int) []column {
	columns := []column{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(slices.Clone(parent), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type, index)...)

			continue
		}

		name := field.Tag.Get("field")
		if name == "" {
			continue
		}

		columns = append(columns, column{name: name, index: index})
	}

	return columns
}
