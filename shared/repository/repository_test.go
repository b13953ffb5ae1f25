package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"vietravel/infras/otel/mocks"
	"vietravel/shared/dto"
	"vietravel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Audit struct {
	Note string `field:"note"`
}

type ticket struct {
	Audit

	ID    int64  `field:"id"`
	Code  string `field:"code"`
	Name  string `field:"name"`
	Seats int    `field:"seats"`
	Skip  string
}

func newRepo() *repository.Repository[ticket] {
	return repository.NewRepository[ticket]("ticket", "id", mocks.NewOtel(), "code")
}

func byCode(code string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{dto.Filter{Field: "code", Value: code, Operator: dto.FilterOperatorEq}}}
}

func TestRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	first, err := repo.Insert(ctx, func(seq int64) (ticket, error) {
		return ticket{ID: seq, Code: "A"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Insert(ctx, func(seq int64) (ticket, error) {
		return ticket{ID: seq, Code: "B"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	_, err := repo.Insert(ctx, func(seq int64) (ticket, error) {
		return ticket{ID: seq, Code: "A"}, nil
	})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, func(seq int64) (ticket, error) {
		return ticket{ID: seq, Code: "A"}, nil
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// the rejected insert must not consume a sequence value
	next, err := repo.Insert(ctx, func(seq int64) (ticket, error) {
		return ticket{ID: seq, Code: "C"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_InsertBuildError(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	boom := errors.New("boom")

	_, err := repo.Insert(ctx, func(_ int64) (ticket, error) {
		return ticket{}, boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_InsertConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	const workers = 50

	var wg sync.WaitGroup

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.Insert(ctx, func(seq int64) (ticket, error) {
				return ticket{ID: seq, Code: fmt.Sprintf("T%03d", i)}, nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	rows, err := repo.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, rows, workers)

	seen := make(map[int64]bool, workers)
	for _, row := range rows {
		assert.False(t, seen[row.ID], "id %d issued twice", row.ID)
		seen[row.ID] = true
	}
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	repo.Seed([]ticket{
		{ID: 1, Code: "A", Name: "Alpha", Audit: Audit{Note: "first"}},
		{ID: 2, Code: "B", Name: "Beta"},
	})

	got, err := repo.Get(ctx, byCode("B"))
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Name)

	embedded, err := repo.Get(ctx, dto.FilterGroup{Filters: []any{dto.Filter{Field: "note", Value: "first", Operator: dto.FilterOperatorEq}}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), embedded.ID)

	missing, err := repo.Get(ctx, byCode("Z"))
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	_, err = repo.Get(ctx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_Exist(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	repo.Seed([]ticket{{ID: 1, Code: "A"}})

	ok, err := repo.Exist(ctx, byCode("A"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exist(ctx, byCode("B"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Exist(ctx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	repo.Seed([]ticket{
		{ID: 1, Code: "A", Seats: 3},
		{ID: 2, Code: "B", Seats: 1},
		{ID: 3, Code: "C", Seats: 2},
		{ID: 4, Code: "D", Seats: 5},
	})

	tests := []struct {
		name    string
		params  dto.QueryParams
		filter  dto.FilterGroup
		want    []int64
		wantErr bool
	}{
		{
			name: "insertion order without params",
			want: []int64{1, 2, 3, 4},
		},
		{
			name:   "limit only",
			params: dto.QueryParams{Limit: 2},
			want:   []int64{1, 2},
		},
		{
			name:   "second page",
			params: dto.QueryParams{Page: 2, Limit: 3},
			want:   []int64{4},
		},
		{
			name:   "page past the end",
			params: dto.QueryParams{Page: 3, Limit: 3},
			want:   []int64{},
		},
		{
			name:   "sorted descending",
			params: dto.QueryParams{SortBy: "seats", SortDir: dto.SortDirDesc},
			want:   []int64{4, 1, 3, 2},
		},
		{
			name:   "sort field without direction",
			params: dto.QueryParams{SortBy: "seats"},
			want:   []int64{2, 3, 1, 4},
		},
		{
			name: "filtered",
			filter: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "seats", Value: 2, Operator: dto.FilterOperatorGreaterEq},
			}},
			want: []int64{1, 3, 4},
		},
		{
			name:    "unknown sort field",
			params:  dto.QueryParams{SortBy: "Skip", SortDir: dto.SortDirAsc},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.GetAll(ctx, tt.params, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			ids := make([]int64, 0, len(rows))
			for _, row := range rows {
				ids = append(ids, row.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}
