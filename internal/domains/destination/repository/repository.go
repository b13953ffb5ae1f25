package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"vietravel/infras/otel"
	"vietravel/internal/domains/destination/model"
	gDto "vietravel/shared/dto"
	gRepo "vietravel/shared/repository"

	"github.com/rs/zerolog/log"
)

//go:embed catalog.json
var catalogData []byte

type Destination interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	*gRepo.Repository[model.Destination]
}

// New loads the embedded catalog. The catalog is read-only for the lifetime of the process.
func New(otel otel.Otel) (Destination, error) {
	destinations, err := LoadCatalog(catalogData)
	if err != nil {
		return nil, err
	}

	repo := gRepo.NewRepository[model.Destination](model.EntityName, model.FieldID, otel)
	repo.Seed(destinations)

	log.Info().Int("destinations", len(destinations)).Msg("Destination catalog loaded")

	return &repositoryImpl{Repository: repo}, nil
}

// LoadCatalog decodes a JSON catalog and rejects entries without an id or a name.
func LoadCatalog(data []byte) ([]model.Destination, error) {
	var destinations []model.Destination

	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destination catalog: %w", err)
	}

	seen := make(map[int64]bool, len(destinations))

	for _, destination := range destinations {
		if destination.ID <= 0 || destination.Name == "" {
			return nil, fmt.Errorf("invalid destination catalog entry %d", destination.ID)
		}

		if seen[destination.ID] {
			return nil, fmt.Errorf("duplicate destination id %d", destination.ID)
		}

		seen[destination.ID] = true
	}

	return destinations, nil
}
