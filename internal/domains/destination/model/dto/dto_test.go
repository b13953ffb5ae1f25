package dto_test

import (
	"testing"

	"vietravel/internal/domains/destination/model"
	"vietravel/internal/domains/destination/model/dto"

	"github.com/stretchr/testify/assert"
)

func sample() model.Destination {
	return model.Destination{
		ID:          2,
		Name:        "Hội An",
		Description: "Phố cổ",
		Image:       "/hoi-an.png",
		Images:      []string{"/a.png", "/b.png"},
		Location:    "Quảng Nam, Việt Nam",
		Rating:      4.9,
		Price:       "800,000",
		PriceAmount: 800000,
		Activities:  []model.Activity{{Name: "Tham quan", Description: "Phố cổ", Icon: "Camera"}},
		Highlights:  []string{"Chùa Cầu"},
	}
}

func TestDestinationDetail_FromModel(t *testing.T) {
	m := sample()

	var detail dto.DestinationDetail
	detail.FromModel(m)

	assert.Equal(t, int64(2), detail.ID)
	assert.Equal(t, "800,000", detail.Price)
	assert.Equal(t, []dto.ActivityResponse{{Name: "Tham quan", Description: "Phố cổ", Icon: "Camera"}}, detail.Activities)

	detail.Images[0] = "/mutated.png"
	detail.Highlights[0] = "mutated"

	assert.Equal(t, "/a.png", m.Images[0])
	assert.Equal(t, "Chùa Cầu", m.Highlights[0])
}

func TestGetDestinationsResponse_FromModels(t *testing.T) {
	var res dto.GetDestinationsResponse
	res.FromModels([]model.Destination{sample()})

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, dto.DestinationSummary{
		ID:          2,
		Name:        "Hội An",
		Description: "Phố cổ",
		Image:       "/hoi-an.png",
		Rating:      4.9,
		Price:       "800,000",
		Location:    "Quảng Nam, Việt Nam",
	}, res.Destinations[0])

	var empty dto.GetDestinationsResponse
	empty.FromModels(nil)

	assert.NotNil(t, empty.Destinations)
	assert.Zero(t, empty.Total)
}
