package dto

import (
	"slices"

	"vietravel/internal/domains/destination/model"
	"vietravel/internal/domains/destination/pricing"
)

type DestinationSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Price       string  `json:"price"`
	Location    string  `json:"location"`
}

func (r *DestinationSummary) FromModel(m model.Destination) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Image = m.Image
	r.Rating = m.Rating
	r.Price = m.Price
	r.Location = m.Location
}

type ActivityResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type DestinationDetail struct {
	DestinationSummary
	LongDescription string             `json:"longDescription"`
	Images          []string           `json:"images"`
	ReviewCount     int                `json:"reviewCount"`
	PriceAmount     int64              `json:"priceAmount"`
	Duration        string             `json:"duration"`
	GroupSize       string             `json:"groupSize"`
	BestTime        string             `json:"bestTime"`
	Activities      []ActivityResponse `json:"activities"`
	Highlights      []string           `json:"highlights"`
	Included        []string           `json:"included"`
	NotIncluded     []string           `json:"notIncluded"`
}

// FromModel copies every slice so callers cannot reach the catalog's backing arrays.
func (r *DestinationDetail) FromModel(m model.Destination) {
	r.DestinationSummary.FromModel(m)
	r.LongDescription = m.LongDescription
	r.Images = slices.Clone(m.Images)
	r.ReviewCount = m.ReviewCount
	r.PriceAmount = m.PriceAmount
	r.Duration = m.Duration
	r.GroupSize = m.GroupSize
	r.BestTime = m.BestTime
	r.Highlights = slices.Clone(m.Highlights)
	r.Included = slices.Clone(m.Included)
	r.NotIncluded = slices.Clone(m.NotIncluded)

	r.Activities = make([]ActivityResponse, 0, len(m.Activities))
	for _, activity := range m.Activities {
		r.Activities = append(r.Activities, ActivityResponse{
			Name:        activity.Name,
			Description: activity.Description,
			Icon:        activity.Icon,
		})
	}
}

type GetDestinationsResponse struct {
	Destinations []DestinationSummary `json:"destinations"`
	Total        int                  `json:"total"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination) {
	r.Destinations = make([]DestinationSummary, 0, len(models))

	for _, m := range models {
		var summary DestinationSummary

		summary.FromModel(m)
		r.Destinations = append(r.Destinations, summary)
	}

	r.Total = len(r.Destinations)
}

type QuoteResponse struct {
	DestinationID int64  `json:"destinationId"`
	Name          string `json:"name"`
	pricing.Quote
}
