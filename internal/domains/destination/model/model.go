package model

const (
	EntityName = "destination"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldRating      = "rating"
	FieldPriceAmount = "price_amount"
)

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Destination struct {
	ID              int64      `field:"id"           json:"id"`
	Name            string     `field:"name"         json:"name"`
	Description     string     `field:"description"  json:"description"`
	LongDescription string     `json:"longDescription"`
	Image           string     `json:"image"`
	Images          []string   `json:"images"`
	Location        string     `field:"location"     json:"location"`
	Rating          float64    `field:"rating"       json:"rating"`
	ReviewCount     int        `json:"reviewCount"`
	Price           string     `json:"price"`
	PriceAmount     int64      `field:"price_amount" json:"priceAmount"`
	Duration        string     `json:"duration"`
	GroupSize       string     `json:"groupSize"`
	BestTime        string     `json:"bestTime"`
	Activities      []Activity `json:"activities"`
	Highlights      []string   `json:"highlights"`
	Included        []string   `json:"included"`
	NotIncluded     []string   `json:"notIncluded"`
}
