package dto

import (
	"encoding/json"
	"errors"
	"time"

	"vietravel/internal/domains/booking/model"
	"vietravel/shared/constant"
	"vietravel/shared/failure"
	gModel "vietravel/shared/model"
	"vietravel/shared/timezone"
	"vietravel/shared/validator"
)

const MessageMissingCustomerInfo = "Missing required customer information"

var errInvalidDestinationID = errors.New("destinationId must be a string or a number")

// FlexibleID accepts a JSON string or number. A numeric zero counts as absent.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*f = FlexibleID(text)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return errInvalidDestinationID
	}

	if value, err := number.Float64(); err == nil && value == 0 {
		*f = ""

		return nil
	}

	*f = FlexibleID(number.String())

	return nil
}

type CustomerInfoRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type CreateBookingRequest struct {
	DestinationID   FlexibleID           `json:"destinationId"   validate:"required"`
	DepartureDate   string               `json:"departureDate"   validate:"required"`
	Adults          int                  `json:"adults"          validate:"required"`
	Children        int                  `json:"children"`
	TotalAmount     float64              `json:"totalAmount"`
	CustomerInfo    *CustomerInfoRequest `json:"customerInfo"    validate:"required"`
	SpecialRequests string               `json:"specialRequests"`
}

// Validate checks the required top-level fields in declaration order, then the customer details.
func (r *CreateBookingRequest) Validate() error {
	if err := validator.ValidateStruct(r); err != nil {
		return err //nolint:wrapcheck
	}

	info := r.CustomerInfo
	if info.FullName == "" || info.Email == "" || info.Phone == "" {
		return failure.BadRequestFromString(MessageMissingCustomerInfo) //nolint:wrapcheck
	}

	return nil
}

func (r *CreateBookingRequest) ToModel(id int64, code string, totalAmount float64, createdAt time.Time) model.Booking {
	return model.Booking{
		ID:            id,
		BookingCode:   code,
		DestinationID: string(r.DestinationID),
		DepartureDate: r.DepartureDate,
		Adults:        r.Adults,
		Children:      r.Children,
		TotalAmount:   totalAmount,
		CustomerInfo: model.CustomerInfo{
			FullName: r.CustomerInfo.FullName,
			Email:    r.CustomerInfo.Email,
			Phone:    r.CustomerInfo.Phone,
			Address:  r.CustomerInfo.Address,
		},
		SpecialRequests: r.SpecialRequests,
		Status:          model.StatusPending,
		Metadata:        gModel.Metadata{CreatedAt: createdAt},
	}
}

type CreateBookingResponse struct {
	BookingCode string `json:"bookingCode"`
	Message     string `json:"message"`
}

type CustomerInfoResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type BookingResponse struct {
	ID              int64                `json:"id"`
	BookingCode     string               `json:"bookingCode"`
	DestinationID   string               `json:"destinationId"`
	DepartureDate   string               `json:"departureDate"`
	Adults          int                  `json:"adults"`
	Children        int                  `json:"children"`
	TotalAmount     float64              `json:"totalAmount"`
	CustomerInfo    CustomerInfoResponse `json:"customerInfo"`
	SpecialRequests string               `json:"specialRequests"`
	Status          string               `json:"status"`
	CreatedAt       string               `json:"createdAt"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingCode = m.BookingCode
	r.DestinationID = m.DestinationID
	r.DepartureDate = m.DepartureDate
	r.Adults = m.Adults
	r.Children = m.Children
	r.TotalAmount = m.TotalAmount
	r.CustomerInfo = CustomerInfoResponse{
		FullName: m.CustomerInfo.FullName,
		Email:    m.CustomerInfo.Email,
		Phone:    m.CustomerInfo.Phone,
		Address:  m.CustomerInfo.Address,
	}
	r.SpecialRequests = m.SpecialRequests
	r.Status = m.Status
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse

		booking.FromModel(m)
		r.Bookings = append(r.Bookings, booking)
	}

	r.Total = len(r.Bookings)
}

// BookingCreatedEvent is published after a booking is stored. It carries no customer contact data.
type BookingCreatedEvent struct {
	EventID       string    `json:"eventId"`
	BookingID     int64     `json:"bookingId"`
	BookingCode   string    `json:"bookingCode"`
	DestinationID string    `json:"destinationId"`
	DepartureDate string    `json:"departureDate"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (e *BookingCreatedEvent) FromModel(eventID string, m model.Booking) {
	e.EventID = eventID
	e.BookingID = m.ID
	e.BookingCode = m.BookingCode
	e.DestinationID = m.DestinationID
	e.DepartureDate = m.DepartureDate
	e.Adults = m.Adults
	e.Children = m.Children
	e.TotalAmount = m.TotalAmount
	e.Status = m.Status
	e.CreatedAt = m.CreatedAt
}
