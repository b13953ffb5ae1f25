package model

import (
	gModel "vietravel/shared/model"
)

const (
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingCode   = "booking_code"
	FieldDestinationID = "destination_id"
	FieldDepartureDate = "departure_date"
	FieldStatus        = "status"
	FieldCreatedAt     = "created_at"
)

// SortableFields are the columns an administrator may order the booking list by.
var SortableFields = []string{FieldID, FieldBookingCode, FieldDestinationID, FieldDepartureDate, FieldStatus, FieldCreatedAt}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type CustomerInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

type Booking struct {
	ID              int64  `field:"id"`
	BookingCode     string `field:"booking_code"`
	DestinationID   string `field:"destination_id"`
	DepartureDate   string `field:"departure_date"`
	Adults          int    `field:"adults"`
	Children        int    `field:"children"`
	TotalAmount     float64
	CustomerInfo    CustomerInfo
	SpecialRequests string
	Status          string `field:"status"`
	gModel.Metadata
}
