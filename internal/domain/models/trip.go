package models

const (
	TripAvailable = "Available"
	TripBooked    = "Booked"
)

// Trip is a purchasable travel offering. Status tracks whether an active
// booking holds the trip: Available means no Confirmed booking exists.
type Trip struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

// TripInput carries the writable trip fields from the HTTP layer.
type TripInput struct {
	Code        string  `json:"code"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}
