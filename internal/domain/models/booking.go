package models

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking is a customer's claim on a trip. Cancelled is terminal; bookings
// are never deleted, only cancelled.
type Booking struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customer_id"`
	TripID      int64  `json:"trip_id"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}
