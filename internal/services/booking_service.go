package services

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "travelcenter/internal/config"
	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
	"travelcenter/internal/repositories"
	"travelcenter/internal/utils"
)

// BookingService keeps trip availability and booking status consistent.
// A trip carries at most one Confirmed booking; CreateBooking and
// CancelBooking move both rows inside a single transaction.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo != nil {
		return s.BookingRepo
	}
	return repositories.NewBookingRepository(s.db())
}

// CreateBooking books a trip for a customer. The guarded UPDATE on
// trips.status is the commit point: when two requests race for the same
// trip, the second one affects zero rows and is rejected.
func (s BookingService) CreateBooking(customerID, tripID int64) (models.Booking, error) {
	if customerID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "customer_id", Msg: "invalid id"}
	}
	if tripID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var status string
	if err := tx.QueryRow(`SELECT status FROM trips WHERE trip_id=? LIMIT 1`, tripID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "trip"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if status != models.TripAvailable {
		return models.Booking{}, domain.StateError{Resource: "trip", Msg: "trip is not available for booking"}
	}

	res, err := tx.Exec(`UPDATE trips SET status=? WHERE trip_id=? AND status=?`,
		models.TripBooked, tripID, models.TripAvailable)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// another booking won the trip between the read and the write
		return models.Booking{}, domain.StateError{Resource: "trip", Msg: "trip is not available for booking"}
	}

	booking := models.Booking{
		CustomerID:  customerID,
		TripID:      tripID,
		BookingDate: utils.Today(),
		Status:      models.BookingConfirmed,
	}
	ins, err := tx.Exec(`INSERT INTO bookings (customer_id, trip_id, booking_date, status) VALUES (?, ?, ?, ?)`,
		booking.CustomerID, booking.TripID, booking.BookingDate, booking.Status)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	booking.ID, _ = ins.LastInsertId()

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d trip_id=%d customer_id=%d", booking.ID, tripID, customerID))
	return booking, nil
}

// CancelBooking marks a booking Cancelled and releases the trip. The booking
// must belong to customerID; cancelling an already-cancelled booking is an
// explicit rejected operation, not a no-op.
func (s BookingService) CancelBooking(customerID, bookingID int64) (string, error) {
	if bookingID <= 0 {
		return "", domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var b models.Booking
	err = tx.QueryRow(`SELECT booking_id, customer_id, trip_id, status FROM bookings WHERE booking_id=? LIMIT 1`, bookingID).
		Scan(&b.ID, &b.CustomerID, &b.TripID, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	if b.CustomerID != customerID {
		// do not leak other customers' bookings
		return "", domain.NotFoundError{Resource: "booking"}
	}
	if b.Status == models.BookingCancelled {
		return "", domain.StateError{Resource: "booking", Msg: "booking is already cancelled"}
	}

	res, err := tx.Exec(`UPDATE bookings SET status=? WHERE booking_id=? AND status<>?`,
		models.BookingCancelled, bookingID, models.BookingCancelled)
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", domain.StateError{Resource: "booking", Msg: "booking is already cancelled"}
	}

	// release the trip only when it is still marked Booked; a status mutated
	// out of band is left untouched
	if _, err := tx.Exec(`UPDATE trips SET status=? WHERE trip_id=? AND status=?`,
		models.TripAvailable, b.TripID, models.TripBooked); err != nil {
		return "", domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return "", domain.InternalError{Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%d trip_id=%d customer_id=%d", bookingID, b.TripID, customerID))
	return "Booking cancelled successfully", nil
}

// ListBookingsForCustomer returns every booking owned by the customer,
// cancelled ones included.
func (s BookingService) ListBookingsForCustomer(customerID int64) ([]models.Booking, error) {
	if customerID <= 0 {
		return nil, domain.ValidationError{Field: "customer_id", Msg: "invalid id"}
	}
	return s.bookings().ListByCustomer(customerID)
}

// GetBookingForCustomer loads a single booking, hiding other customers' rows.
func (s BookingService) GetBookingForCustomer(customerID, bookingID int64) (models.Booking, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if b.CustomerID != customerID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}
