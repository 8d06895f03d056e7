package repositories

import (
	"database/sql"
	"errors"

	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
)

type BookingRepository interface {
	GetByID(id int64) (models.Booking, error)
	ListByCustomer(customerID int64) ([]models.Booking, error)
	ExistsForCustomer(customerID int64) (bool, error)
	ExistsForTrip(tripID int64) (bool, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(database *sql.DB) BookingRepository {
	return &bookingRepository{db: database}
}

const bookingColumns = `booking_id, customer_id, trip_id, DATE_FORMAT(booking_date, '%Y-%m-%d'), status`

func (r *bookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE booking_id=? LIMIT 1`, id).
		Scan(&b.ID, &b.CustomerID, &b.TripID, &b.BookingDate, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r *bookingRepository) ListByCustomer(customerID int64) ([]models.Booking, error) {
	rows, err := r.db.Query(`SELECT `+bookingColumns+` FROM bookings WHERE customer_id=? ORDER BY booking_id DESC`, customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.TripID, &b.BookingDate, &b.Status); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookingRepository) ExistsForCustomer(customerID int64) (bool, error) {
	return r.exists(`SELECT 1 FROM bookings WHERE customer_id=? LIMIT 1`, customerID)
}

func (r *bookingRepository) ExistsForTrip(tripID int64) (bool, error) {
	return r.exists(`SELECT 1 FROM bookings WHERE trip_id=? LIMIT 1`, tripID)
}

func (r *bookingRepository) exists(query string, arg int64) (bool, error) {
	var one int
	err := r.db.QueryRow(query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}
