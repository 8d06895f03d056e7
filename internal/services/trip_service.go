package services

import (
	"database/sql"
	"fmt"

	intconfig "travelcenter/internal/config"
	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
	"travelcenter/internal/repositories"
	"travelcenter/internal/utils"
)

// TripService is the admin-facing trip catalog. Status here is a plain
// field; the booking lifecycle owns the Available/Booked transitions.
type TripService struct {
	TripRepo    repositories.TripRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s TripService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo != nil {
		return s.TripRepo
	}
	return repositories.NewTripRepository(s.db())
}

func (s TripService) bookings() repositories.BookingRepository {
	if s.BookingRepo != nil {
		return s.BookingRepo
	}
	return repositories.NewBookingRepository(s.db())
}

func validateTripInput(in models.TripInput) error {
	if utils.TrimOrEmpty(in.Code) == "" {
		return domain.ValidationError{Field: "code", Msg: "required"}
	}
	if utils.TrimOrEmpty(in.Destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if in.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "must be greater than zero"}
	}
	if utils.TrimOrEmpty(in.Status) == "" {
		return domain.ValidationError{Field: "status", Msg: "required"}
	}
	return nil
}

func (s TripService) CreateTrip(in models.TripInput) (models.Trip, error) {
	if err := validateTripInput(in); err != nil {
		return models.Trip{}, err
	}

	code := utils.NormalizeCode(in.Code)
	if exists, err := s.trips().CodeExists(code); err != nil {
		return models.Trip{}, err
	} else if exists {
		return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "code already exists"}
	}

	created, err := s.trips().Create(models.Trip{
		Code:        code,
		Destination: utils.TrimOrEmpty(in.Destination),
		Price:       in.Price,
		Status:      utils.TrimOrEmpty(in.Status),
	})
	if err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d code=%s", created.ID, created.Code))
	return created, nil
}

// UpdateTrip is a full-field overwrite; code uniqueness is re-checked only
// when the code changed.
func (s TripService) UpdateTrip(id int64, in models.TripInput) (models.Trip, error) {
	if err := validateTripInput(in); err != nil {
		return models.Trip{}, err
	}

	existing, err := s.trips().GetByID(id)
	if err != nil {
		return models.Trip{}, err
	}

	code := utils.NormalizeCode(in.Code)
	if code != existing.Code {
		if exists, err := s.trips().CodeExists(code); err != nil {
			return models.Trip{}, err
		} else if exists {
			return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "code already exists"}
		}
	}

	updated := models.Trip{
		ID:          id,
		Code:        code,
		Destination: utils.TrimOrEmpty(in.Destination),
		Price:       in.Price,
		Status:      utils.TrimOrEmpty(in.Status),
	}
	if err := s.trips().Update(updated); err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "update", fmt.Sprintf("trip_id=%d", id))
	return updated, nil
}

// DeleteTrip refuses while any booking references the trip, regardless of
// booking status.
func (s TripService) DeleteTrip(id int64) error {
	if _, err := s.trips().GetByID(id); err != nil {
		return err
	}

	hasBookings, err := s.bookings().ExistsForTrip(id)
	if err != nil {
		return err
	}
	if hasBookings {
		return domain.DependencyError{Resource: "trip", Msg: "cannot delete trip with existing bookings"}
	}

	if err := s.trips().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

func (s TripService) GetTripByID(id int64) (models.Trip, error) {
	return s.trips().GetByID(id)
}

func (s TripService) GetTripByCode(code string) (models.Trip, error) {
	code = utils.NormalizeCode(code)
	if code == "" {
		return models.Trip{}, domain.ValidationError{Field: "code", Msg: "required"}
	}
	return s.trips().GetByCode(code)
}

func (s TripService) ListTrips() ([]models.Trip, error) {
	return s.trips().List()
}

func (s TripService) ListAvailableTrips() ([]models.Trip, error) {
	return s.trips().ListAvailable()
}
