package services

import (
	"testing"

	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
)

type fakeTripRepo struct {
	byID    map[int64]models.Trip
	nextID  int64
	deleted []int64
}

func newFakeTripRepo(seed ...models.Trip) *fakeTripRepo {
	r := &fakeTripRepo{byID: map[int64]models.Trip{}, nextID: 1}
	for _, t := range seed {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
		r.byID[t.ID] = t
	}
	return r
}

func (r *fakeTripRepo) GetByID(id int64) (models.Trip, error) {
	if t, ok := r.byID[id]; ok {
		return t, nil
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}

func (r *fakeTripRepo) GetByCode(code string) (models.Trip, error) {
	for _, t := range r.byID {
		if t.Code == code {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}

func (r *fakeTripRepo) List() ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTripRepo) ListAvailable() ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range r.byID {
		if t.Status == models.TripAvailable {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) Create(t models.Trip) (models.Trip, error) {
	t.ID = r.nextID
	r.nextID++
	r.byID[t.ID] = t
	return t, nil
}

func (r *fakeTripRepo) Update(t models.Trip) error {
	r.byID[t.ID] = t
	return nil
}

func (r *fakeTripRepo) Delete(id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeTripRepo) CodeExists(code string) (bool, error) {
	_, err := r.GetByCode(code)
	return err == nil, nil
}

func TestCreateTripValidation(t *testing.T) {
	svc := TripService{TripRepo: newFakeTripRepo(), BookingRepo: &fakeBookingRepo{}}

	cases := []models.TripInput{
		{Destination: "Paris", Price: 500, Status: models.TripAvailable},
		{Code: "T1", Price: 500, Status: models.TripAvailable},
		{Code: "T1", Destination: "Paris", Price: 0, Status: models.TripAvailable},
		{Code: "T1", Destination: "Paris", Price: -10, Status: models.TripAvailable},
		{Code: "T1", Destination: "Paris", Price: 500},
	}
	for _, in := range cases {
		if _, err := svc.CreateTrip(in); !domain.IsValidation(err) {
			t.Fatalf("expected ValidationError for %+v, got %v", in, err)
		}
	}
}

func TestCreateTripDuplicateCode(t *testing.T) {
	repo := newFakeTripRepo(models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripAvailable})
	svc := TripService{TripRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if _, err := svc.CreateTrip(models.TripInput{Code: "t1", Destination: "Rome", Price: 300, Status: models.TripAvailable}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestUpdateTripKeepingCodeAllowed(t *testing.T) {
	repo := newFakeTripRepo(models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripAvailable})
	svc := TripService{TripRepo: repo, BookingRepo: &fakeBookingRepo{}}

	updated, err := svc.UpdateTrip(1, models.TripInput{Code: "T1", Destination: "Paris", Price: 650, Status: models.TripAvailable})
	if err != nil {
		t.Fatalf("UpdateTrip returned error: %v", err)
	}
	if updated.Price != 650 {
		t.Fatalf("price not updated: %+v", updated)
	}
}

func TestUpdateTripDuplicateCodeRejected(t *testing.T) {
	repo := newFakeTripRepo(
		models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripAvailable},
		models.Trip{ID: 2, Code: "T2", Destination: "Rome", Price: 300, Status: models.TripAvailable},
	)
	svc := TripService{TripRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if _, err := svc.UpdateTrip(2, models.TripInput{Code: "T1", Destination: "Rome", Price: 300, Status: models.TripAvailable}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestDeleteTripWithBookingsBlocked(t *testing.T) {
	repo := newFakeTripRepo(models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripBooked})
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: 5, CustomerID: 9, TripID: 1, Status: models.BookingConfirmed},
	}}
	svc := TripService{TripRepo: repo, BookingRepo: bookings}

	if err := svc.DeleteTrip(1); !domain.IsDependency(err) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("trip row deleted despite dependents")
	}
}

func TestDeleteTripWithoutBookings(t *testing.T) {
	repo := newFakeTripRepo(models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripAvailable})
	svc := TripService{TripRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if err := svc.DeleteTrip(1); err != nil {
		t.Fatalf("DeleteTrip returned error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("trip row not deleted")
	}
}

func TestGetTripByCodeNormalized(t *testing.T) {
	repo := newFakeTripRepo(models.Trip{ID: 1, Code: "T1", Destination: "Paris", Price: 500, Status: models.TripAvailable})
	svc := TripService{TripRepo: repo, BookingRepo: &fakeBookingRepo{}}

	trip, err := svc.GetTripByCode(" t1 ")
	if err != nil {
		t.Fatalf("GetTripByCode returned error: %v", err)
	}
	if trip.ID != 1 {
		t.Fatalf("unexpected trip: %+v", trip)
	}

	if _, err := svc.GetTripByCode("  "); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for blank code, got %v", err)
	}
}
