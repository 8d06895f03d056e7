package services

import (
	"testing"

	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeCustomerRepo struct {
	byID    map[int64]models.Customer
	nextID  int64
	deleted []int64
}

func newFakeCustomerRepo(seed ...models.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{byID: map[int64]models.Customer{}, nextID: 1}
	for _, c := range seed {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) GetByID(id int64) (models.Customer, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return models.Customer{}, domain.NotFoundError{Resource: "customer"}
}

func (r *fakeCustomerRepo) GetByCode(code string) (models.Customer, error) {
	for _, c := range r.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return models.Customer{}, domain.NotFoundError{Resource: "customer"}
}

func (r *fakeCustomerRepo) List() ([]models.Customer, error) {
	out := []models.Customer{}
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Create(c models.Customer) (models.Customer, error) {
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeCustomerRepo) Update(c models.Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.NotFoundError{Resource: "customer"}
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCustomerRepo) CodeExists(code string) (bool, error) {
	_, err := r.GetByCode(code)
	return err == nil, nil
}

func (r *fakeCustomerRepo) EmailExists(email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	for _, c := range r.byID {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) GetByID(id int64) (models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (r *fakeBookingRepo) ListByCustomer(customerID int64) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ExistsForCustomer(customerID int64) (bool, error) {
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) ExistsForTrip(tripID int64) (bool, error) {
	for _, b := range r.bookings {
		if b.TripID == tripID {
			return true, nil
		}
	}
	return false, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	created, err := svc.Register(models.CustomerInput{Code: "c1", FullName: "Alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.Code != "C1" {
		t.Fatalf("code not normalized: %q", created.Code)
	}
	if created.PasswordHash == "secret" || created.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRequiredFields(t *testing.T) {
	svc := CustomerService{CustomerRepo: newFakeCustomerRepo(), BookingRepo: &fakeBookingRepo{}}

	cases := []models.CustomerInput{
		{FullName: "Alice", Password: "x"},
		{Code: "C1", Password: "x"},
		{Code: "C1", FullName: "Alice"},
	}
	for _, in := range cases {
		if _, err := svc.Register(in); !domain.IsValidation(err) {
			t.Fatalf("expected ValidationError for %+v, got %v", in, err)
		}
	}
}

func TestRegisterDuplicateCodeAndEmail(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", Email: "a@example.com", PasswordHash: "h"})
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if _, err := svc.Register(models.CustomerInput{Code: "C1", FullName: "Bob", Password: "x"}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for duplicate code, got %v", err)
	}
	if _, err := svc.Register(models.CustomerInput{Code: "C2", FullName: "Bob", Email: "A@Example.com", Password: "x"}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for duplicate email, got %v", err)
	}
}

func TestLoginGenericFailure(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", PasswordHash: hashOf(t, "right")})
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	// unknown code and wrong password must be indistinguishable
	_, errUnknown := svc.Login("NOPE", "whatever")
	_, errWrongPw := svc.Login("C1", "wrong")

	if errUnknown == nil || errWrongPw == nil {
		t.Fatalf("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("login errors leak account existence: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", PasswordHash: hashOf(t, "secret")})
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	c, err := svc.Login("c1", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestUpdateCustomerSelfCollisionAllowed(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", Email: "a@example.com", PasswordHash: "h"})
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	// same code and email as the stored row must not count as duplicates
	updated, err := svc.UpdateCustomer(1, models.CustomerInput{Code: "C1", FullName: "Alice B", Email: "a@example.com", Password: "new"})
	if err != nil {
		t.Fatalf("UpdateCustomer returned error: %v", err)
	}
	if updated.FullName != "Alice B" {
		t.Fatalf("full name not updated: %+v", updated)
	}
}

func TestUpdateCustomerDuplicateCodeRejected(t *testing.T) {
	repo := newFakeCustomerRepo(
		models.Customer{ID: 1, Code: "C1", FullName: "Alice", PasswordHash: "h"},
		models.Customer{ID: 2, Code: "C2", FullName: "Bob", PasswordHash: "h"},
	)
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if _, err := svc.UpdateCustomer(2, models.CustomerInput{Code: "C1", FullName: "Bob", Password: "x"}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestDeleteCustomerWithBookingsBlocked(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", PasswordHash: "h"})
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: 5, CustomerID: 1, TripID: 2, Status: models.BookingCancelled},
	}}
	svc := CustomerService{CustomerRepo: repo, BookingRepo: bookings}

	// even a cancelled booking keeps the customer undeletable
	if err := svc.DeleteCustomer(1); !domain.IsDependency(err) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("customer row deleted despite dependents")
	}
}

func TestDeleteCustomerWithoutBookings(t *testing.T) {
	repo := newFakeCustomerRepo(models.Customer{ID: 1, Code: "C1", FullName: "Alice", PasswordHash: "h"})
	svc := CustomerService{CustomerRepo: repo, BookingRepo: &fakeBookingRepo{}}

	if err := svc.DeleteCustomer(1); err != nil {
		t.Fatalf("DeleteCustomer returned error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("customer row not deleted")
	}
}
