package services

import (
	"database/sql"
	"fmt"

	intconfig "travelcenter/internal/config"
	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
	"travelcenter/internal/repositories"
	"travelcenter/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// CustomerService handles registration, login and admin CRUD for customers.
type CustomerService struct {
	CustomerRepo repositories.CustomerRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
	RequestID    string
}

func (s CustomerService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CustomerService) customers() repositories.CustomerRepository {
	if s.CustomerRepo != nil {
		return s.CustomerRepo
	}
	return repositories.NewCustomerRepository(s.db())
}

func (s CustomerService) bookings() repositories.BookingRepository {
	if s.BookingRepo != nil {
		return s.BookingRepo
	}
	return repositories.NewBookingRepository(s.db())
}

func validateCustomerInput(in models.CustomerInput) error {
	if utils.TrimOrEmpty(in.Code) == "" {
		return domain.ValidationError{Field: "code", Msg: "required"}
	}
	if utils.TrimOrEmpty(in.FullName) == "" {
		return domain.ValidationError{Field: "full_name", Msg: "required"}
	}
	if in.Password == "" {
		return domain.ValidationError{Field: "password", Msg: "required"}
	}
	return nil
}

// Register creates a self-service customer account. Code and email are
// pre-checked for duplicates so the caller gets a specific message; the
// UNIQUE constraints remain the last line of defense.
func (s CustomerService) Register(in models.CustomerInput) (models.Customer, error) {
	if err := validateCustomerInput(in); err != nil {
		return models.Customer{}, err
	}

	code := utils.NormalizeCode(in.Code)
	email := utils.NormalizeEmail(in.Email)

	if exists, err := s.customers().CodeExists(code); err != nil {
		return models.Customer{}, err
	} else if exists {
		return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: "code already exists"}
	}
	if email != "" {
		if exists, err := s.customers().EmailExists(email); err != nil {
			return models.Customer{}, err
		} else if exists {
			return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: "email already exists"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}

	created, err := s.customers().Create(models.Customer{
		Code:         code,
		FullName:     utils.TrimOrEmpty(in.FullName),
		Email:        email,
		Age:          in.Age,
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.Customer{}, err
	}

	utils.LogEvent(s.RequestID, "customer", "register", fmt.Sprintf("customer_id=%d code=%s", created.ID, created.Code))
	return created, nil
}

// Login verifies the code/password pair. Every failure mode returns the same
// generic message so callers cannot probe which codes exist.
func (s CustomerService) Login(code, password string) (models.Customer, error) {
	code = utils.NormalizeCode(code)
	if code == "" || password == "" {
		return models.Customer{}, domain.ValidationError{Msg: "invalid credentials"}
	}

	c, err := s.customers().GetByCode(code)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Customer{}, domain.ValidationError{Msg: "invalid credentials"}
		}
		return models.Customer{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return models.Customer{}, domain.ValidationError{Msg: "invalid credentials"}
	}

	utils.LogEvent(s.RequestID, "customer", "login", fmt.Sprintf("customer_id=%d", c.ID))
	return c, nil
}

// AddCustomer is the admin-side create; same rules as Register.
func (s CustomerService) AddCustomer(in models.CustomerInput) (models.Customer, error) {
	return s.Register(in)
}

// UpdateCustomer overwrites all writable fields. Code and email uniqueness
// are re-checked only when the value actually changed (self-collision is not
// an error).
func (s CustomerService) UpdateCustomer(id int64, in models.CustomerInput) (models.Customer, error) {
	if err := validateCustomerInput(in); err != nil {
		return models.Customer{}, err
	}

	existing, err := s.customers().GetByID(id)
	if err != nil {
		return models.Customer{}, err
	}

	code := utils.NormalizeCode(in.Code)
	email := utils.NormalizeEmail(in.Email)

	if code != existing.Code {
		if exists, err := s.customers().CodeExists(code); err != nil {
			return models.Customer{}, err
		} else if exists {
			return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: "code already exists"}
		}
	}
	if email != "" && email != existing.Email {
		if exists, err := s.customers().EmailExists(email); err != nil {
			return models.Customer{}, err
		} else if exists {
			return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: "email already exists"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}

	updated := models.Customer{
		ID:           id,
		Code:         code,
		FullName:     utils.TrimOrEmpty(in.FullName),
		Email:        email,
		Age:          in.Age,
		PasswordHash: string(hash),
	}
	if err := s.customers().Update(updated); err != nil {
		return models.Customer{}, err
	}

	utils.LogEvent(s.RequestID, "customer", "update", fmt.Sprintf("customer_id=%d", id))
	return updated, nil
}

// DeleteCustomer removes the row unless any booking, cancelled ones
// included, still references it.
func (s CustomerService) DeleteCustomer(id int64) error {
	if _, err := s.customers().GetByID(id); err != nil {
		return err
	}

	hasBookings, err := s.bookings().ExistsForCustomer(id)
	if err != nil {
		return err
	}
	if hasBookings {
		return domain.DependencyError{Resource: "customer", Msg: "cannot delete customer with existing bookings"}
	}

	if err := s.customers().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "customer", "delete", fmt.Sprintf("customer_id=%d", id))
	return nil
}

func (s CustomerService) GetCustomerByID(id int64) (models.Customer, error) {
	return s.customers().GetByID(id)
}

func (s CustomerService) ListCustomers() ([]models.Customer, error) {
	return s.customers().List()
}
