package repositories

import (
	"testing"

	"travelcenter/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCustomerRepositoryGetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"customer_id", "code", "full_name", "email", "age", "password_hash"}).
		AddRow(1, "C1", "Alice", "a@example.com", 30, "hash")
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE code").WithArgs("C1").
		WillReturnRows(rows)

	repo := NewCustomerRepository(db)
	c, err := repo.GetByCode("C1")
	if err != nil {
		t.Fatalf("GetByCode returned error: %v", err)
	}
	if c.ID != 1 || c.FullName != "Alice" || c.PasswordHash != "hash" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerRepositoryGetByCodeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE code").WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "code", "full_name", "email", "age", "password_hash"}))

	repo := NewCustomerRepository(db)
	if _, err := repo.GetByCode("NOPE"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerRepositoryEmailExistsSkipsEmpty(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// no query expected for an empty email
	repo := NewCustomerRepository(db)
	exists, err := repo.EmailExists("")
	if err != nil || exists {
		t.Fatalf("empty email should be skipped, got exists=%v err=%v", exists, err)
	}
}
