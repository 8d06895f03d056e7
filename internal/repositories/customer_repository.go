package repositories

import (
	"database/sql"
	"errors"

	"travelcenter/internal/db"
	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type CustomerRepository interface {
	GetByID(id int64) (models.Customer, error)
	GetByCode(code string) (models.Customer, error)
	List() ([]models.Customer, error)
	Create(c models.Customer) (models.Customer, error)
	Update(c models.Customer) error
	Delete(id int64) error
	CodeExists(code string) (bool, error)
	EmailExists(email string) (bool, error)
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(database *sql.DB) CustomerRepository {
	return &customerRepository{db: database}
}

const customerColumns = `customer_id, code, full_name, COALESCE(email,''), COALESCE(age,0), password_hash`

func scanCustomer(row *sql.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Code, &c.FullName, &c.Email, &c.Age, &c.PasswordHash)
	return c, err
}

func (r *customerRepository) GetByID(id int64) (models.Customer, error) {
	row := r.db.QueryRow(`SELECT `+customerColumns+` FROM customers WHERE customer_id=? LIMIT 1`, id)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "customer"}
	}
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}
	return c, nil
}

func (r *customerRepository) GetByCode(code string) (models.Customer, error) {
	row := r.db.QueryRow(`SELECT `+customerColumns+` FROM customers WHERE code=? LIMIT 1`, code)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "customer"}
	}
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}
	return c, nil
}

func (r *customerRepository) List() ([]models.Customer, error) {
	rows, err := r.db.Query(`SELECT ` + customerColumns + ` FROM customers ORDER BY customer_id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.FullName, &c.Email, &c.Age, &c.PasswordHash); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customerRepository) Create(c models.Customer) (models.Customer, error) {
	res, err := r.db.Exec(`
		INSERT INTO customers (code, full_name, email, age, password_hash)
		VALUES (?, ?, ?, ?, ?)`,
		c.Code, c.FullName, db.NullIfEmpty(c.Email), db.NullIfZero(c.Age), c.PasswordHash,
	)
	if err != nil {
		if isDuplicate(err) {
			return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: "code or email already exists", Err: err}
		}
		return models.Customer{}, domain.InternalError{Err: err}
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r *customerRepository) Update(c models.Customer) error {
	// zero affected rows is fine when nothing changed; existence is checked by callers
	_, err := r.db.Exec(`
		UPDATE customers
		SET code=?, full_name=?, email=?, age=?, password_hash=?
		WHERE customer_id=?`,
		c.Code, c.FullName, db.NullIfEmpty(c.Email), db.NullIfZero(c.Age), c.PasswordHash, c.ID,
	)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "customer", Msg: "code or email already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r *customerRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM customers WHERE customer_id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "customer"}
	}
	return nil
}

func (r *customerRepository) CodeExists(code string) (bool, error) {
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM customers WHERE code=? LIMIT 1`, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

func (r *customerRepository) EmailExists(email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM customers WHERE email=? LIMIT 1`, email).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// isDuplicate reports MySQL error 1062 (unique key violation).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
