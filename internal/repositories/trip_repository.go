package repositories

import (
	"database/sql"
	"errors"

	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
)

type TripRepository interface {
	GetByID(id int64) (models.Trip, error)
	GetByCode(code string) (models.Trip, error)
	List() ([]models.Trip, error)
	ListAvailable() ([]models.Trip, error)
	Create(t models.Trip) (models.Trip, error)
	Update(t models.Trip) error
	Delete(id int64) error
	CodeExists(code string) (bool, error)
}

type tripRepository struct {
	db *sql.DB
}

func NewTripRepository(database *sql.DB) TripRepository {
	return &tripRepository{db: database}
}

const tripColumns = `trip_id, code, destination, price, status`

func (r *tripRepository) GetByID(id int64) (models.Trip, error) {
	var t models.Trip
	err := r.db.QueryRow(`SELECT `+tripColumns+` FROM trips WHERE trip_id=? LIMIT 1`, id).
		Scan(&t.ID, &t.Code, &t.Destination, &t.Price, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r *tripRepository) GetByCode(code string) (models.Trip, error) {
	var t models.Trip
	err := r.db.QueryRow(`SELECT `+tripColumns+` FROM trips WHERE code=? LIMIT 1`, code).
		Scan(&t.ID, &t.Code, &t.Destination, &t.Price, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r *tripRepository) List() ([]models.Trip, error) {
	return r.list(`SELECT ` + tripColumns + ` FROM trips ORDER BY trip_id ASC`)
}

func (r *tripRepository) ListAvailable() ([]models.Trip, error) {
	return r.list(`SELECT ` + tripColumns + ` FROM trips WHERE status='` + models.TripAvailable + `' ORDER BY trip_id ASC`)
}

func (r *tripRepository) list(query string) ([]models.Trip, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Code, &t.Destination, &t.Price, &t.Status); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tripRepository) Create(t models.Trip) (models.Trip, error) {
	res, err := r.db.Exec(`
		INSERT INTO trips (code, destination, price, status)
		VALUES (?, ?, ?, ?)`,
		t.Code, t.Destination, t.Price, t.Status,
	)
	if err != nil {
		if isDuplicate(err) {
			return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "code already exists", Err: err}
		}
		return models.Trip{}, domain.InternalError{Err: err}
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

func (r *tripRepository) Update(t models.Trip) error {
	_, err := r.db.Exec(`
		UPDATE trips
		SET code=?, destination=?, price=?, status=?
		WHERE trip_id=?`,
		t.Code, t.Destination, t.Price, t.Status, t.ID,
	)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "trip", Msg: "code already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r *tripRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM trips WHERE trip_id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r *tripRepository) CodeExists(code string) (bool, error) {
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM trips WHERE code=? LIMIT 1`, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}
