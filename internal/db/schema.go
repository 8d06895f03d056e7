package db

import "database/sql"

// EnsureSchema creates the three core tables when they are missing. The
// UNIQUE keys back the application-level duplicate checks so that a
// check-then-insert race still fails at the constraint.
func EnsureSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NULL,
			age INT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_customer_code (code),
			UNIQUE KEY uniq_customer_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS trips (
			trip_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Available',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_trip_code (code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			trip_id BIGINT NOT NULL,
			booking_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Confirmed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_booking_customer (customer_id),
			KEY idx_booking_trip (trip_id),
			CONSTRAINT fk_booking_customer FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
			CONSTRAINT fk_booking_trip FOREIGN KEY (trip_id) REFERENCES trips (trip_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NullIfEmpty helps store optional strings without writing empty values.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero keeps optional numeric columns NULL when unset.
func NullIfZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
