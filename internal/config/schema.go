package config

import (
	"database/sql"
	"fmt"

	intdb "busticket/internal/db"
)

// schemaDDL is ordered so foreign-key targets exist before their referrers.
var schemaDDL = []struct {
	table string
	ddl   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(15) NOT NULL DEFAULT '',
	address TEXT,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'customer',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"cities", `
CREATE TABLE IF NOT EXISTS cities (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	UNIQUE KEY uniq_city_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"operators", `
CREATE TABLE IF NOT EXISTS operators (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	contact_email VARCHAR(255) NOT NULL,
	phone VARCHAR(15) NOT NULL DEFAULT ''
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"buses", `
CREATE TABLE IF NOT EXISTS buses (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	operator_id BIGINT NOT NULL,
	bus_number VARCHAR(50) NOT NULL,
	bus_type VARCHAR(10) NOT NULL,
	total_seats INT UNSIGNED NOT NULL,
	rating DOUBLE NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_bus_number (bus_number),
	KEY idx_bus_operator (operator_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"routes", `
CREATE TABLE IF NOT EXISTS routes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	source_id BIGINT NOT NULL,
	destination_id BIGINT NOT NULL,
	bus_id BIGINT NOT NULL,
	departure_time DATETIME NOT NULL,
	arrival_time DATETIME NOT NULL,
	fare_cents BIGINT NOT NULL,
	KEY idx_route_search (source_id, destination_id),
	KEY idx_route_bus (bus_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"seats", `
CREATE TABLE IF NOT EXISTS seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_id BIGINT NOT NULL,
	seat_number VARCHAR(10) NOT NULL,
	is_booked TINYINT(1) NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_bus_seat (bus_id, seat_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference CHAR(36) NOT NULL,
	user_id BIGINT NOT NULL,
	route_id BIGINT NOT NULL,
	booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	total_fare_cents BIGINT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'Confirmed',
	UNIQUE KEY uniq_booking_reference (reference),
	KEY idx_booking_user (user_id),
	KEY idx_booking_route (route_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"booking_seats", `
CREATE TABLE IF NOT EXISTS booking_seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	seat_id BIGINT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking_seat (booking_id, seat_id),
	KEY idx_bs_seat (seat_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"passengers", `
CREATE TABLE IF NOT EXISTS passengers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	name VARCHAR(100) NOT NULL,
	age INT UNSIGNED NOT NULL,
	gender VARCHAR(10) NOT NULL,
	KEY idx_passenger_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
}

// columnMigrations backfills columns added after the first release, for
// installs whose tables predate them.
var columnMigrations = []struct {
	table  string
	column string
	ddl    string
}{
	{"bookings", "reference", `ALTER TABLE bookings ADD COLUMN reference CHAR(36) NOT NULL DEFAULT '' AFTER id`},
	{"buses", "rating", `ALTER TABLE buses ADD COLUMN rating DOUBLE NOT NULL DEFAULT 0`},
}

// EnsureSchema creates any missing tables and backfills missing columns.
// Existing tables are otherwise left alone.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database not connected")
	}
	for _, s := range schemaDDL {
		if intdb.HasTable(db, s.table) {
			continue
		}
		if _, err := db.Exec(s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	for _, m := range columnMigrations {
		if intdb.HasColumn(db, m.table, m.column) {
			continue
		}
		if _, err := db.Exec(m.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", m.table, m.column, err)
		}
	}
	return nil
}
