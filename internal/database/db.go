package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the hotel tables. Room status is a denormalized projection
// of booking state; PAYMENT carries no unique booking constraint because
// the one-payment-per-booking rule is enforced at write time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS CUSTOMER (
		customer_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		address VARCHAR(512) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS ROOM (
		room_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		room_type VARCHAR(64) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Available'
	)`,
	`CREATE TABLE IF NOT EXISTS BOOKING (
		booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		room_id BIGINT NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Confirmed',
		FOREIGN KEY (customer_id) REFERENCES CUSTOMER(customer_id),
		FOREIGN KEY (room_id) REFERENCES ROOM(room_id)
	)`,
	`CREATE TABLE IF NOT EXISTS PAYMENT (
		payment_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_id BIGINT NOT NULL,
		payment_method VARCHAR(64) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		reference VARCHAR(64) NOT NULL,
		payment_date DATETIME NOT NULL,
		FOREIGN KEY (booking_id) REFERENCES BOOKING(booking_id)
	)`,
	`CREATE TABLE IF NOT EXISTS STAFF (
		staff_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(64) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		salary DECIMAL(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS SERVICE (
		service_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		service_name VARCHAR(255) NOT NULL,
		cost DECIMAL(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS CUSTOMER_SERVICE (
		customer_id BIGINT NOT NULL,
		service_id BIGINT NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES CUSTOMER(customer_id),
		FOREIGN KEY (service_id) REFERENCES SERVICE(service_id)
	)`,
}

// EnsureSchema creates the hotel tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
