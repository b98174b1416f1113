package repository

import (
	"database/sql"
	"log/slog"
)

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(db *sql.DB) error {
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	slog.Info("migrations completed")
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		cpf VARCHAR(14) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL,
		pin CHAR(4) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id VARCHAR(36) PRIMARY KEY,
		owner_id VARCHAR(36) NOT NULL,
		title VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		date_time DATETIME NOT NULL,
		cep CHAR(9) NOT NULL,
		address VARCHAR(255) NOT NULL,
		address_number VARCHAR(20),
		district VARCHAR(100) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(50) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_events_owner FOREIGN KEY (owner_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_participants (
		event_id VARCHAR(36) NOT NULL,
		user_id VARCHAR(36) NOT NULL,
		registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (event_id, user_id),
		CONSTRAINT fk_participants_event FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
		CONSTRAINT fk_participants_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}
