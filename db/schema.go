package db

import (
	"database/sql"
	"fmt"
)

// Schema statements are idempotent and re-run on every boot. Foreign keys are
// declared for documentation but not enforced: requests and grades are allowed
// to reference ids the users table has never seen.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		password TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL,
		teacher_id TEXT NOT NULL,
		surah_name TEXT NOT NULL,
		status TEXT DEFAULT 'pending',
		request_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(student_id) REFERENCES users(id),
		FOREIGN KEY(teacher_id) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS grades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id INTEGER,
		student_id TEXT NOT NULL,
		teacher_id TEXT NOT NULL,
		surah_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		notes TEXT,
		grade_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(request_id) REFERENCES requests(id),
		FOREIGN KEY(student_id) REFERENCES users(id),
		FOREIGN KEY(teacher_id) REFERENCES users(id)
	);`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL,
		password VARCHAR(255) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS requests (
		id INT AUTO_INCREMENT PRIMARY KEY,
		student_id VARCHAR(64) NOT NULL,
		teacher_id VARCHAR(64) NOT NULL,
		surah_name VARCHAR(255) NOT NULL,
		status VARCHAR(16) DEFAULT 'pending',
		request_date DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS grades (
		id INT AUTO_INCREMENT PRIMARY KEY,
		request_id INT,
		student_id VARCHAR(64) NOT NULL,
		teacher_id VARCHAR(64) NOT NULL,
		surah_name VARCHAR(255) NOT NULL,
		score INT NOT NULL,
		notes TEXT,
		grade_date DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
}

// InitSchema ensures all three tables exist. Safe to run on every start.
func InitSchema(database *sql.DB, driver string) error {
	statements := sqliteSchema
	if driver == "mysql" {
		statements = mysqlSchema
	}

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %v", err)
		}
	}
	return nil
}

// Seed inserts the demo accounts once. A non-empty users table makes it a
// no-op, so re-running on every boot never duplicates or overwrites anyone.
func Seed(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %v", err)
	}
	if count > 0 {
		return nil
	}

	seedUsers := []struct {
		id, name, role, password string
	}{
		{"1234567890", "Ahmad Fauzi", "siswa", "password123"},
		{"0987654321", "Siti Aminah", "siswa", "password123"},
		{"GURU001", "Ust. Abdullah", "guru", "admin123"},
		{"GURU002", "Ustz. Khadijah", "guru", "admin123"},
	}

	for _, u := range seedUsers {
		_, err := database.Exec(
			"INSERT INTO users (id, name, role, password) VALUES (?, ?, ?, ?)",
			u.id, u.name, u.role, u.password,
		)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %v", u.id, err)
		}
	}
	return nil
}
