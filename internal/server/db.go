package server

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS system_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			hostname TEXT NOT NULL,
			os_name TEXT NOT NULL,
			os_version TEXT NOT NULL,
			os_arch TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS cpu_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			usage REAL NOT NULL,
			cores INTEGER NOT NULL,
			threads INTEGER NOT NULL,
			speed TEXT NOT NULL,
			model TEXT,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cpu_profile_ts ON cpu_metrics(profile_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS memory_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			used_percentage REAL NOT NULL,
			used TEXT NOT NULL,
			total TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_memory_profile_ts ON memory_metrics(profile_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS network_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			status TEXT NOT NULL,
			download TEXT NOT NULL,
			upload TEXT NOT NULL,
			ip TEXT NOT NULL,
			interfaces_json TEXT,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_network_profile_ts ON network_metrics(profile_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS battery_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			level REAL NOT NULL,
			status TEXT NOT NULL,
			time_remaining TEXT,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_battery_profile_ts ON battery_metrics(profile_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS storage_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			devices_json TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_storage_profile_ts ON storage_metrics(profile_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS process_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL,
			processes_json TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			FOREIGN KEY(profile_id) REFERENCES system_profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_process_profile_ts ON process_metrics(profile_id, timestamp DESC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
