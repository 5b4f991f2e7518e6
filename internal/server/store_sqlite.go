package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (s *SQLiteStore) GetUserByUsername(username string) (*User, error) {
	row := s.DB.QueryRow(
		`SELECT id, username, password, created_at FROM users WHERE username = ?`, username,
	)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) CreateUser(username, passwordHash string) (*User, error) {
	now := nowMillis()
	res, err := s.DB.Exec(
		`INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`,
		username, passwordHash, now,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: now}, nil
}

func (s *SQLiteStore) GetProfile(id int64) (*SystemProfile, error) {
	row := s.DB.QueryRow(
		`SELECT id, user_id, name, hostname, os_name, os_version, os_arch, created_at, updated_at
		 FROM system_profiles WHERE id = ?`, id,
	)

	var p SystemProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Hostname, &p.OSName, &p.OSVersion, &p.OSArch, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) GetProfilesByUser(userID int64) ([]SystemProfile, error) {
	rows, err := s.DB.Query(
		`SELECT id, user_id, name, hostname, os_name, os_version, os_arch, created_at, updated_at
		 FROM system_profiles WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SystemProfile
	for rows.Next() {
		var p SystemProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Hostname, &p.OSName, &p.OSVersion, &p.OSArch, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateProfile(p SystemProfile) (*SystemProfile, error) {
	now := nowMillis()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := s.DB.Exec(
		`INSERT INTO system_profiles (user_id, name, hostname, os_name, os_version, os_arch, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Name, p.Hostname, p.OSName, p.OSVersion, p.OSArch, now, now,
	)
	if err != nil {
		return nil, err
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) LatestCPU(profileID int64) (*CPUSample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, usage, cores, threads, speed, COALESCE(model, ''), timestamp
		 FROM cpu_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)

	var c CPUSample
	if err := row.Scan(&c.ID, &c.ProfileID, &c.Usage, &c.Cores, &c.Threads, &c.Speed, &c.Model, &c.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) ListCPU(profileID int64, limit int) ([]CPUSample, error) {
	rows, err := s.DB.Query(
		`SELECT id, profile_id, usage, cores, threads, speed, COALESCE(model, ''), timestamp
		 FROM cpu_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT ?`, profileID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CPUSample
	for rows.Next() {
		var c CPUSample
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Usage, &c.Cores, &c.Threads, &c.Speed, &c.Model, &c.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) InsertCPU(c CPUSample) error {
	if c.Timestamp == 0 {
		c.Timestamp = nowMillis()
	}
	_, err := s.DB.Exec(
		`INSERT INTO cpu_metrics (profile_id, usage, cores, threads, speed, model, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ProfileID, c.Usage, c.Cores, c.Threads, c.Speed, c.Model, c.Timestamp,
	)
	return err
}

func (s *SQLiteStore) LatestMemory(profileID int64) (*MemorySample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, used_percentage, used, total, timestamp
		 FROM memory_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)

	var m MemorySample
	if err := row.Scan(&m.ID, &m.ProfileID, &m.UsedPercentage, &m.Used, &m.Total, &m.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteStore) ListMemory(profileID int64, limit int) ([]MemorySample, error) {
	rows, err := s.DB.Query(
		`SELECT id, profile_id, used_percentage, used, total, timestamp
		 FROM memory_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT ?`, profileID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MemorySample
	for rows.Next() {
		var m MemorySample
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.UsedPercentage, &m.Used, &m.Total, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) InsertMemory(m MemorySample) error {
	if m.Timestamp == 0 {
		m.Timestamp = nowMillis()
	}
	_, err := s.DB.Exec(
		`INSERT INTO memory_metrics (profile_id, used_percentage, used, total, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ProfileID, m.UsedPercentage, m.Used, m.Total, m.Timestamp,
	)
	return err
}

func (s *SQLiteStore) LatestNetwork(profileID int64) (*NetworkSample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, status, download, upload, ip, COALESCE(interfaces_json, ''), timestamp
		 FROM network_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)
	return scanNetwork(row.Scan)
}

func (s *SQLiteStore) ListNetwork(profileID int64, limit int) ([]NetworkSample, error) {
	rows, err := s.DB.Query(
		`SELECT id, profile_id, status, download, upload, ip, COALESCE(interfaces_json, ''), timestamp
		 FROM network_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT ?`, profileID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NetworkSample
	for rows.Next() {
		n, err := scanNetwork(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func scanNetwork(scan func(dest ...any) error) (*NetworkSample, error) {
	var n NetworkSample
	var ifacesJSON string
	if err := scan(&n.ID, &n.ProfileID, &n.Status, &n.Download, &n.Upload, &n.IP, &ifacesJSON, &n.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if ifacesJSON != "" {
		_ = json.Unmarshal([]byte(ifacesJSON), &n.Interfaces)
	}
	return &n, nil
}

func (s *SQLiteStore) InsertNetwork(n NetworkSample) error {
	if n.Timestamp == 0 {
		n.Timestamp = nowMillis()
	}
	var ifacesJSON string
	if len(n.Interfaces) > 0 {
		b, err := json.Marshal(n.Interfaces)
		if err != nil {
			return err
		}
		ifacesJSON = string(b)
	}
	_, err := s.DB.Exec(
		`INSERT INTO network_metrics (profile_id, status, download, upload, ip, interfaces_json, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ProfileID, n.Status, n.Download, n.Upload, n.IP, ifacesJSON, n.Timestamp,
	)
	return err
}

func (s *SQLiteStore) LatestBattery(profileID int64) (*BatterySample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, level, status, COALESCE(time_remaining, ''), timestamp
		 FROM battery_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)

	var b BatterySample
	if err := row.Scan(&b.ID, &b.ProfileID, &b.Level, &b.Status, &b.TimeRemaining, &b.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *SQLiteStore) InsertBattery(b BatterySample) error {
	if b.Timestamp == 0 {
		b.Timestamp = nowMillis()
	}
	_, err := s.DB.Exec(
		`INSERT INTO battery_metrics (profile_id, level, status, time_remaining, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		b.ProfileID, b.Level, b.Status, b.TimeRemaining, b.Timestamp,
	)
	return err
}

func (s *SQLiteStore) LatestStorage(profileID int64) (*StorageSample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, devices_json, timestamp
		 FROM storage_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)

	var st StorageSample
	var devicesJSON string
	if err := row.Scan(&st.ID, &st.ProfileID, &devicesJSON, &st.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(devicesJSON), &st.Devices); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *SQLiteStore) InsertStorage(st StorageSample) error {
	if st.Timestamp == 0 {
		st.Timestamp = nowMillis()
	}
	b, err := json.Marshal(st.Devices)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(
		`INSERT INTO storage_metrics (profile_id, devices_json, timestamp) VALUES (?, ?, ?)`,
		st.ProfileID, string(b), st.Timestamp,
	)
	return err
}

func (s *SQLiteStore) LatestProcesses(profileID int64) (*ProcessSample, error) {
	row := s.DB.QueryRow(
		`SELECT id, profile_id, processes_json, timestamp
		 FROM process_metrics WHERE profile_id = ? ORDER BY timestamp DESC LIMIT 1`, profileID,
	)

	var ps ProcessSample
	var procJSON string
	if err := row.Scan(&ps.ID, &ps.ProfileID, &procJSON, &ps.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(procJSON), &ps.Processes); err != nil {
		return nil, err
	}
	return &ps, nil
}

func (s *SQLiteStore) InsertProcesses(ps ProcessSample) error {
	if ps.Timestamp == 0 {
		ps.Timestamp = nowMillis()
	}
	b, err := json.Marshal(ps.Processes)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(
		`INSERT INTO process_metrics (profile_id, processes_json, timestamp) VALUES (?, ?, ?)`,
		ps.ProfileID, string(b), ps.Timestamp,
	)
	return err
}
