package server

import "syspulse/internal/shared"

// Row types mirror the metric tables. Timestamps are Unix milliseconds;
// sample rows are append-only and read newest-first.

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    int64
}

type SystemProfile struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Hostname  string `json:"hostname"`
	OSName    string `json:"osName"`
	OSVersion string `json:"osVersion"`
	OSArch    string `json:"osArch"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type CPUSample struct {
	ID        int64
	ProfileID int64
	Usage     float64
	Cores     int
	Threads   int
	Speed     string
	Model     string
	Timestamp int64
}

type MemorySample struct {
	ID             int64
	ProfileID      int64
	UsedPercentage float64
	Used           string
	Total          string
	Timestamp      int64
}

type NetworkSample struct {
	ID         int64
	ProfileID  int64
	Status     string
	Download   string
	Upload     string
	IP         string
	Interfaces []shared.NetworkInterface
	Timestamp  int64
}

type BatterySample struct {
	ID            int64
	ProfileID     int64
	Level         float64
	Status        string
	TimeRemaining string
	Timestamp     int64
}

type StorageSample struct {
	ID        int64
	ProfileID int64
	Devices   []shared.StorageDevice
	Timestamp int64
}

type ProcessSample struct {
	ID        int64
	ProfileID int64
	Processes []shared.ProcessInfo
	Timestamp int64
}

// Store is the narrow persistence surface the policy layer depends on.
// Lookup methods return (nil, nil) when no row exists.
type Store interface {
	GetUserByUsername(username string) (*User, error)
	CreateUser(username, passwordHash string) (*User, error)

	GetProfile(id int64) (*SystemProfile, error)
	GetProfilesByUser(userID int64) ([]SystemProfile, error)
	CreateProfile(p SystemProfile) (*SystemProfile, error)

	LatestCPU(profileID int64) (*CPUSample, error)
	ListCPU(profileID int64, limit int) ([]CPUSample, error)
	InsertCPU(s CPUSample) error

	LatestMemory(profileID int64) (*MemorySample, error)
	ListMemory(profileID int64, limit int) ([]MemorySample, error)
	InsertMemory(s MemorySample) error

	LatestNetwork(profileID int64) (*NetworkSample, error)
	ListNetwork(profileID int64, limit int) ([]NetworkSample, error)
	InsertNetwork(s NetworkSample) error

	LatestBattery(profileID int64) (*BatterySample, error)
	InsertBattery(s BatterySample) error

	LatestStorage(profileID int64) (*StorageSample, error)
	InsertStorage(s StorageSample) error

	LatestProcesses(profileID int64) (*ProcessSample, error)
	InsertProcesses(s ProcessSample) error
}
