package server

import "errors"

// fakeStore is an in-memory Store for handler and policy tests. Sample
// slices are held newest-first, matching the query ordering the real store
// guarantees.
type fakeStore struct {
	users    []User
	profiles []SystemProfile

	cpu       []CPUSample
	memory    []MemorySample
	network   []NetworkSample
	battery   []BatterySample
	storage   []StorageSample
	processes []ProcessSample

	failReads  bool
	failWrites bool
	nextUserID int64
	nextProfID int64
}

var errFakeStore = errors.New("store unavailable")

func (f *fakeStore) readErr() error {
	if f.failReads {
		return errFakeStore
	}
	return nil
}

func (f *fakeStore) GetUserByUsername(username string) (*User, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateUser(username, passwordHash string) (*User, error) {
	if f.failWrites {
		return nil, errFakeStore
	}
	f.nextUserID++
	u := User{ID: f.nextUserID, Username: username, PasswordHash: passwordHash}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeStore) GetProfile(id int64) (*SystemProfile, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			return &f.profiles[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetProfilesByUser(userID int64) ([]SystemProfile, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	var out []SystemProfile
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateProfile(p SystemProfile) (*SystemProfile, error) {
	if f.failWrites {
		return nil, errFakeStore
	}
	f.nextProfID++
	p.ID = f.nextProfID
	f.profiles = append(f.profiles, p)
	return &p, nil
}

func (f *fakeStore) LatestCPU(profileID int64) (*CPUSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.cpu {
		if f.cpu[i].ProfileID == profileID {
			return &f.cpu[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListCPU(profileID int64, limit int) ([]CPUSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	var out []CPUSample
	for _, s := range f.cpu {
		if s.ProfileID == profileID && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertCPU(s CPUSample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.cpu = append([]CPUSample{s}, f.cpu...)
	return nil
}

func (f *fakeStore) LatestMemory(profileID int64) (*MemorySample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.memory {
		if f.memory[i].ProfileID == profileID {
			return &f.memory[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListMemory(profileID int64, limit int) ([]MemorySample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	var out []MemorySample
	for _, s := range f.memory {
		if s.ProfileID == profileID && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertMemory(s MemorySample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.memory = append([]MemorySample{s}, f.memory...)
	return nil
}

func (f *fakeStore) LatestNetwork(profileID int64) (*NetworkSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.network {
		if f.network[i].ProfileID == profileID {
			return &f.network[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListNetwork(profileID int64, limit int) ([]NetworkSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	var out []NetworkSample
	for _, s := range f.network {
		if s.ProfileID == profileID && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertNetwork(s NetworkSample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.network = append([]NetworkSample{s}, f.network...)
	return nil
}

func (f *fakeStore) LatestBattery(profileID int64) (*BatterySample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.battery {
		if f.battery[i].ProfileID == profileID {
			return &f.battery[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertBattery(s BatterySample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.battery = append([]BatterySample{s}, f.battery...)
	return nil
}

func (f *fakeStore) LatestStorage(profileID int64) (*StorageSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.storage {
		if f.storage[i].ProfileID == profileID {
			return &f.storage[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertStorage(s StorageSample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.storage = append([]StorageSample{s}, f.storage...)
	return nil
}

func (f *fakeStore) LatestProcesses(profileID int64) (*ProcessSample, error) {
	if err := f.readErr(); err != nil {
		return nil, err
	}
	for i := range f.processes {
		if f.processes[i].ProfileID == profileID {
			return &f.processes[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertProcesses(s ProcessSample) error {
	if f.failWrites {
		return errFakeStore
	}
	f.processes = append([]ProcessSample{s}, f.processes...)
	return nil
}
