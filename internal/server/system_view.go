package server

import "syspulse/internal/shared"

// SystemDetails is the composite view served by /api/system. Hardware and
// network sections are null when no sample of that kind has been stored.
type SystemDetails struct {
	Profile  SystemProfile          `json:"profile"`
	OS       OSDetails              `json:"os"`
	Hardware HardwareDetails        `json:"hardware"`
	Network  *shared.NetworkInfo    `json:"network"`
	Storage  []shared.StorageDevice `json:"storage"`
}

type OSDetails struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Architecture string `json:"architecture"`
	Hostname     string `json:"hostname"`
}

type HardwareDetails struct {
	CPU     *shared.CPUInfo     `json:"cpu"`
	Memory  *shared.MemoryInfo  `json:"memory"`
	Battery *shared.BatteryInfo `json:"battery"`
}

// BuildSystemDetails assembles the latest row of each kind around the
// profile record.
func BuildSystemDetails(store Store, profile *SystemProfile) (*SystemDetails, error) {
	details := &SystemDetails{
		Profile: *profile,
		OS: OSDetails{
			Name:         profile.OSName,
			Version:      profile.OSVersion,
			Architecture: profile.OSArch,
			Hostname:     profile.Hostname,
		},
	}

	cpu, err := store.LatestCPU(profile.ID)
	if err != nil {
		return nil, err
	}
	if cpu != nil {
		info := cpu.Info()
		details.Hardware.CPU = &info
	}

	mem, err := store.LatestMemory(profile.ID)
	if err != nil {
		return nil, err
	}
	if mem != nil {
		info := mem.Info()
		details.Hardware.Memory = &info
	}

	bat, err := store.LatestBattery(profile.ID)
	if err != nil {
		return nil, err
	}
	if bat != nil {
		info := bat.Info()
		details.Hardware.Battery = &info
	}

	net, err := store.LatestNetwork(profile.ID)
	if err != nil {
		return nil, err
	}
	if net != nil {
		info := net.Info()
		details.Network = &info
	}

	st, err := store.LatestStorage(profile.ID)
	if err != nil {
		return nil, err
	}
	if st != nil {
		details.Storage = st.Devices
	}

	return details, nil
}
