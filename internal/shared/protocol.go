package shared

// CPUInfo is a CPU snapshot as served to the dashboard.
type CPUInfo struct {
	Usage   float64 `json:"usage"` // percent
	Cores   int     `json:"cores"`
	Threads int     `json:"threads"`
	Speed   string  `json:"speed"` // e.g. "3.60 GHz"
	Model   string  `json:"model,omitempty"`
}

type MemoryInfo struct {
	UsedPercentage float64 `json:"usedPercentage"`
	Used           string  `json:"used"`  // e.g. "7.45 GB"
	Total          string  `json:"total"` // e.g. "16 GB"
}

type BatteryInfo struct {
	Level         float64 `json:"level"`
	Status        string  `json:"status"` // "Charging" | "Discharging"
	TimeRemaining string  `json:"timeRemaining,omitempty"`
}

type NetworkInfo struct {
	Status     string             `json:"status"` // "Online" | "Offline"
	Download   string             `json:"download"`
	Upload     string             `json:"upload"`
	IP         string             `json:"ip"`
	Interfaces []NetworkInterface `json:"interfaces,omitempty"`
}

type NetworkInterface struct {
	Name       string `json:"name"`
	IPAddress  string `json:"ipAddress"`
	MACAddress string `json:"macAddress"`
	Speed      string `json:"speed,omitempty"`
}

type StorageDevice struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	TotalSpace     string  `json:"totalSpace"`
	UsedSpace      string  `json:"usedSpace"`
	UsedPercentage float64 `json:"usedPercentage"`
}

type ProcessInfo struct {
	PID         int32   `json:"pid"`
	Name        string  `json:"name"`
	CPUUsage    float64 `json:"cpuUsage"`
	MemoryUsage string  `json:"memoryUsage"`
}

// Snapshot is the unified real-time view: the latest stored row of each kind.
type Snapshot struct {
	CPU     CPUInfo     `json:"cpu"`
	Memory  MemoryInfo  `json:"memory"`
	Battery BatteryInfo `json:"battery"`
	Network NetworkInfo `json:"network"`
}

// MetricPoint is one chart sample for CPU or memory usage.
type MetricPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// TrafficPoint is one chart sample for network throughput.
type TrafficPoint struct {
	Time     string  `json:"time"`
	Download float64 `json:"download"`
	Upload   float64 `json:"upload"`
}

// HistoricalData is the chart payload: series read oldest to newest.
type HistoricalData struct {
	CPU     []MetricPoint  `json:"cpu"`
	Memory  []MetricPoint  `json:"memory"`
	Network []TrafficPoint `json:"network"`
}

// MetricsPayload is what an agent POSTs to /api/metrics. CPU and memory are
// required; battery and network are sent only when the host exposes them.
// Scalar fields are pointers so "absent" and a legitimate zero (0% usage,
// a VM reporting 0 cores) stay distinguishable during validation.
type MetricsPayload struct {
	ProfileID *int64         `json:"profileId,omitempty"`
	CPU       *CPUPayload    `json:"cpu"`
	Memory    *MemoryPayload `json:"memory"`
	Battery   *BatteryInfo   `json:"battery,omitempty"`
	Network   *NetworkInfo   `json:"network,omitempty"`
}

type CPUPayload struct {
	Usage   *float64 `json:"usage"`
	Cores   *int     `json:"cores"`
	Threads *int     `json:"threads"`
	Speed   *string  `json:"speed"`
	Model   string   `json:"model,omitempty"`
}

type MemoryPayload struct {
	UsedPercentage *float64 `json:"usedPercentage"`
	Used           *string  `json:"used"`
	Total          *string  `json:"total"`
}

type IngestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type InitializeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProfileID int64  `json:"profileId,omitempty"`
}
