package server

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"

	"syspulse/internal/shared"
)

// historyLabels is the fixed label set used for synthetic chart series.
var historyLabels = []string{"5m ago", "4m ago", "3m ago", "2m ago", "1m ago", "Now"}

const syntheticTotalMemory = 16 * humanize.GByte

func randomCPUUsage() float64     { return float64(rand.Intn(50) + 40) } // 40-90%
func randomMemoryUsage() float64  { return float64(rand.Intn(35) + 50) } // 50-85%
func randomBatteryLevel() float64 { return float64(rand.Intn(80) + 20) } // 20-100%
func randomDownload() float64     { return float64(rand.Intn(15) + 5) }  // 5-20 Mbps
func randomUpload() float64       { return float64(rand.Intn(5) + 1) }   // 1-6 Mbps

// SyntheticSnapshot produces a plausible unified snapshot for a host that has
// never reported real data.
func SyntheticSnapshot() shared.Snapshot {
	memUsage := randomMemoryUsage()
	used := uint64(memUsage / 100 * syntheticTotalMemory)

	batteryStatus := "Discharging"
	if rand.Float64() > 0.3 {
		batteryStatus = "Charging"
	}
	netStatus := "Online"
	if rand.Float64() <= 0.05 {
		netStatus = "Offline"
	}

	return shared.Snapshot{
		CPU: shared.CPUInfo{
			Usage:   randomCPUUsage(),
			Cores:   4,
			Threads: 8,
			Speed:   "3.6 GHz",
		},
		Memory: shared.MemoryInfo{
			UsedPercentage: memUsage,
			Used:           humanize.Bytes(used),
			Total:          humanize.Bytes(syntheticTotalMemory),
		},
		Battery: shared.BatteryInfo{
			Level:         randomBatteryLevel(),
			Status:        batteryStatus,
			TimeRemaining: fmt.Sprintf("%d:%02d remaining", rand.Intn(5), rand.Intn(60)),
		},
		Network: shared.NetworkInfo{
			Status:   netStatus,
			Download: fmt.Sprintf("%.1f Mbps", randomDownload()),
			Upload:   fmt.Sprintf("%.1f Mbps", randomUpload()),
			IP:       fmt.Sprintf("192.168.1.%d", rand.Intn(254)+1),
		},
	}
}

// SyntheticHistory produces independent random series over the fixed relative
// label set, one point per label.
func SyntheticHistory() shared.HistoricalData {
	h := shared.HistoricalData{
		CPU:     make([]shared.MetricPoint, 0, len(historyLabels)),
		Memory:  make([]shared.MetricPoint, 0, len(historyLabels)),
		Network: make([]shared.TrafficPoint, 0, len(historyLabels)),
	}
	for _, label := range historyLabels {
		h.CPU = append(h.CPU, shared.MetricPoint{Time: label, Value: randomCPUUsage()})
		h.Memory = append(h.Memory, shared.MetricPoint{Time: label, Value: randomMemoryUsage()})
		h.Network = append(h.Network, shared.TrafficPoint{
			Time:     label,
			Download: randomDownload(),
			Upload:   randomUpload(),
		})
	}
	return h
}

// syntheticProcessNames mirrors the demo process table shown before any agent
// reports a real process list.
var syntheticProcessNames = []struct {
	pid  int32
	name string
}{
	{1001, "Browser"},
	{1659, "Media Player"},
	{1887, "User Interface"},
	{1980, "Background Tasks"},
	{1982, "System UI"},
	{1983, "Window Manager"},
	{1899, "Security Service"},
	{1988, "File System"},
	{1985, "Network Service"},
	{1984, "Audio Service"},
}

// SyntheticProcesses generates a mock process list with jittered usage values.
func SyntheticProcesses() []shared.ProcessInfo {
	out := make([]shared.ProcessInfo, 0, len(syntheticProcessNames))
	for i, p := range syntheticProcessNames {
		cpu := rand.Float64() * 15 / float64(i+1)
		mem := uint64(rand.Intn(1800)+64) * humanize.MByte
		out = append(out, shared.ProcessInfo{
			PID:         p.pid,
			Name:        p.name,
			CPUUsage:    float64(int(cpu*10)) / 10,
			MemoryUsage: humanize.Bytes(mem),
		})
	}
	return out
}
