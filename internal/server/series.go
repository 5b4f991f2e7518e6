package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"syspulse/internal/shared"
)

func (c *CPUSample) Info() shared.CPUInfo {
	return shared.CPUInfo{
		Usage:   c.Usage,
		Cores:   c.Cores,
		Threads: c.Threads,
		Speed:   c.Speed,
		Model:   c.Model,
	}
}

func (m *MemorySample) Info() shared.MemoryInfo {
	return shared.MemoryInfo{
		UsedPercentage: m.UsedPercentage,
		Used:           m.Used,
		Total:          m.Total,
	}
}

func (b *BatterySample) Info() shared.BatteryInfo {
	return shared.BatteryInfo{
		Level:         b.Level,
		Status:        b.Status,
		TimeRemaining: b.TimeRemaining,
	}
}

func (n *NetworkSample) Info() shared.NetworkInfo {
	return shared.NetworkInfo{
		Status:     n.Status,
		Download:   n.Download,
		Upload:     n.Upload,
		IP:         n.IP,
		Interfaces: n.Interfaces,
	}
}

// timeLabel renders a sample timestamp as the clock string charts display.
func timeLabel(millis int64) string {
	return time.UnixMilli(millis).Format("3:04:05 PM")
}

// parseRate extracts the numeric magnitude from a stored throughput string
// such as "12.3 Mbps". The unit suffix is discarded for charting.
func parseRate(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty rate value")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", s, err)
	}
	return v, nil
}

// buildHistory reshapes newest-first rows into chronological chart series.
func buildHistory(cpu []CPUSample, mem []MemorySample, net []NetworkSample) (shared.HistoricalData, error) {
	h := shared.HistoricalData{
		CPU:     make([]shared.MetricPoint, 0, len(cpu)),
		Memory:  make([]shared.MetricPoint, 0, len(mem)),
		Network: make([]shared.TrafficPoint, 0, len(net)),
	}

	for i := len(cpu) - 1; i >= 0; i-- {
		h.CPU = append(h.CPU, shared.MetricPoint{
			Time:  timeLabel(cpu[i].Timestamp),
			Value: cpu[i].Usage,
		})
	}
	for i := len(mem) - 1; i >= 0; i-- {
		h.Memory = append(h.Memory, shared.MetricPoint{
			Time:  timeLabel(mem[i].Timestamp),
			Value: mem[i].UsedPercentage,
		})
	}
	for i := len(net) - 1; i >= 0; i-- {
		down, err := parseRate(net[i].Download)
		if err != nil {
			return shared.HistoricalData{}, err
		}
		up, err := parseRate(net[i].Upload)
		if err != nil {
			return shared.HistoricalData{}, err
		}
		h.Network = append(h.Network, shared.TrafficPoint{
			Time:     timeLabel(net[i].Timestamp),
			Download: down,
			Upload:   up,
		})
	}
	return h, nil
}
