package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"syspulse/internal/shared"
)

// sampleWindow is how long rate-based collectors observe before reporting.
const sampleWindow = 500 * time.Millisecond

func CollectCPU() (*shared.CPUPayload, error) {
	percents, err := cpu.Percent(sampleWindow, false)
	if err != nil {
		return nil, err
	}
	usage := 0.0
	if len(percents) > 0 {
		usage = percents[0]
	}

	cores, err := cpu.Counts(false)
	if err != nil || cores <= 0 {
		cores = 1
	}
	threads, err := cpu.Counts(true)
	if err != nil || threads <= 0 {
		threads = cores
	}

	speed := "Unknown"
	model := ""
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
		if infos[0].Mhz > 0 {
			speed = fmt.Sprintf("%.2f MHz", infos[0].Mhz)
		}
	}

	return &shared.CPUPayload{
		Usage:   &usage,
		Cores:   &cores,
		Threads: &threads,
		Speed:   &speed,
		Model:   model,
	}, nil
}

func CollectMemory() (*shared.MemoryPayload, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	usedPct := vm.UsedPercent
	used := humanize.Bytes(vm.Used)
	total := humanize.Bytes(vm.Total)
	return &shared.MemoryPayload{
		UsedPercentage: &usedPct,
		Used:           &used,
		Total:          &total,
	}, nil
}

// CollectBattery reads sysfs and returns nil on hosts without a battery;
// the payload's battery section is optional.
func CollectBattery() *shared.BatteryInfo {
	entries, err := os.ReadDir("/sys/class/power_supply")
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "BAT") {
			continue
		}
		base := filepath.Join("/sys/class/power_supply", e.Name())

		capB, err := os.ReadFile(filepath.Join(base, "capacity"))
		if err != nil {
			continue
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(string(capB)), 64)
		if err != nil {
			continue
		}

		status := "Discharging"
		if stB, err := os.ReadFile(filepath.Join(base, "status")); err == nil {
			if s := strings.TrimSpace(string(stB)); s == "Charging" || s == "Full" {
				status = "Charging"
			}
		}

		return &shared.BatteryInfo{Level: level, Status: status}
	}
	return nil
}

// CollectNetwork samples IO counters over the sample window and reports
// human-readable throughput strings ("1.2 MB/s") the server parses for
// charting.
func CollectNetwork() (*shared.NetworkInfo, error) {
	before, err := gopsnet.IOCounters(false)
	if err != nil || len(before) == 0 {
		return nil, fmt.Errorf("io counters unavailable: %w", err)
	}
	time.Sleep(sampleWindow)
	after, err := gopsnet.IOCounters(false)
	if err != nil || len(after) == 0 {
		return nil, fmt.Errorf("io counters unavailable: %w", err)
	}

	elapsed := sampleWindow.Seconds()
	download := float64(after[0].BytesRecv-before[0].BytesRecv) / elapsed
	upload := float64(after[0].BytesSent-before[0].BytesSent) / elapsed

	info := &shared.NetworkInfo{
		Status:   "Online",
		Download: rateString(download),
		Upload:   rateString(upload),
		IP:       "127.0.0.1",
	}

	ifaces, err := gopsnet.Interfaces()
	if err != nil {
		return info, nil
	}
	for _, iface := range ifaces {
		if isLoopback(iface) || len(iface.Addrs) == 0 {
			continue
		}
		addr := strings.Split(iface.Addrs[0].Addr, "/")[0]
		info.Interfaces = append(info.Interfaces, shared.NetworkInterface{
			Name:       iface.Name,
			IPAddress:  addr,
			MACAddress: iface.HardwareAddr,
		})
		if info.IP == "127.0.0.1" && addr != "" {
			info.IP = addr
		}
	}
	return info, nil
}

func isLoopback(iface gopsnet.InterfaceStat) bool {
	for _, f := range iface.Flags {
		if f == "loopback" {
			return true
		}
	}
	return false
}

// rateString formats bytes-per-second with a leading numeric token so the
// server-side parser can recover the magnitude.
func rateString(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	return humanize.Bytes(uint64(bytesPerSec)) + "/s"
}
