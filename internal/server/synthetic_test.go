package server

import "testing"

func TestSyntheticHistoryShape(t *testing.T) {
	h := SyntheticHistory()

	if len(h.CPU) != len(historyLabels) || len(h.Memory) != len(historyLabels) || len(h.Network) != len(historyLabels) {
		t.Fatalf("expected %d points per series, got %d/%d/%d",
			len(historyLabels), len(h.CPU), len(h.Memory), len(h.Network))
	}
	if h.CPU[0].Time != "5m ago" || h.CPU[len(h.CPU)-1].Time != "Now" {
		t.Errorf("unexpected label ordering: %q .. %q", h.CPU[0].Time, h.CPU[len(h.CPU)-1].Time)
	}

	for _, p := range h.CPU {
		if p.Value < 40 || p.Value >= 90 {
			t.Errorf("cpu value %v outside 40-90 range", p.Value)
		}
	}
	for _, p := range h.Memory {
		if p.Value < 50 || p.Value >= 85 {
			t.Errorf("memory value %v outside 50-85 range", p.Value)
		}
	}
	for _, p := range h.Network {
		if p.Download < 5 || p.Download >= 20 {
			t.Errorf("download %v outside 5-20 range", p.Download)
		}
		if p.Upload < 1 || p.Upload >= 6 {
			t.Errorf("upload %v outside 1-6 range", p.Upload)
		}
	}
}

func TestSyntheticSnapshotPlausible(t *testing.T) {
	s := SyntheticSnapshot()

	if s.CPU.Usage < 40 || s.CPU.Usage >= 90 {
		t.Errorf("cpu usage %v outside 40-90 range", s.CPU.Usage)
	}
	if s.CPU.Cores == 0 || s.CPU.Threads == 0 || s.CPU.Speed == "" {
		t.Errorf("incomplete cpu info: %+v", s.CPU)
	}
	if s.Memory.Used == "" || s.Memory.Total == "" {
		t.Errorf("incomplete memory info: %+v", s.Memory)
	}
	if s.Battery.Status != "Charging" && s.Battery.Status != "Discharging" {
		t.Errorf("unexpected battery status %q", s.Battery.Status)
	}
	if s.Network.Status != "Online" && s.Network.Status != "Offline" {
		t.Errorf("unexpected network status %q", s.Network.Status)
	}
	// The stored rate format must stay parseable for history charting.
	if _, err := parseRate(s.Network.Download); err != nil {
		t.Errorf("synthetic download %q not parseable: %v", s.Network.Download, err)
	}
}

func TestSyntheticProcesses(t *testing.T) {
	procs := SyntheticProcesses()
	if len(procs) == 0 {
		t.Fatal("expected a non-empty process list")
	}
	for _, p := range procs {
		if p.PID == 0 || p.Name == "" || p.MemoryUsage == "" {
			t.Errorf("incomplete process entry: %+v", p)
		}
	}
}
