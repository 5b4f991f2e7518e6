package server

import (
	"testing"
	"time"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.3 Mbps", 12.3, false},
		{"4 Mbps", 4, false},
		{"1.5 MB/s", 1.5, false},
		{"0 B/s", 0, false},
		{"", 0, true},
		{"   ", 0, true},
		{"fast", 0, true},
		{"Mbps 12.3", 0, true},
	}
	for _, c := range cases {
		got, err := parseRate(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseRate(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRate(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseRate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBuildHistoryReversesRows(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newest := base.UnixMilli()
	oldest := base.Add(-2 * time.Minute).UnixMilli()

	cpu := []CPUSample{
		{Usage: 90, Timestamp: newest},
		{Usage: 80, Timestamp: base.Add(-time.Minute).UnixMilli()},
		{Usage: 70, Timestamp: oldest},
	}
	mem := []MemorySample{
		{UsedPercentage: 66, Timestamp: newest},
		{UsedPercentage: 55, Timestamp: oldest},
	}
	net := []NetworkSample{
		{Download: "20.0 Mbps", Upload: "6.0 Mbps", Timestamp: newest},
		{Download: "5.5 Mbps", Upload: "1.5 Mbps", Timestamp: oldest},
	}

	h, err := buildHistory(cpu, mem, net)
	if err != nil {
		t.Fatalf("buildHistory failed: %v", err)
	}

	if h.CPU[0].Value != 70 || h.CPU[2].Value != 90 {
		t.Errorf("cpu series not reversed: %+v", h.CPU)
	}
	if h.Memory[0].Value != 55 {
		t.Errorf("memory series not reversed: %+v", h.Memory)
	}
	if h.Network[0].Download != 5.5 || h.Network[1].Upload != 6.0 {
		t.Errorf("network series not reversed or parsed: %+v", h.Network)
	}
	if h.CPU[0].Time == "" {
		t.Error("expected non-empty time label")
	}
}

func TestBuildHistoryMalformedRate(t *testing.T) {
	net := []NetworkSample{{Download: "??", Upload: "1 Mbps", Timestamp: time.Now().UnixMilli()}}
	if _, err := buildHistory(nil, nil, net); err == nil {
		t.Fatal("expected error for malformed download value")
	}
}

func TestTimeLabelFormat(t *testing.T) {
	ts := time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local).UnixMilli()
	if got := timeLabel(ts); got != "3:04:05 PM" {
		t.Errorf("timeLabel = %q, want %q", got, "3:04:05 PM")
	}
}
