package sysinfo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MemStats is one point-in-time read of physical memory, in kilobytes.
type MemStats struct {
	TotalKB uint64 `json:"total_kb"`
	UsedKB  uint64 `json:"used_kb"`
}

// Snapshot aggregates everything the ops surface reports.
type Snapshot struct {
	TS     int64    `json:"ts"`
	Mem    MemStats `json:"mem"`
	Load1  float64  `json:"load1"`
	Errors []string `json:"errors,omitempty"`
}

// Collector reads host metrics from procfs. Every call samples fresh;
// concurrent responses may legitimately report different values.
type Collector struct {
	meminfoPath string
	loadavgPath string
}

func NewCollector() *Collector {
	return &Collector{
		meminfoPath: "/proc/meminfo",
		loadavgPath: "/proc/loadavg",
	}
}

// Memory parses MemTotal and MemAvailable and reports used = total - available.
func (c *Collector) Memory() (MemStats, error) {
	f, err := os.Open(c.meminfoPath)
	if err != nil {
		return MemStats{}, fmt.Errorf("meminfo: %w", err)
	}
	defer f.Close()

	var totalKB, availKB uint64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "MemTotal:") {
			fmt.Sscanf(line, "MemTotal: %d kB", &totalKB)
		}
		if strings.HasPrefix(line, "MemAvailable:") {
			fmt.Sscanf(line, "MemAvailable: %d kB", &availKB)
		}
	}
	if err := sc.Err(); err != nil {
		return MemStats{}, fmt.Errorf("meminfo: %w", err)
	}
	if totalKB == 0 {
		return MemStats{}, errors.New("meminfo: MemTotal not found")
	}

	ms := MemStats{TotalKB: totalKB}
	if availKB > 0 && availKB <= totalKB {
		ms.UsedKB = totalKB - availKB
	}
	return ms, nil
}

func (c *Collector) load1() (float64, error) {
	b, err := os.ReadFile(c.loadavgPath)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(b))
	if len(fields) < 1 {
		return 0, errors.New("bad loadavg")
	}
	return strconv.ParseFloat(fields[0], 64)
}

// Snapshot gathers all metrics, accumulating per-metric failures as strings
// so one bad source does not blank the whole report. A done ctx short-circuits
// so callers' request timeouts keep their meaning.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		TS: time.Now().Unix(),
	}

	if err := ctx.Err(); err != nil {
		snap.Errors = append(snap.Errors, "canceled: "+err.Error())
		return snap
	}

	mem, err := c.Memory()
	if err != nil {
		snap.Errors = append(snap.Errors, "mem: "+err.Error())
	} else {
		snap.Mem = mem
	}

	load1, err := c.load1()
	if err != nil {
		snap.Errors = append(snap.Errors, "load: "+err.Error())
	} else {
		snap.Load1 = load1
	}

	return snap
}
