package hw

import (
	"context"
	"io"
	"log"
	"strings"
)

// Collector builds a Snapshot from a Probe, substituting defaults for
// anything the probe cannot provide.
type Collector struct {
	Probe      Probe
	Packages   PackageCounter
	Containers ContainerLister
	Logger     *log.Logger
}

// NewCollector returns a Collector without optional counters.
func NewCollector(probe Probe, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Collector{Probe: probe, Logger: logger}
}

// Collect queries every probe accessor once. It never fails.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	s := Snapshot{
		Hostname:   Unknown,
		Username:   Unknown,
		Kernel:     Unknown,
		CPU:        Unknown,
		Cores:      1,
		Packages:   -1,
		Containers: -1,
	}

	if h, err := c.Probe.Host(ctx); err != nil {
		c.logf("host: %v", err)
	} else {
		s.Hostname = orUnknown(h.Hostname)
		s.Kernel = orUnknown(h.Kernel)
		s.Uptime = h.Uptime
	}

	if cpu, err := c.Probe.CPU(ctx); err != nil {
		c.logf("cpu: %v", err)
	} else {
		s.CPU = orUnknown(cpu.Brand)
		if cpu.Cores >= 1 {
			s.Cores = cpu.Cores
		}
	}

	if m, err := c.Probe.Memory(ctx); err != nil {
		c.logf("memory: %v", err)
	} else {
		s.MemoryUsedKiB = m.Used / 1024
		s.MemoryTotalKiB = m.Total / 1024
	}

	if vols, err := c.Probe.Volumes(ctx); err != nil {
		c.logf("disk: %v", err)
	} else {
		s.DiskTotal, s.DiskUsed = SumVolumes(vols)
	}

	if name, err := c.Probe.Username(ctx); err != nil {
		c.logf("user: %v", err)
	} else {
		s.Username = orUnknown(name)
	}

	if c.Packages != nil {
		if n, err := c.Packages.CountInstalled(); err != nil {
			c.logf("packages: %v", err)
		} else {
			s.Packages = n
		}
	}

	if c.Containers != nil {
		if list, err := c.Containers.ListRunning(ctx); err != nil {
			c.logf("containers: %v", err)
		} else {
			s.Containers = len(list)
			s.RunningContainers = list
		}
	}

	return s
}

func (c *Collector) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}

// SumVolumes returns total and used bytes across volumes.
// A mountpoint listed twice is counted once.
func SumVolumes(volumes []Volume) (total, used uint64) {
	seen := make(map[string]bool, len(volumes))
	for _, v := range volumes {
		if v.Mountpoint != "" {
			if seen[v.Mountpoint] {
				continue
			}
			seen[v.Mountpoint] = true
		}
		total += v.Total
		if v.Total > v.Available {
			used += v.Total - v.Available
		}
	}
	return total, used
}

// SplitUptime splits seconds into whole hours and remaining minutes.
func SplitUptime(seconds uint64) (hours, minutes uint64) {
	return seconds / 3600, (seconds % 3600) / 60
}

// KiBToMiB converts kibibytes to mebibytes, truncating.
func KiBToMiB(kib uint64) uint64 {
	return kib / 1024
}

// BytesToGiB converts bytes to gibibytes, truncating.
func BytesToGiB(b uint64) uint64 {
	return b / 1024 / 1024 / 1024
}
