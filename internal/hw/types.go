package hw

import "context"

// Unknown replaces text fields the probe could not provide.
const Unknown = "Unknown"

// Snapshot is a point-in-time capture of host metrics.
type Snapshot struct {
	Hostname       string `yaml:"hostname"`
	Username       string `yaml:"username"`
	Uptime         uint64 `yaml:"uptime_seconds"`
	Kernel         string `yaml:"kernel"`
	CPU            string `yaml:"cpu"`
	Cores          int    `yaml:"cores"`
	MemoryUsedKiB  uint64 `yaml:"memory_used_kib"`
	MemoryTotalKiB uint64 `yaml:"memory_total_kib"`
	DiskUsed       uint64 `yaml:"disk_used_bytes"`
	DiskTotal      uint64 `yaml:"disk_total_bytes"`
	// Packages and Containers are -1 when not collected.
	Packages          int         `yaml:"packages"`
	Containers        int         `yaml:"containers"`
	RunningContainers []Container `yaml:"running_containers,omitempty"`
}

// Container is a running container.
type Container struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Image  string `yaml:"image"`
	Uptime string `yaml:"uptime"`
}

// HostInfo holds the host-level fields of a probe.
type HostInfo struct {
	Hostname string
	Kernel   string
	Uptime   uint64
}

// CPUInfo holds the processor brand and physical core count.
type CPUInfo struct {
	Brand string
	Cores int
}

// MemoryInfo is in bytes.
type MemoryInfo struct {
	Used  uint64
	Total uint64
}

// Volume is a mounted filesystem, sizes in bytes.
type Volume struct {
	Mountpoint string
	Total      uint64
	Available  uint64
}

// Probe is the OS introspection collaborator.
type Probe interface {
	Host(ctx context.Context) (HostInfo, error)
	CPU(ctx context.Context) (CPUInfo, error)
	Memory(ctx context.Context) (MemoryInfo, error)
	Volumes(ctx context.Context) ([]Volume, error)
	Username(ctx context.Context) (string, error)
}

// PackageCounter counts packages installed by the system package manager.
type PackageCounter interface {
	CountInstalled() (int, error)
}

// ContainerLister lists running containers.
type ContainerLister interface {
	ListRunning(ctx context.Context) ([]Container, error)
}
