package hw

import (
	"context"
	"fmt"
	"os/user"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemProbe reads the local host through gopsutil, with ghw as a fallback.
type SystemProbe struct{}

// NewSystemProbe returns a Probe for the running machine.
func NewSystemProbe() *SystemProbe {
	return &SystemProbe{}
}

// Host returns hostname, kernel version and uptime.
func (p *SystemProbe) Host(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, fmt.Errorf("failed to get host info: %w", err)
	}

	return HostInfo{
		Hostname: info.Hostname,
		Kernel:   info.KernelVersion,
		Uptime:   info.Uptime,
	}, nil
}

// CPU returns the brand of the first processor and the physical core count.
func (p *SystemProbe) CPU(ctx context.Context) (CPUInfo, error) {
	var info CPUInfo

	stats, err := cpu.InfoWithContext(ctx)
	if err == nil && len(stats) > 0 {
		info.Brand = stats[0].ModelName
	}

	cores, err := cpu.CountsWithContext(ctx, false)
	if err == nil {
		info.Cores = cores
	}

	if info.Brand == "" || info.Cores < 1 {
		hwInfo, hwErr := hardwareCPU()
		if hwErr != nil && info.Brand == "" && info.Cores < 1 {
			return CPUInfo{}, fmt.Errorf("failed to get CPU info: %w", hwErr)
		}
		if info.Brand == "" {
			info.Brand = hwInfo.Brand
		}
		if info.Cores < 1 {
			info.Cores = hwInfo.Cores
		}
	}

	return info, nil
}

// Memory returns used and total physical memory.
func (p *SystemProbe) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil && vm.Total > 0 {
		return MemoryInfo{Used: vm.Used, Total: vm.Total}, nil
	}

	total, hwErr := hardwareMemory()
	if hwErr != nil {
		if err == nil {
			err = hwErr
		}
		return MemoryInfo{}, fmt.Errorf("failed to get memory info: %w", err)
	}

	return MemoryInfo{Total: total}, nil
}

// Volumes returns every mounted physical filesystem.
// Mountpoints whose usage cannot be read are skipped.
func (p *SystemProbe) Volumes(ctx context.Context) ([]Volume, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	var volumes []Volume
	for _, part := range partitions {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		volumes = append(volumes, Volume{
			Mountpoint: part.Mountpoint,
			Total:      usage.Total,
			Available:  usage.Free,
		})
	}

	return volumes, nil
}

// Username returns the login name of the invoking user.
func (p *SystemProbe) Username(ctx context.Context) (string, error) {
	current, err := user.Current()
	if err == nil && current.Username != "" {
		return current.Username, nil
	}

	sessions, sessErr := host.UsersWithContext(ctx)
	if sessErr == nil && len(sessions) > 0 && sessions[0].User != "" {
		return sessions[0].User, nil
	}

	if err == nil {
		err = sessErr
	}
	if err == nil {
		err = fmt.Errorf("no user session")
	}
	return "", fmt.Errorf("failed to look up username: %w", err)
}
