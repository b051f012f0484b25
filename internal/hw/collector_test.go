package hw

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type mockProbe struct {
	hostErr    bool
	cpuErr     bool
	memoryErr  bool
	volumesErr bool
	userErr    bool
	host       HostInfo
	cpu        CPUInfo
	memory     MemoryInfo
	volumes    []Volume
	username   string
	calls      map[string]int
}

func (m *mockProbe) called(name string) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *mockProbe) Host(ctx context.Context) (HostInfo, error) {
	m.called("host")
	if m.hostErr {
		return HostInfo{}, errors.New("failed to get host info")
	}
	return m.host, nil
}

func (m *mockProbe) CPU(ctx context.Context) (CPUInfo, error) {
	m.called("cpu")
	if m.cpuErr {
		return CPUInfo{}, errors.New("failed to get CPU info")
	}
	return m.cpu, nil
}

func (m *mockProbe) Memory(ctx context.Context) (MemoryInfo, error) {
	m.called("memory")
	if m.memoryErr {
		return MemoryInfo{}, errors.New("failed to get memory info")
	}
	return m.memory, nil
}

func (m *mockProbe) Volumes(ctx context.Context) ([]Volume, error) {
	m.called("volumes")
	if m.volumesErr {
		return nil, errors.New("failed to list partitions")
	}
	return m.volumes, nil
}

func (m *mockProbe) Username(ctx context.Context) (string, error) {
	m.called("username")
	if m.userErr {
		return "", errors.New("failed to look up username")
	}
	return m.username, nil
}

type mockCounter struct {
	n   int
	err bool
}

func (m *mockCounter) CountInstalled() (int, error) {
	if m.err {
		return 0, errors.New("failed to open local db")
	}
	return m.n, nil
}

type mockLister struct {
	containers []Container
	err        bool
}

func (m *mockLister) ListRunning(ctx context.Context) ([]Container, error) {
	if m.err {
		return nil, errors.New("failed to list containers")
	}
	return m.containers, nil
}

func fullProbe() *mockProbe {
	return &mockProbe{
		host:     HostInfo{Hostname: "hive", Kernel: "6.9.1-arch1-1", Uptime: 11532},
		cpu:      CPUInfo{Brand: "AMD Ryzen 7 5800X 8-Core Processor", Cores: 8},
		memory:   MemoryInfo{Used: 4 << 30, Total: 16 << 30},
		volumes:  []Volume{{Mountpoint: "/", Total: 100, Available: 40}, {Mountpoint: "/home", Total: 200, Available: 150}},
		username: "bee",
	}
}

func TestCollect(t *testing.T) {
	probe := fullProbe()
	s := NewCollector(probe, nil).Collect(context.Background())

	if s.Hostname != "hive" || s.Kernel != "6.9.1-arch1-1" || s.Username != "bee" {
		t.Errorf("unexpected text fields %+v", s)
	}
	if s.Uptime != 11532 {
		t.Errorf("expected uptime 11532, got %d", s.Uptime)
	}
	if s.CPU != "AMD Ryzen 7 5800X 8-Core Processor" || s.Cores != 8 {
		t.Errorf("unexpected cpu fields %q %d", s.CPU, s.Cores)
	}
	if s.MemoryUsedKiB != 4<<20 || s.MemoryTotalKiB != 16<<20 {
		t.Errorf("unexpected memory %d/%d", s.MemoryUsedKiB, s.MemoryTotalKiB)
	}
	if s.DiskTotal != 300 || s.DiskUsed != 110 {
		t.Errorf("unexpected disk %d/%d", s.DiskUsed, s.DiskTotal)
	}
	if s.Packages != -1 || s.Containers != -1 {
		t.Errorf("expected optional counters to be -1, got %d/%d", s.Packages, s.Containers)
	}

	for _, name := range []string{"host", "cpu", "memory", "volumes", "username"} {
		if probe.calls[name] != 1 {
			t.Errorf("expected %s to be probed once, got %d", name, probe.calls[name])
		}
	}
}

func TestCollectDefaults(t *testing.T) {
	probe := &mockProbe{hostErr: true, cpuErr: true, memoryErr: true, volumesErr: true, userErr: true}
	s := NewCollector(probe, nil).Collect(context.Background())

	want := Snapshot{
		Hostname:   Unknown,
		Username:   Unknown,
		Kernel:     Unknown,
		CPU:        Unknown,
		Cores:      1,
		Packages:   -1,
		Containers: -1,
	}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Collect() = %+v, want %+v", s, want)
	}
}

func TestCollectEmptyValues(t *testing.T) {
	probe := &mockProbe{host: HostInfo{Hostname: "  ", Uptime: 60}, cpu: CPUInfo{Cores: 0}}
	s := NewCollector(probe, nil).Collect(context.Background())

	if s.Hostname != Unknown || s.Kernel != Unknown || s.CPU != Unknown || s.Username != Unknown {
		t.Errorf("expected Unknown placeholders, got %+v", s)
	}
	if s.Cores != 1 {
		t.Errorf("expected core count 1, got %d", s.Cores)
	}
}

func TestCollectCounters(t *testing.T) {
	c := NewCollector(fullProbe(), nil)
	c.Packages = &mockCounter{n: 812}
	c.Containers = &mockLister{containers: []Container{
		{ID: "1234567890ab", Name: "web", Image: "nginx", Uptime: "3 days"},
		{ID: "ba0987654321", Name: "db", Image: "postgres", Uptime: "5 hours"},
	}}

	s := c.Collect(context.Background())
	if s.Packages != 812 || s.Containers != 2 {
		t.Errorf("unexpected counters %d/%d", s.Packages, s.Containers)
	}
	if len(s.RunningContainers) != 2 || s.RunningContainers[1].Name != "db" || s.RunningContainers[0].Uptime != "3 days" {
		t.Errorf("unexpected running containers %+v", s.RunningContainers)
	}

	c.Packages = &mockCounter{err: true}
	c.Containers = &mockLister{err: true}
	s = c.Collect(context.Background())
	if s.Packages != -1 || s.Containers != -1 {
		t.Errorf("expected -1 on counter errors, got %d/%d", s.Packages, s.Containers)
	}
	if s.RunningContainers != nil {
		t.Errorf("expected no containers on error, got %+v", s.RunningContainers)
	}
}

func TestSumVolumes(t *testing.T) {
	tests := []struct {
		name        string
		volumes     []Volume
		total, used uint64
	}{
		{"none", nil, 0, 0},
		{"two volumes", []Volume{{Total: 100, Available: 40}, {Total: 200, Available: 150}}, 300, 110},
		{"available above total", []Volume{{Total: 10, Available: 12}}, 10, 0},
		{"duplicate mountpoint", []Volume{{Mountpoint: "/", Total: 100, Available: 40}, {Mountpoint: "/", Total: 100, Available: 40}}, 100, 60},
	}

	for _, tt := range tests {
		total, used := SumVolumes(tt.volumes)
		if total != tt.total || used != tt.used {
			t.Errorf("%s: SumVolumes() = %d/%d, want %d/%d", tt.name, total, used, tt.total, tt.used)
		}
	}
}

func TestSplitUptime(t *testing.T) {
	for _, secs := range []uint64{0, 59, 60, 3599, 3600, 3661, 11532, 86399, 86400, 1<<40 + 17} {
		h, m := SplitUptime(secs)
		lower := h*3600 + m*60
		upper := h*3600 + (m+1)*60
		if lower > secs || secs >= upper {
			t.Errorf("SplitUptime(%d) = %d, %d breaks bounds", secs, h, m)
		}
		if m >= 60 {
			t.Errorf("SplitUptime(%d) minutes = %d", secs, m)
		}
	}

	if h, m := SplitUptime(11532); h != 3 || m != 12 {
		t.Errorf("SplitUptime(11532) = %d, %d, want 3, 12", h, m)
	}
}

func TestUnitConversions(t *testing.T) {
	if got := KiBToMiB(16 << 20); got != 16<<10 {
		t.Errorf("KiBToMiB() = %d", got)
	}
	if got := BytesToGiB(3<<30 - 1); got != 2 {
		t.Errorf("BytesToGiB() = %d, want 2", got)
	}
}
