package hw

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// hardwareCPU reads the processor topology through ghw.
func hardwareCPU() (CPUInfo, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return CPUInfo{}, fmt.Errorf("failed to get CPU info: %w", err)
	}

	info := CPUInfo{Cores: int(cpu.TotalCores)}
	for _, proc := range cpu.Processors {
		if proc.Model != "" {
			info.Brand = proc.Model
			break
		}
	}
	return info, nil
}

// hardwareMemory returns the usable physical memory in bytes.
func hardwareMemory() (uint64, error) {
	memory, err := ghw.Memory()
	if err != nil {
		return 0, fmt.Errorf("failed to get memory info: %w", err)
	}
	if memory.TotalUsableBytes <= 0 {
		return 0, fmt.Errorf("memory size not reported")
	}
	return uint64(memory.TotalUsableBytes), nil
}
