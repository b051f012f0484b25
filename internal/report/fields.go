package report

import (
	"errors"
	"fmt"
	"strings"
)

// Field is one line of the report.
type Field int

const (
	FieldTitle Field = iota
	FieldDivider
	FieldUptime
	FieldKernel
	FieldDistro
	FieldCPU
	FieldMemory
	FieldDisk
	FieldPackages
	FieldContainers
)

var fieldNames = map[Field]string{
	FieldTitle:      "title",
	FieldDivider:    "divider",
	FieldUptime:     "uptime",
	FieldKernel:     "kernel",
	FieldDistro:     "distro",
	FieldCPU:        "cpu",
	FieldMemory:     "memory",
	FieldDisk:       "disk",
	FieldPackages:   "packages",
	FieldContainers: "containers",
}

var fieldLabels = map[Field]string{
	FieldUptime:     "Uptime",
	FieldKernel:     "Kernel",
	FieldDistro:     "Distro",
	FieldCPU:        "CPU",
	FieldMemory:     "Memory",
	FieldDisk:       "Disk",
	FieldPackages:   "Packages",
	FieldContainers: "Containers",
}

// DefaultFields is the report layout when none is configured.
var DefaultFields = []Field{
	FieldTitle,
	FieldDivider,
	FieldUptime,
	FieldKernel,
	FieldDistro,
	FieldCPU,
	FieldMemory,
	FieldDisk,
}

// ErrUnknownField is returned by ParseField for names with no field.
var ErrUnknownField = errors.New("unknown field")

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField looks a field up by its configuration name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseFields parses an ordered list of field names.
func ParseFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Has reports whether f appears in fields.
func Has(fields []Field, f Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}
