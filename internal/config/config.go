package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hiveden/hivefetch/internal/distro"
	"github.com/hiveden/hivefetch/internal/docker"
	"github.com/hiveden/hivefetch/internal/report"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys, shared by flags, environment and config file.
const (
	KeyFormat        = "format"
	KeyColor         = "color"
	KeyFields        = "fields"
	KeyVerbose       = "verbose"
	KeyOSRelease     = "os_release"
	KeyDockerTimeout = "docker_timeout"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// EnvPrefix prefixes environment overrides, e.g. HIVEFETCH_FORMAT.
const EnvPrefix = "HIVEFETCH"

var ErrUnknownFormat = errors.New("unknown output format")

// Settings is the resolved configuration of one run.
type Settings struct {
	Format        string
	Color         report.ColorMode
	Fields        []report.Field
	Verbose       bool
	OSRelease     []string
	DockerTimeout time.Duration
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyColor, report.ColorAuto.String())
	v.SetDefault(KeyFields, fieldNames(report.DefaultFields))
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyOSRelease, distro.DefaultPaths)
	v.SetDefault(KeyDockerTimeout, docker.DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadFile merges a YAML config file into v. It is never written back.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// FromViper validates the values in v.
func FromViper(v *viper.Viper) (Settings, error) {
	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat)))
	if format != FormatText && format != FormatYAML {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	names, err := list(v.Get(KeyFields))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", KeyFields, err)
	}
	fields, err := report.ParseFields(names)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", KeyFields, err)
	}

	paths, err := list(v.Get(KeyOSRelease))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", KeyOSRelease, err)
	}

	colorMode, err := report.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", KeyColor, err)
	}

	timeout, err := cast.ToDurationE(v.Get(KeyDockerTimeout))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", KeyDockerTimeout, err)
	}

	return Settings{
		Format:        format,
		Color:         colorMode,
		Fields:        fields,
		Verbose:       v.GetBool(KeyVerbose),
		OSRelease:     paths,
		DockerTimeout: timeout,
	}, nil
}

// list accepts a YAML sequence, a string slice or a comma separated string.
func list(raw any) ([]string, error) {
	items, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, nil
}

func fieldNames(fields []report.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return names
}
