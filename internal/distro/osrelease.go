package distro

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPaths are the os-release locations in lookup order.
var DefaultPaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// ErrMissingID is returned for a descriptor that has no ID key.
var ErrMissingID = errors.New("os-release has no ID")

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads an os-release descriptor. A leading UTF-8 byte order mark is ignored.
// Unescaped $VAR references in values are expanded by godotenv.
func Parse(r io.Reader) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read os-release: %w", err)
	}

	fields, err := godotenv.Parse(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	if err != nil {
		return Info{}, fmt.Errorf("failed to parse os-release: %w", err)
	}

	id := strings.ToLower(strings.TrimSpace(fields["ID"]))
	if id == "" {
		return Info{}, ErrMissingID
	}

	name := strings.TrimSpace(fields["NAME"])
	if name == "" {
		name = strings.TrimSpace(fields["PRETTY_NAME"])
	}
	if name == "" {
		name = id
	}

	return Info{ID: id, Name: name}, nil
}

// Load returns the first descriptor in paths that parses, or Unknown.
// With no paths it uses DefaultPaths. Failures are logged to logger, which may be nil.
func Load(logger *log.Logger, paths ...string) Info {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	for _, path := range paths {
		info, err := loadFile(path)
		if err == nil {
			return info
		}
		if logger != nil {
			logger.Printf("distro: %v", err)
		}
	}

	return Unknown
}

func loadFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := Parse(f)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}
