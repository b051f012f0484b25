//go:build alpm

package arch

import (
	"fmt"

	"github.com/Jguer/go-alpm/v2"
)

const (
	dbPath = "/var/lib/pacman"
	root   = "/"
)

// Arch reads the local pacman database.
type Arch struct {
	handle *alpm.Handle
}

// New opens the local pacman database read-only.
func New() (*Arch, error) {
	h, err := alpm.Initialize(root, dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize alpm: %v", ErrUnavailable, err)
	}
	return &Arch{handle: h}, nil
}

// Close releases the alpm handle.
func (a *Arch) Close() {
	if a.handle != nil {
		a.handle.Release()
	}
}

// CountInstalled returns the number of installed packages.
func (a *Arch) CountInstalled() (int, error) {
	installed, err := getAllInstalledPackages(a.handle)
	if err != nil {
		return 0, err
	}
	return len(installed), nil
}
