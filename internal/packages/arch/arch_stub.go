//go:build !alpm

package arch

// Arch is a placeholder on builds without libalpm.
type Arch struct{}

// New always fails without the alpm build tag.
func New() (*Arch, error) {
	return nil, ErrUnavailable
}

// Close is a no-op.
func (a *Arch) Close() {}

// CountInstalled always fails without the alpm build tag.
func (a *Arch) CountInstalled() (int, error) {
	return 0, ErrUnavailable
}
