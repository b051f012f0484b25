// Package arch counts packages installed through pacman.
//
// The libalpm binding needs cgo and the libalpm headers, so it is only built
// with the alpm tag. Without it New reports ErrUnavailable.
package arch

import "errors"

// ErrUnavailable means the pacman database cannot be used on this build or host.
var ErrUnavailable = errors.New("pacman database unavailable")

