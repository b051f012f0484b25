//go:build alpm

package arch

import (
	"fmt"

	"github.com/Jguer/go-alpm/v2"
)

func getAllInstalledPackages(handle *alpm.Handle) ([]alpm.IPackage, error) {
	localDB, err := handle.LocalDB()
	if err != nil {
		return nil, fmt.Errorf("could not get local db: %w", err)
	}
	return localDB.PkgCache().Slice(), nil
}
