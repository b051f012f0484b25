package distro

import "strings"

type rule struct {
	variant  Variant
	ids      []string
	foldCase bool
}

// Order matters: the Arch family aliases win over any exact match below.
var rules = []rule{
	{variant: Arch, ids: []string{"arch", "arcolinux"}, foldCase: true},
	{variant: Ubuntu, ids: []string{"ubuntu"}},
	{variant: Manjaro, ids: []string{"manjaro"}},
}

// Resolve maps a distribution identifier to its banner variant.
// Identifiers without a banner resolve to Unsupported.
func Resolve(id string) Variant {
	for _, r := range rules {
		if r.matches(id) {
			return r.variant
		}
	}
	return Unsupported
}

func (r rule) matches(id string) bool {
	for _, candidate := range r.ids {
		if r.foldCase && strings.EqualFold(candidate, id) {
			return true
		}
		if candidate == id {
			return true
		}
	}
	return false
}
