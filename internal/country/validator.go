// Package country decides which team names are acceptable for a match.
package country

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Validator holds a fixed set of recognized country names.
// The set never changes after construction, so a Validator is safe for
// concurrent use.
type Validator struct {
	names map[string]struct{}
}

// New returns a Validator that recognizes exactly the given names.
// Surrounding whitespace is trimmed and blank names are ignored.
func New(names ...string) *Validator {
	cleaned := lo.Uniq(lo.Compact(lo.Map(names, func(n string, _ int) string {
		return strings.TrimSpace(n)
	})))

	set := make(map[string]struct{}, len(cleaned))
	for _, n := range cleaned {
		set[n] = struct{}{}
	}
	return &Validator{names: set}
}

// NewISO returns a Validator that recognizes the English display name of every
// ISO 3166-1 country, plus any extra names.
func NewISO(extra ...string) *Validator {
	return New(append(isoCountryNames(), extra...)...)
}

func (v *Validator) IsRecognized(name string) bool {
	_, ok := v.names[name]
	return ok
}

// ValidatePair checks both names against the recognized set, home first, and
// only then rejects a pair of identical names.
func (v *Validator) ValidatePair(a, b string) error {
	for _, name := range []string{a, b} {
		if !v.IsRecognized(name) {
			return &InvalidNameError{Name: name}
		}
	}
	if a == b {
		return ErrDuplicateCountry
	}
	return nil
}

// Names returns the recognized names in alphabetical order.
func (v *Validator) Names() []string {
	names := lo.Keys(v.names)
	slices.Sort(names)
	return names
}

func isoCountryNames() []string {
	namer := display.English.Regions()

	var names []string
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			r, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !r.IsCountry() {
				continue
			}
			// skip deprecated codes such as YU or SU
			if r.Canonicalize() != r {
				continue
			}
			if name := namer.Name(r); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
