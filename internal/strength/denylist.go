package strength

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// Denylist is an immutable set of known-weak passwords. Entries are stored
// lowercased and matched exactly against the lowercased candidate.
type Denylist struct {
	words map[string]struct{}
}

// NewDenylist builds a denylist from the given words. Blank entries are skipped.
func NewDenylist(words ...string) *Denylist {
	d := &Denylist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		d.words[lower(w)] = struct{}{}
	}
	return d
}

var defaultDenylist = sync.OnceValue(func() *Denylist {
	return NewDenylist(strings.Split(commonPasswordsRaw, "\n")...)
})

// DefaultDenylist returns the shared built-in list of common passwords.
func DefaultDenylist() *Denylist {
	return defaultDenylist()
}

// Contains reports whether password is on the list, ignoring case.
func (d *Denylist) Contains(password string) bool {
	_, ok := d.words[lower(password)]
	return ok
}

// Len returns the number of entries.
func (d *Denylist) Len() int {
	return len(d.words)
}
