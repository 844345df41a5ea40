package selection

import (
	"errors"
	"slices"
)

var ErrNoSelection = errors.New("no documents selected")

// Selection is the set of source documents a retrieval is limited to.
//
// The zero value (None) means no filter was requested. An explicit selection
// may be empty, which is a distinct state: it fails Validate and must never
// be collapsed into "no filter".
type Selection struct {
	explicit bool

	ids []string
}

func None() Selection {
	return Selection{}
}

func Of(ids ...string) Selection {
	return Selection{
		explicit: true,

		ids: slices.Clone(ids),
	}
}

func (s Selection) Explicit() bool {
	return s.explicit
}

func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

func (s Selection) Len() int {
	return len(s.ids)
}

// Contains compares byte-exact. No case folding, no path normalization.
func (s Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Restricts reports whether retrieval results must be filtered.
func (s Selection) Restricts() bool {
	return len(s.ids) > 0
}

// Validate is the selection gate. It must run before a retrieval request is
// issued and rejects both an absent and an explicit empty selection.
func (s Selection) Validate() error {
	if len(s.ids) == 0 {
		return ErrNoSelection
	}

	return nil
}
