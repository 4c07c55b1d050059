package arena

import "fmt"

// Handle is a generation-tagged reference to an arena slot.
//
// A handle does not own its node. It resolves only while the slot still
// holds the generation the handle was issued for.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the handle that references no node.
var Nil Handle

// IsNil reports whether h references no node.
func (h Handle) IsNil() bool {
	return h.gen == 0
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d@%d", h.index, h.gen)
}
