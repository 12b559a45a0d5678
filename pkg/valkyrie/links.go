package valkyrie

// Controllable link identifiers. These are the ids the controller side
// publishes in its controlled-link array; each id selects one sub-part of
// the whole-body trajectory message.
const (
	LinkPelvis        = 0
	LinkTorso         = 1
	LinkRightCOPFrame = 2
	LinkLeftCOPFrame  = 3
	LinkRightPalm     = 4
	LinkLeftPalm      = 5
	LinkHead          = 6
)

// LinkSet is the set of links a command is allowed to drive. Membership
// is the only operation assembly needs.
type LinkSet map[int]struct{}

// NewLinkSet builds a LinkSet from a list of link ids.
func NewLinkSet(ids ...int) LinkSet {
	s := make(LinkSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether the link id is in the set.
func (s LinkSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of links in the set.
func (s LinkSet) Len() int { return len(s) }

// DefaultControlledLinks returns the full seven-link set assumed when no
// controller supplies link ids (one-shot mode).
func DefaultControlledLinks() LinkSet {
	return NewLinkSet(
		LinkPelvis,
		LinkTorso,
		LinkRightCOPFrame,
		LinkLeftCOPFrame,
		LinkRightPalm,
		LinkLeftPalm,
		LinkHead,
	)
}
