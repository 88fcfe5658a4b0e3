package model

// Basket groups mutually exclusive elective courses that run in parallel at
// a shared time, each in its own room. Members keep declaration order; slot
// contention between baskets is resolved in that order.
type Basket struct {
	ID      string
	Members []string
	Slots   []SlotRef

	// MemberSlots holds each member's share of the basket's slots. A member
	// with a lighter load requirement stops attending after its quota.
	MemberSlots map[string][]SlotRef
}
