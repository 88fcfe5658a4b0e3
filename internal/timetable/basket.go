package timetable

import (
	"slices"

	"github.com/campustt/timetable/pkg/model"
)

// BasketAllocation holds the outcome of elective basket allocation: each
// basket's shared slots and each member course's own share of them.
type BasketAllocation struct {
	Baskets []*model.Basket
	Courses map[string][]model.SlotRef

	byID map[string]*model.Basket
}

// Basket looks up a basket by identifier.
func (a *BasketAllocation) Basket(id string) *model.Basket {
	return a.byID[id]
}

// MembersAt returns the member courses attending the basket at the given
// slot, in declaration order.
func (a *BasketAllocation) MembersAt(id string, ref model.SlotRef) []string {
	b := a.byID[id]
	if b == nil {
		return nil
	}
	var members []string
	for _, m := range b.Members {
		if slices.Contains(a.Courses[m], ref) {
			members = append(members, m)
		}
	}
	return members
}

// AllocateBaskets groups the elective subset by basket identifier and
// assigns each basket a common set of weekly slots. A basket offers the
// maximum demand across its members; lighter members receive only their own
// quota of the shared slots. Baskets compete for slots in declaration order,
// so a slot consumed by an earlier basket is skipped by later ones. An
// elective without a basket identifier forms a singleton basket keyed by its
// course code.
func AllocateBaskets(electives []*model.Course, grid *model.GridConfig) *BasketAllocation {
	alloc := &BasketAllocation{
		Courses: make(map[string][]model.SlotRef),
		byID:    make(map[string]*model.Basket),
	}
	demand := make(map[string]int)
	for _, c := range electives {
		id := c.Basket
		if id == "" {
			id = c.Code
		}
		b := alloc.byID[id]
		if b == nil {
			b = &model.Basket{ID: id, MemberSlots: make(map[string][]model.SlotRef)}
			alloc.byID[id] = b
			alloc.Baskets = append(alloc.Baskets, b)
		}
		b.Members = append(b.Members, c.Code)
		demand[c.Code] = c.Load.Lectures + c.Load.Tutorials + c.Load.Labs
	}

	taken := make(map[model.SlotRef]bool)
	for _, b := range alloc.Baskets {
		need := 0
		for _, m := range b.Members {
			if demand[m] > need {
				need = demand[m]
			}
		}
		b.Slots = pickBasketSlots(grid, taken, need)
		for _, ref := range b.Slots {
			taken[ref] = true
		}
		for _, m := range b.Members {
			quota := demand[m]
			if quota > len(b.Slots) {
				quota = len(b.Slots)
			}
			share := append([]model.SlotRef(nil), b.Slots[:quota]...)
			b.MemberSlots[m] = share
			alloc.Courses[m] = share
		}
	}
	return alloc
}

// pickBasketSlots spreads the basket's occurrences over distinct days first
// and falls back to second slots on a day only when the week is exhausted.
func pickBasketSlots(grid *model.GridConfig, taken map[model.SlotRef]bool, need int) []model.SlotRef {
	var slots []model.SlotRef
	local := make(map[model.SlotRef]bool)
	for round := 0; len(slots) < need && round < len(grid.Slots); round++ {
		for day := range grid.Days {
			if len(slots) >= need {
				break
			}
			// One pick per day per round keeps occurrences spread out.
			for _, ts := range grid.Slots {
				if ts.Kind != model.LectureSlot {
					continue
				}
				ref := model.SlotRef{Day: day, Slot: ts.Index}
				if taken[ref] || local[ref] {
					continue
				}
				slots = append(slots, ref)
				local[ref] = true
				break
			}
		}
	}
	return slots
}
