package scheduler

import "github.com/rhyrak/form1-scheduler/pkg/model"

// ConflictTracker owns the reservation indexes described in §3: dense
// [day][slot][week_type] arrays for instructor and group occupancy, plus a
// group-building map for travel-gap checks. Grounded on §9's "dense
// fixed-size arrays... the outer grid is small (5*13*2 = 130 cells)" note;
// the week-type axis is 3 wide (both/odd/even) since model.WeekType leaves
// room for a future multi-week stage even though Stage 1 always reserves
// WeekBoth (§3).
//
// All queries and the single writer (Reserve) live in the same execution
// context (§5); reservation is monotone and append-only for the run.
type ConflictTracker struct {
	instructorSlot [5][13][3]map[string]struct{}
	groupSlot      [5][13][3]map[string]struct{}
	groupBuilding  [5][13][3]map[string]string
	groupDayLoad   map[string]*[5]int
	availability   map[string]model.InstructorAvailability
}

// NewConflictTracker returns an empty tracker. availability is external
// input #4 (§6): instructor -> declared unavailable slot-start times.
func NewConflictTracker(availability map[string]model.InstructorAvailability) *ConflictTracker {
	return &ConflictTracker{
		groupDayLoad: make(map[string]*[5]int),
		availability: availability,
	}
}

func (t *ConflictTracker) instructorSet(day model.Day, slot int, week model.WeekType) map[string]struct{} {
	return t.instructorSlot[int(day)][slot-1][int(week)]
}

func (t *ConflictTracker) groupSet(day model.Day, slot int, week model.WeekType) map[string]struct{} {
	return t.groupSlot[int(day)][slot-1][int(week)]
}

// IsInstructorAvailable reports whether an instructor is free at (day,
// slot, week_type): not already reserved there, and not declared
// unavailable at that slot's start time (§4.5).
func (t *ConflictTracker) IsInstructorAvailable(instructor string, day model.Day, slot int, week model.WeekType) bool {
	return !t.InstructorReserved(instructor, day, slot, week) && !t.InstructorDeclaredUnavailable(instructor, day, slot)
}

// InstructorReserved reports whether instructor already occupies (day,
// slot, week_type) via a prior Reserve call.
func (t *ConflictTracker) InstructorReserved(instructor string, day model.Day, slot int, week model.WeekType) bool {
	set := t.instructorSet(day, slot, week)
	if set == nil {
		return false
	}
	_, taken := set[instructor]
	return taken
}

// InstructorDeclaredUnavailable reports whether instructor's external
// availability config (§6 item 4) names this slot's start time as
// unavailable on day, independent of any reservation.
func (t *ConflictTracker) InstructorDeclaredUnavailable(instructor string, day model.Day, slot int) bool {
	info, ok := model.SlotInfoAt(slot)
	if !ok {
		return false
	}
	avail, ok := t.availability[instructor]
	if !ok {
		return false
	}
	return avail.IsUnavailable(day, info.Start)
}

// AreGroupsAvailable reports whether every group in groups is free at
// (day, slot, week_type) — no group in the list is already reserved there
// (§4.5).
func (t *ConflictTracker) AreGroupsAvailable(groups []string, day model.Day, slot int, week model.WeekType) bool {
	set := t.groupSet(day, slot, week)
	if set == nil {
		return true
	}
	for _, g := range groups {
		if _, taken := set[g]; taken {
			return false
		}
	}
	return true
}

// CheckBuildingGap reports whether placing groups at targetAddress on
// (day, slot, week_type) respects every group's adjacent-slot reservation
// (§4.5): for slot-1 and slot+1 on the same day, an address mismatch is
// only tolerated when nearby reports the two addresses as adjacent.
func (t *ConflictTracker) CheckBuildingGap(groups []string, day model.Day, slot int, week model.WeekType, targetAddress string, nearby func(a, b string) bool) bool {
	for _, offset := range [2]int{-1, 1} {
		adjacent := slot + offset
		if adjacent < 1 || adjacent > 13 {
			continue
		}
		byGroup := t.groupBuilding[int(day)][adjacent-1][int(week)]
		if byGroup == nil {
			continue
		}
		for _, g := range groups {
			addr, ok := byGroup[g]
			if !ok || addr == targetAddress {
				continue
			}
			if !nearby(addr, targetAddress) {
				return false
			}
		}
	}
	return true
}

// GroupDayLoad returns the number of slots already reserved for group on
// day, used by §4.7 step 2's day-balancing sort.
func (t *ConflictTracker) GroupDayLoad(group string, day model.Day) int {
	load, ok := t.groupDayLoad[group]
	if !ok {
		return 0
	}
	return load[int(day)]
}

// Reserve atomically marks every index for (instructor, groups, day, slot,
// week_type, address). The caller guarantees all checks already passed;
// there is no release primitive (§4.5, §5: reservations are monotone).
func (t *ConflictTracker) Reserve(instructor string, groups []string, day model.Day, slot int, week model.WeekType, address string) {
	d, s, w := int(day), slot-1, int(week)

	if t.instructorSlot[d][s][w] == nil {
		t.instructorSlot[d][s][w] = make(map[string]struct{})
	}
	t.instructorSlot[d][s][w][instructor] = struct{}{}

	if t.groupSlot[d][s][w] == nil {
		t.groupSlot[d][s][w] = make(map[string]struct{})
	}
	if t.groupBuilding[d][s][w] == nil {
		t.groupBuilding[d][s][w] = make(map[string]string)
	}
	for _, g := range groups {
		t.groupSlot[d][s][w][g] = struct{}{}
		t.groupBuilding[d][s][w][g] = address

		load, ok := t.groupDayLoad[g]
		if !ok {
			load = &[5]int{}
			t.groupDayLoad[g] = load
		}
		load[d]++
	}
}
