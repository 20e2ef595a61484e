package model

// Day is one weekday of the five-day teaching week (§3 Time grid).
// Adapted from rhyrak-go-schedule's pkg/model/schedule.go, which indexed
// its own Schedule.Days array by the same 0..4 range; here the day is a
// named type instead of a bare int so conflict-tracker keys stay readable.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Days lists the five weekdays in grid order.
var Days = [5]Day{Monday, Tuesday, Wednesday, Thursday, Friday}

func (d Day) String() string {
	switch d {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	default:
		return "unknown"
	}
}

// WeekType tags whether a reservation applies to odd weeks, even weeks, or
// both. The scheduler currently always reserves Both (§3), but the tag is
// carried through so a future stage can split odd/even placement without a
// data model change.
type WeekType int

const (
	WeekBoth WeekType = iota
	WeekOdd
	WeekEven
)

func (w WeekType) String() string {
	switch w {
	case WeekOdd:
		return "odd"
	case WeekEven:
		return "even"
	default:
		return "both"
	}
}

// Shift is a contiguous slot range: first = slots 1..5, second = slots 6..13.
type Shift int

const (
	FirstShift Shift = iota
	SecondShift
)

func (s Shift) String() string {
	if s == FirstShift {
		return "first"
	}
	return "second"
}

// SlotInfo describes one of the 13 ordered slots in a teaching day.
type SlotInfo struct {
	Slot  int
	Start string
	End   string
	Shift Shift
}

// TimeSlots is the fixed 13-slot grid from §3: slot k runs from (8+k):00 to
// (8+k):50. Slots 1..5 are the first shift, 6..13 the second.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() [13]SlotInfo {
	var slots [13]SlotInfo
	for k := 1; k <= 13; k++ {
		shift := FirstShift
		if k >= 6 {
			shift = SecondShift
		}
		slots[k-1] = SlotInfo{
			Slot:  k,
			Start: formatHour(8 + k),
			End:   formatHourAndMinutes(8+k, 50),
			Shift: shift,
		}
	}
	return slots
}

func formatHour(hour int) string {
	return formatHourAndMinutes(hour, 0)
}

func formatHourAndMinutes(hour, minutes int) string {
	const digits = "0123456789"
	h := [2]byte{digits[hour/10%10], digits[hour%10]}
	m := [2]byte{digits[minutes/10%10], digits[minutes%10]}
	return string(h[:]) + ":" + string(m[:])
}

// SlotInfoAt returns the slot descriptor for the given 1-based slot number,
// or false if it is out of range.
func SlotInfoAt(slot int) (SlotInfo, bool) {
	if slot < 1 || slot > len(TimeSlots) {
		return SlotInfo{}, false
	}
	return TimeSlots[slot-1], true
}

// SlotsForShift returns the ordered slot numbers belonging to a shift.
func SlotsForShift(shift Shift) []int {
	if shift == FirstShift {
		return []int{1, 2, 3, 4, 5}
	}
	return []int{6, 7, 8, 9, 10, 11, 12, 13}
}
