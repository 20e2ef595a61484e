package workload

import "github.com/rhyrak/form1-scheduler/pkg/model"

// DecomposeHours splits a total semester hour count into per-week odd/even
// counts (§4.1): base = total / 15, r = total mod 15. r=0 -> (base, base);
// r=8 -> (base+1, base); r=7 -> (base, base+1); any other residue has no
// valid decomposition.
func DecomposeHours(total int) (model.WeeklyHours, error) {
	base := total / totalWeeks
	r := total % totalWeeks

	switch r {
	case 0:
		return model.WeeklyHours{Total: total, OddWeek: base, EvenWeek: base}, nil
	case oddWeeksCount:
		return model.WeeklyHours{Total: total, OddWeek: base + 1, EvenWeek: base}, nil
	case evenWeeksCount:
		return model.WeeklyHours{Total: total, OddWeek: base, EvenWeek: base + 1}, nil
	default:
		return model.WeeklyHours{}, &InvalidHoursError{Total: total}
	}
}
