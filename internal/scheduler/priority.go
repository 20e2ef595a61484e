package scheduler

import (
	"sort"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// totalWeeklySlots is the size of the weekly grid (5 days * 13 slots),
// used to turn an instructor's unavailable-slot count into "available
// weekly minutes" for §4.8 key 2.
const totalWeeklySlots = len(model.Days) * 13

// SubjectLoadIndex aggregates each subject's total practical+lab hours
// across every extracted stream (§4.8 key 3; supplemented feature carried
// from original_source's build_subject_prac_lab_hours, see SPEC_FULL.md
// §11). Built once over the full parsed stream list, then consulted while
// sorting the lecture streams that are actually placed.
func SubjectLoadIndex(streams []model.Stream) map[string]int {
	index := make(map[string]int)
	for _, s := range streams {
		if s.StreamType == model.Practical || s.StreamType == model.Lab {
			index[s.Subject] += s.Hours.Total
		}
	}
	return index
}

// instructorAvailableMinutes counts an instructor's total weekly minutes
// not in their declared unavailable set (§4.8 key 2). An instructor absent
// from Config.InstructorAvailability is assumed fully available.
func instructorAvailableMinutes(instructor string, cfg *Config) int {
	avail, ok := cfg.InstructorAvailability[instructor]
	if !ok {
		return totalWeeklySlots * 50
	}
	unavailable := 0
	for _, day := range model.Days {
		unavailable += len(avail.Unavailable[day])
	}
	available := totalWeeklySlots - unavailable
	if available < 0 {
		available = 0
	}
	return available * 50
}

// SortForPlacement orders lecture streams by §4.8's five-key lexicographic
// priority so the hardest-to-place streams are tried first: non-flexible
// subjects before flexible ones, tighter instructors before looser ones,
// heavier subject footprints before lighter ones, larger groups before
// smaller ones, and the stream id as a final deterministic tiebreaker.
func SortForPlacement(streams []model.Stream, cfg *Config, subjectLoad map[string]int) []model.Stream {
	sorted := make([]model.Stream, len(streams))
	copy(sorted, streams)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		flexA, flexB := cfg.IsFlexible(a.Subject), cfg.IsFlexible(b.Subject)
		if flexA != flexB {
			return !flexA
		}

		availA := instructorAvailableMinutes(a.Instructor, cfg)
		availB := instructorAvailableMinutes(b.Instructor, cfg)
		if availA != availB {
			return availA < availB
		}

		loadA, loadB := subjectLoad[a.Subject], subjectLoad[b.Subject]
		if loadA != loadB {
			return loadA > loadB
		}

		if a.StudentCount != b.StudentCount {
			return a.StudentCount > b.StudentCount
		}

		return a.ID < b.ID
	})

	return sorted
}
