package scheduler

import (
	"sort"

	"go.uber.org/zap"

	"github.com/rhyrak/form1-scheduler/internal/workload"
	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// Engine is the C7 placement engine: a greedy, non-backtracking search
// over (day, slot) positions for each priority-ordered lecture stream,
// consulting C5 (conflicts) and C6 (rooms) and committing both on success
// (§4.7). Grounded on rhyrak-go-schedule's FillCourses/tryPlaceIntoDay
// day-then-slot loop shape, generalized from single-slot courses to
// H-consecutive-slot streams and from a fixed classroom list to the
// four-tier room policy.
type Engine struct {
	cfg       *Config
	Conflicts *ConflictTracker
	Rooms     *RoomManager
	log       *zap.SugaredLogger
}

// NewEngine builds an engine over a validated Config. A single Engine is
// meant for one scheduling run: its indexes are append-only (§5).
func NewEngine(cfg *Config, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		cfg:       cfg,
		Conflicts: NewConflictTracker(cfg.InstructorAvailability),
		Rooms:     NewRoomManager(cfg),
		log:       log,
	}
}

// Run places every lecture stream in streams and returns the aggregated
// result (§4.9). Non-lecture streams (practicals, labs) are not placed by
// Stage 1 (spec.md §1 Non-goals: "full multi-stage scheduling").
func (e *Engine) Run(streams []model.Stream) model.ScheduleResult {
	subjectLoad := SubjectLoadIndex(streams)

	var lectures []model.Stream
	for _, s := range streams {
		if s.StreamType == model.Lecture {
			lectures = append(lectures, s)
		}
	}
	ordered := SortForPlacement(lectures, e.cfg, subjectLoad)

	result := model.ScheduleResult{
		Statistics: model.ScheduleStatistics{
			PerDayCount:     make(map[model.Day]int),
			RoomUtilization: make(map[string]float64),
			InstructorHours: make(map[string]int),
		},
	}

	roomSlotsUsed := make(map[string]int)

	for _, stream := range ordered {
		assignments, reason, detail, ok := e.placeStream(stream)
		if !ok {
			result.Unscheduled = append(result.Unscheduled, model.UnscheduledStream{
				StreamID:     stream.ID,
				Subject:      stream.Subject,
				Instructor:   stream.Instructor,
				Groups:       stream.Groups,
				StudentCount: stream.StudentCount,
				Reason:       reason,
				Detail:       detail,
			})
			e.log.Warnw("stream not placed", "stream_id", stream.ID, "reason", reason.String(), "detail", detail)
			continue
		}
		result.Assignments = append(result.Assignments, assignments...)
		for _, a := range assignments {
			result.Statistics.PerDayCount[a.Day]++
			roomSlotsUsed[a.Room]++
		}
		result.Statistics.InstructorHours[stream.Instructor] += len(assignments)
	}

	result.Statistics.TotalAssigned = len(result.Assignments)
	result.Statistics.TotalUnscheduled = len(result.Unscheduled)
	const totalRoomSlots = 13 * 5
	for _, room := range e.cfg.Rooms {
		used := roomSlotsUsed[room.Name]
		result.Statistics.RoomUtilization[room.Name] = float64(used) / float64(totalRoomSlots)
	}

	return result
}

// placeStream searches every (day, slot) position allowed for stream's
// shift, in the day-tier order of §4.7 step 1-2, returning the H
// consecutive-slot assignments on success or the most specific failure
// reason recorded during the search (§4.7 step 4).
func (e *Engine) placeStream(stream model.Stream) ([]model.Assignment, model.UnscheduledReason, string, bool) {
	shift := determineShift(stream.Groups, e.cfg)
	slots := model.SlotsForShift(shift)
	lastSlot := slots[len(slots)-1]
	firstSlot := slots[0]
	h := stream.Hours.Max()
	if h <= 0 {
		h = 1
	}

	bestReason := model.ReasonAllSlotsExhausted
	bestDetail := "no candidate position was tried"
	record := func(reason model.UnscheduledReason, detail string) {
		if reason.MoreSpecific(bestReason) {
			bestReason = reason
			bestDetail = detail
		}
	}

	for _, tier := range e.dayTiers(stream) {
		for _, day := range tier {
			for slot := firstSlot; slot <= lastSlot; slot++ {
				if slot+h-1 > lastSlot {
					record(model.ReasonNoConsecutiveSlots, "stream needs more consecutive slots than remain in the shift")
					continue
				}

				assignments, reason, detail, ok := e.tryPosition(stream, day, slot, h)
				if ok {
					return assignments, 0, "", true
				}
				record(reason, detail)
			}
		}
	}

	return nil, bestReason, bestDetail, false
}

// tryPosition checks and, on success, reserves an H-consecutive-slot
// window starting at (day, slot) for stream (§4.7 step 3).
func (e *Engine) tryPosition(stream model.Stream, day model.Day, slot, h int) ([]model.Assignment, model.UnscheduledReason, string, bool) {
	for offset := 0; offset < h; offset++ {
		s := slot + offset
		if e.Conflicts.InstructorDeclaredUnavailable(stream.Instructor, day, s) {
			return nil, model.ReasonInstructorUnavailable, "instructor declared unavailable at this slot", false
		}
		if e.Conflicts.InstructorReserved(stream.Instructor, day, s, model.WeekBoth) {
			return nil, model.ReasonInstructorConflict, "instructor already reserved at this slot", false
		}
		if !e.Conflicts.AreGroupsAvailable(stream.Groups, day, s, model.WeekBoth) {
			return nil, model.ReasonGroupConflict, "a group is already reserved at this slot", false
		}
	}

	effectiveCount := e.cfg.EffectiveStudentCount(stream)
	room, err := e.Rooms.FindRoom(stream.Subject, stream.Instructor, model.Lecture, stream.Groups, effectiveCount, day, slot, model.WeekBoth)
	if err != nil {
		return nil, model.ReasonNoRoomAvailable, "no room satisfied the four-tier policy at this slot", false
	}

	for offset := 0; offset < h; offset++ {
		s := slot + offset
		if !e.Conflicts.CheckBuildingGap(stream.Groups, day, s, model.WeekBoth, room.Address, e.cfg.Nearby) {
			return nil, model.ReasonBuildingGapRequired, "adjacent reservation is in a non-nearby building", false
		}
		if !e.Rooms.IsFree(room.Name, day, s, model.WeekBoth) {
			return nil, model.ReasonNoRoomAvailable, "chosen room is occupied for a later slot in the window", false
		}
	}

	assignments := make([]model.Assignment, 0, h)
	for offset := 0; offset < h; offset++ {
		s := slot + offset
		e.Conflicts.Reserve(stream.Instructor, stream.Groups, day, s, model.WeekBoth, room.Address)
		e.Rooms.Reserve(room.Name, day, s, model.WeekBoth)
		assignments = append(assignments, model.Assignment{
			StreamID:     stream.ID,
			Subject:      stream.Subject,
			Instructor:   stream.Instructor,
			Groups:       stream.Groups,
			StudentCount: stream.StudentCount,
			Day:          day,
			Slot:         s,
			Room:         room.Name,
			RoomAddress:  room.Address,
			WeekType:     model.WeekBoth,
		})
	}

	return assignments, 0, "", true
}

// dayTiers orders the candidate days for stream (§4.7 step 1-2): flexible
// subjects get one tier spanning the whole week; non-flexible subjects try
// {Mon, Tue, Wed} to exhaustion before {Thu, Fri}. Each tier is internally
// sorted by ascending total group-day load, balancing the week.
func (e *Engine) dayTiers(stream model.Stream) [][]model.Day {
	if e.cfg.IsFlexible(stream.Subject) {
		return [][]model.Day{e.sortDaysByLoad(model.Days[:], stream.Groups)}
	}
	firstHalf := []model.Day{model.Monday, model.Tuesday, model.Wednesday}
	secondHalf := []model.Day{model.Thursday, model.Friday}
	return [][]model.Day{
		e.sortDaysByLoad(firstHalf, stream.Groups),
		e.sortDaysByLoad(secondHalf, stream.Groups),
	}
}

func (e *Engine) sortDaysByLoad(days []model.Day, groups []string) []model.Day {
	sorted := make([]model.Day, len(days))
	copy(sorted, days)
	load := func(day model.Day) int {
		total := 0
		for _, g := range groups {
			total += e.Conflicts.GroupDayLoad(g, day)
		}
		return total
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := load(sorted[i]), load(sorted[j])
		if li != lj {
			return li < lj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// determineShift resolves a stream's shift from its groups' study years
// (§6 Shift rule). The forced-second-shift override takes precedence over
// the year rule for any group in the stream.
func determineShift(groups []string, cfg *Config) model.Shift {
	for _, g := range groups {
		if cfg.ForcedSecondShift(g) {
			return model.SecondShift
		}
	}
	if len(groups) == 0 {
		return model.SecondShift
	}
	switch workload.ParseGroupYear(groups[0]) {
	case 1:
		return model.FirstShift
	case 2:
		return model.SecondShift
	case 3:
		return model.FirstShift
	default:
		return model.SecondShift
	}
}
