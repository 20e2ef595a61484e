package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

func TestConflictTrackerInstructorDeclaredUnavailable(t *testing.T) {
	availability := map[string]model.InstructorAvailability{
		"Ivanov": {
			Instructor: "Ivanov",
			Unavailable: map[model.Day]map[string]bool{
				model.Friday: {"09:00": true},
			},
		},
	}
	tracker := NewConflictTracker(availability)

	assert.False(t, tracker.IsInstructorAvailable("Ivanov", model.Friday, 1, model.WeekBoth))
	assert.True(t, tracker.IsInstructorAvailable("Ivanov", model.Monday, 1, model.WeekBoth))
}

func TestConflictTrackerReserveThenConflict(t *testing.T) {
	tracker := NewConflictTracker(nil)
	tracker.Reserve("Ivanov", []string{"G1", "G2"}, model.Monday, 1, model.WeekBoth, "Addr A")

	assert.False(t, tracker.IsInstructorAvailable("Ivanov", model.Monday, 1, model.WeekBoth))
	assert.True(t, tracker.InstructorReserved("Ivanov", model.Monday, 1, model.WeekBoth))
	assert.False(t, tracker.AreGroupsAvailable([]string{"G1"}, model.Monday, 1, model.WeekBoth))
	assert.True(t, tracker.AreGroupsAvailable([]string{"G3"}, model.Monday, 1, model.WeekBoth))
	assert.Equal(t, 1, tracker.GroupDayLoad("G1", model.Monday))
}

func TestConflictTrackerBuildingGap(t *testing.T) {
	tracker := NewConflictTracker(nil)
	tracker.Reserve("Ivanov", []string{"G1"}, model.Monday, 2, model.WeekBoth, "Addr A")

	nearby := func(a, b string) bool { return a == b }
	assert.False(t, tracker.CheckBuildingGap([]string{"G1"}, model.Monday, 3, model.WeekBoth, "Addr B", nearby))
	assert.True(t, tracker.CheckBuildingGap([]string{"G1"}, model.Monday, 3, model.WeekBoth, "Addr A", nearby))

	nearbyAll := func(a, b string) bool { return true }
	assert.True(t, tracker.CheckBuildingGap([]string{"G1"}, model.Monday, 3, model.WeekBoth, "Addr B", nearbyAll))
}
