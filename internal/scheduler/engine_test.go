package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

func lectureStream(id, subject, instructor string, groups []string, studentCount int) model.Stream {
	return model.Stream{
		ID:           id,
		Subject:      subject,
		StreamType:   model.Lecture,
		Instructor:   instructor,
		Groups:       groups,
		StudentCount: studentCount,
		Hours:        model.WeeklyHours{Total: 15, OddWeek: 1, EvenWeek: 1},
	}
}

// TestEngineSimplePlacement mirrors spec.md §8 scenario 1.
func TestEngineSimplePlacement(t *testing.T) {
	cfg := mustConfig(t, Config{
		Rooms: []model.Room{{Name: "RoomA", Capacity: 50, Address: "A"}},
	})
	engine := NewEngine(cfg, nil)

	result := engine.Run([]model.Stream{
		lectureStream("s1", "Math", "Ivanov", []string{"АРХ-31", "АРХ-32"}, 40),
	})

	require.Len(t, result.Assignments, 1)
	a := result.Assignments[0]
	assert.Equal(t, model.Monday, a.Day)
	assert.Equal(t, 1, a.Slot)
	assert.Equal(t, "RoomA", a.Room)
	assert.Equal(t, "A", a.RoomAddress)
	assert.Equal(t, model.WeekBoth, a.WeekType)
	assert.Empty(t, result.Unscheduled)
}

// TestEngineInstructorBlackout mirrors spec.md §8 scenario 2.
func TestEngineInstructorBlackout(t *testing.T) {
	cfg := mustConfig(t, Config{
		Rooms: []model.Room{{Name: "RoomA", Capacity: 50, Address: "A"}},
		InstructorAvailability: map[string]model.InstructorAvailability{
			"Ivanov": {
				Instructor: "Ivanov",
				Unavailable: map[model.Day]map[string]bool{
					model.Friday: {"09:00": true, "10:00": true, "11:00": true, "12:00": true, "13:00": true},
				},
			},
		},
	})
	engine := NewEngine(cfg, nil)

	stream := lectureStream("s1", "Math", "Ivanov", []string{"АРХ-31"}, 10)
	stream.Hours = model.WeeklyHours{Total: 15, OddWeek: 1, EvenWeek: 1}
	result := engine.Run([]model.Stream{stream})

	require.Len(t, result.Assignments, 1)
	assert.NotEqual(t, model.Friday, result.Assignments[0].Day)
	assert.Empty(t, result.Unscheduled)
}

// TestEngineBuildingTravelGap mirrors spec.md §8 scenario 4.
func TestEngineBuildingTravelGap(t *testing.T) {
	// Both instructors are blocked outside Monday, so the second stream has
	// to share the first one's day instead of being balanced onto an emptier
	// one.
	offMonday := map[model.Day]map[string]bool{}
	for _, day := range []model.Day{model.Tuesday, model.Wednesday, model.Thursday, model.Friday} {
		offMonday[day] = map[string]bool{"09:00": true, "10:00": true, "11:00": true, "12:00": true, "13:00": true}
	}
	cfg := mustConfig(t, Config{
		Rooms: []model.Room{
			{Name: "RoomA", Capacity: 50, Address: "Addr A"},
			{Name: "RoomB", Capacity: 50, Address: "Addr B"},
		},
		InstructorAvailability: map[string]model.InstructorAvailability{
			"Ivanov": {Instructor: "Ivanov", Unavailable: offMonday},
			"Bekova": {Instructor: "Bekova", Unavailable: offMonday},
		},
		SubjectRoomRequirements: map[string]RoomPreference{
			"First":  {Locations: []RoomLocation{{Room: "RoomA"}}},
			"Second": {Locations: []RoomLocation{{Room: "RoomB"}}},
		},
	})
	engine := NewEngine(cfg, nil)

	first := lectureStream("s1", "First", "Ivanov", []string{"АРХ-31"}, 10)
	second := lectureStream("s2", "Second", "Bekova", []string{"АРХ-31"}, 10)

	result := engine.Run([]model.Stream{first, second})
	require.Len(t, result.Assignments, 2)

	byStream := make(map[string]model.Assignment)
	for _, a := range result.Assignments {
		byStream[a.StreamID] = a
	}
	a1, a2 := byStream["s1"], byStream["s2"]
	require.Equal(t, a1.Day, a2.Day)
	assert.NotEqual(t, a1.Slot+1, a2.Slot, "second stream must not land in the adjacent slot across non-nearby buildings")
}

func TestEngineNoRoomProducesUnscheduled(t *testing.T) {
	cfg := mustConfig(t, Config{
		Rooms: []model.Room{{Name: "Tiny", Capacity: 5, Address: "A"}},
	})
	engine := NewEngine(cfg, nil)

	result := engine.Run([]model.Stream{
		lectureStream("s1", "Math", "Ivanov", []string{"АРХ-31"}, 500),
	})

	require.Empty(t, result.Assignments)
	require.Len(t, result.Unscheduled, 1)
	assert.Equal(t, model.ReasonNoRoomAvailable, result.Unscheduled[0].Reason)
}

// TestEngineDeadGroupZeroesCapacity confirms a stream whose only group is
// dead is placed against a room too small for its raw StudentCount, since
// §3's "dead groups contribute 0" invariant must reach the room-fit check.
func TestEngineDeadGroupZeroesCapacity(t *testing.T) {
	cfg := mustConfig(t, Config{
		Rooms:      []model.Room{{Name: "Tiny", Capacity: 5, Address: "A"}},
		DeadGroups: map[string]bool{"АРХ-31": true},
	})
	engine := NewEngine(cfg, nil)

	result := engine.Run([]model.Stream{
		lectureStream("s1", "Math", "Ivanov", []string{"АРХ-31"}, 500),
	})

	require.Empty(t, result.Unscheduled)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "Tiny", result.Assignments[0].Room)
}

func TestEngineNonBacktracking(t *testing.T) {
	cfg := mustConfig(t, Config{
		Rooms: []model.Room{{Name: "RoomA", Capacity: 50, Address: "A"}},
	})
	engine := NewEngine(cfg, nil)

	result := engine.Run([]model.Stream{
		lectureStream("s1", "Math", "Ivanov", []string{"АРХ-31"}, 30),
		lectureStream("s2", "Math", "Bekova", []string{"АРХ-31"}, 30),
	})

	// s1 keeps its first position; s2 shares group АРХ-31, so day balancing
	// sends it to the least-loaded day (Tuesday) instead of moving s1.
	require.Len(t, result.Assignments, 2)
	assert.Equal(t, "s1", result.Assignments[0].StreamID)
	assert.Equal(t, model.Monday, result.Assignments[0].Day)
	assert.Equal(t, 1, result.Assignments[0].Slot)
	assert.Equal(t, model.Tuesday, result.Assignments[1].Day)
	assert.Equal(t, 1, result.Assignments[1].Slot)
}
