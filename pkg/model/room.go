// Package model holds the value types shared between the workload parser
// and the Stage-1 scheduler: rooms, the weekly time grid, and the final
// schedule result. Adapted from rhyrak-go-schedule's pkg/model/classroom.go,
// which kept a per-classroom day/slot occupancy grid — the same shape the
// Stage-1 room manager (C6) needs for its own availability map.
package model

// Room is a physical teaching space a stream can be placed into.
//
// Special rooms (IsSpecial) are only eligible for the subjects/instructors
// that declare them in Config.SubjectRoomRequirements /
// Config.InstructorRoomPreferences; they are never offered by the
// group-building tier or the general pool (room manager tiers 3 and 4).
type Room struct {
	Name      string `json:"name" validate:"required"`
	Capacity  int    `json:"capacity" validate:"gte=0"`
	Address   string `json:"address" validate:"required"`
	IsSpecial bool   `json:"is_special"`
}

// Fits reports whether the room's plain capacity accommodates studentCount
// without any buffer slack (room manager's "preferred selection" tier).
func (r Room) Fits(studentCount int) bool {
	return r.Capacity >= studentCount
}

// FitsBuffered reports whether the room's capacity, plus the given buffer,
// accommodates studentCount (room manager's "buffer fallback" tier).
func (r Room) FitsBuffered(studentCount, buffer int) bool {
	return r.Capacity+buffer >= studentCount
}
