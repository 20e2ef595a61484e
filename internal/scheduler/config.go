// Package scheduler implements the Stage-1 greedy lecture placement engine
// (C5-C9): conflict tracking, room selection, priority ordering, placement
// search, and result aggregation. Adapted from rhyrak-go-schedule's
// internal/scheduler package, which drove the same day/slot greedy loop
// shape (tryPlaceIntoDay/checkSlots/findRoom) over a different domain
// (CSV courses/classrooms instead of workload streams/rooms).
package scheduler

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// specialtyExclusivePrefixes names the specialty prefixes whose declared
// buildings are exclusive to that specialty (§6 item 8).
var specialtyExclusivePrefixes = map[string]bool{
	"ВЕТ": true,
	"СТР": true,
	"АРХ": true,
	"ЗК":  true,
	"ЮР":  true,
}

// RoomLocation is one (address, room) pair in a preference list. Room may
// be blank to mean "any room at this address".
type RoomLocation struct {
	Address string `json:"address" validate:"required"`
	Room    string `json:"room"`
}

// RoomPreference is external input #5/#7 (§6): either a flat location list,
// or one split by class type when the source distinguishes lecture,
// practice, and lab rooms for the same subject or instructor.
type RoomPreference struct {
	Locations []RoomLocation `json:"locations,omitempty"`
	Lecture   []RoomLocation `json:"lecture,omitempty"`
	Practice  []RoomLocation `json:"practice,omitempty"`
	Lab       []RoomLocation `json:"lab,omitempty"`
}

// forClassType returns the location list this preference declares for a
// class type, falling back to the flat Locations list when the preference
// isn't split by class type.
func (p RoomPreference) forClassType(t model.StreamType) []RoomLocation {
	switch t {
	case model.Practical:
		if len(p.Practice) > 0 {
			return p.Practice
		}
	case model.Lab:
		if len(p.Lab) > 0 {
			return p.Lab
		}
	default:
		if len(p.Lecture) > 0 {
			return p.Lecture
		}
	}
	return p.Locations
}

// isEmpty reports whether the preference declares no locations at all.
func (p RoomPreference) isEmpty() bool {
	return len(p.Locations) == 0 && len(p.Lecture) == 0 && len(p.Practice) == 0 && len(p.Lab) == 0
}

// GroupBuilding is external input #8 (§6): the buildings a specialty
// prefix's groups are taught in, optionally restricted to specific rooms
// per address.
type GroupBuilding struct {
	Addresses []RoomLocation `json:"addresses"`
}

// InstructorDayConstraint is external input #6 (§6). Parsed but never
// consulted by the placement engine (SPEC_FULL.md §12 item 2): present
// so an external loader has somewhere to put the config, and so a future
// stage can wire it without a config-surface change.
type InstructorDayConstraint struct {
	AllowedDaysByYear map[int][]model.Day
	OneDayPerWeek     bool
}

// Config bundles every external interface named in §6 into one validated
// value. An external loader (out of scope, §1) populates this from
// whatever reference files it reads and hands it to NewConfig.
type Config struct {
	Rooms                     []model.Room                        `validate:"dive"`
	DeadGroups                map[string]bool                     `validate:"-"`
	ForcedSecondShiftGroups   map[string]bool                     `validate:"-"`
	InstructorAvailability    map[string]model.InstructorAvailability `validate:"-"`
	InstructorRoomPreferences map[string]RoomPreference            `validate:"-"`
	InstructorDayConstraints  map[string]InstructorDayConstraint  `validate:"-"`
	SubjectRoomRequirements   map[string]RoomPreference            `validate:"-"`
	GroupBuildings            map[string]GroupBuilding             `validate:"-"`
	NearbyBuildings           [][]string                           `validate:"-"`
	FlexibleSubjects          map[string]bool                      `validate:"-"`

	roomByName             map[string]model.Room
	nearbyGroupOf          map[string]int
	addressExclusivePrefix map[string]string
}

var validate = validator.New()

// NewConfig validates and indexes a Config, refusing to build a scheduler
// on malformed input (§7: negative capacity, duplicate room name, cyclic
// nearby groups are fatal configuration errors, unlike the recoverable
// per-sheet/per-row errors in the workload parser).
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scheduler config: %w", err)
	}

	roomByName := make(map[string]model.Room, len(cfg.Rooms))
	for _, room := range cfg.Rooms {
		if _, dup := roomByName[room.Name]; dup {
			return nil, fmt.Errorf("invalid scheduler config: duplicate room name %q", room.Name)
		}
		roomByName[room.Name] = room
	}
	cfg.roomByName = roomByName

	nearbyGroupOf, err := buildNearbyIndex(cfg.NearbyBuildings)
	if err != nil {
		return nil, err
	}
	cfg.nearbyGroupOf = nearbyGroupOf

	cfg.addressExclusivePrefix = make(map[string]string)
	for prefix, building := range cfg.GroupBuildings {
		if !specialtyExclusivePrefixes[prefix] {
			continue
		}
		for _, loc := range building.Addresses {
			cfg.addressExclusivePrefix[loc.Address] = prefix
		}
	}

	return &cfg, nil
}

// exclusivePrefixOf returns the specialty prefix a building address is
// reserved for, if any (§6 item 8, §4.6 tier 3).
func (c *Config) exclusivePrefixOf(address string) (string, bool) {
	prefix, ok := c.addressExclusivePrefix[address]
	return prefix, ok
}

// buildNearbyIndex assigns each address to the index of the proximity
// group it belongs to, detecting cycles created by an address appearing in
// two disjoint declared groups (§7 fatal: "cyclic nearby groups").
func buildNearbyIndex(groups [][]string) (map[string]int, error) {
	index := make(map[string]int)
	for groupID, addrs := range groups {
		for _, addr := range addrs {
			if existing, ok := index[addr]; ok && existing != groupID {
				return nil, fmt.Errorf("invalid scheduler config: address %q appears in more than one nearby-building group", addr)
			}
			index[addr] = groupID
		}
	}
	return index, nil
}

// Nearby reports whether two addresses are in the same declared proximity
// group (§3 Building relation: reflexive, symmetric, transitive within a
// declared group).
func (c *Config) Nearby(a, b string) bool {
	if a == b {
		return true
	}
	groupA, okA := c.nearbyGroupOf[a]
	groupB, okB := c.nearbyGroupOf[b]
	return okA && okB && groupA == groupB
}

// Room looks up a configured room by name.
func (c *Config) Room(name string) (model.Room, bool) {
	r, ok := c.roomByName[name]
	return r, ok
}

// IsFlexible reports whether a subject is on the flexible-schedule
// allow-list (§4.7 step 1, Glossary "Flexible subject").
func (c *Config) IsFlexible(subject string) bool {
	return c.FlexibleSubjects[subject]
}

// ForcedSecondShift reports whether a group is in the forced-second-shift
// override set (§6 Shift rule).
func (c *Config) ForcedSecondShift(group string) bool {
	return c.ForcedSecondShiftGroups[group]
}

// IsDeadGroup reports whether a group's students never count toward room
// capacity (§3 Glossary "Dead group").
func (c *Config) IsDeadGroup(group string) bool {
	return c.DeadGroups[group]
}

// EffectiveStudentCount returns the student count a room-capacity decision
// should use for stream (§3 Glossary "Dead group": "dead groups contribute
// 0"). A stream's raw StudentCount is one sum across all of its groups, so
// this can only zero it when every one of the stream's groups is dead —
// there is no per-group breakdown left to subtract a partial count from
// (see DESIGN.md's dead-group zeroing decision).
func (c *Config) EffectiveStudentCount(stream model.Stream) int {
	if len(stream.Groups) == 0 {
		return stream.StudentCount
	}
	for _, g := range stream.Groups {
		if !c.IsDeadGroup(g) {
			return stream.StudentCount
		}
	}
	return 0
}
