package scheduler

import (
	"errors"
	"sort"

	"github.com/rhyrak/form1-scheduler/internal/workload"
	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// ErrNoRoomAvailable is returned by RoomManager.FindRoom when no room can
// be chosen (§4.6): a subject's required rooms are all unavailable (no
// fallthrough), the tier that decides has no room that fits even with the
// buffer, or the general pool is empty.
var ErrNoRoomAvailable = errors.New("no room available")

// RoomManager selects a room for a stream under the four-tier policy of
// §4.6, keeping its own occupancy map written only by the placement engine
// (§4.5's design note applied to rooms instead of instructors/groups).
type RoomManager struct {
	cfg      *Config
	occupied [5][13][3]map[string]struct{}
}

// NewRoomManager returns a room manager with an empty occupancy map.
func NewRoomManager(cfg *Config) *RoomManager {
	return &RoomManager{cfg: cfg}
}

// IsFree reports whether room is unoccupied at (day, slot, week_type).
// Exported so the placement engine can pessimistically re-check a
// tentatively chosen room across every slot of a multi-slot stream.
func (m *RoomManager) IsFree(room string, day model.Day, slot int, week model.WeekType) bool {
	return m.isFree(room, day, slot, week)
}

func (m *RoomManager) isFree(room string, day model.Day, slot int, week model.WeekType) bool {
	set := m.occupied[int(day)][slot-1][int(week)]
	if set == nil {
		return true
	}
	_, taken := set[room]
	return !taken
}

// Reserve marks a room occupied at (day, slot, week_type). The caller
// guarantees FindRoom already selected it for this exact slot.
func (m *RoomManager) Reserve(room string, day model.Day, slot int, week model.WeekType) {
	d, s, w := int(day), slot-1, int(week)
	if m.occupied[d][s][w] == nil {
		m.occupied[d][s][w] = make(map[string]struct{})
	}
	m.occupied[d][s][w][room] = struct{}{}
}

// isAccessible reports whether a room's building can host the given
// groups: specialty-exclusive addresses (§6 item 8) may only be used by
// groups of that specialty.
func (m *RoomManager) isAccessible(room model.Room, groups []string) bool {
	prefix, exclusive := m.cfg.exclusivePrefixOf(room.Address)
	if !exclusive {
		return true
	}
	for _, g := range groups {
		if workload.ParseSpecialtyCode(g) != prefix {
			return false
		}
	}
	return true
}

func (m *RoomManager) resolveLocations(locs []RoomLocation) []model.Room {
	var rooms []model.Room
	seen := make(map[string]bool)
	add := func(r model.Room) {
		if !seen[r.Name] {
			seen[r.Name] = true
			rooms = append(rooms, r)
		}
	}
	for _, loc := range locs {
		if loc.Room != "" {
			if r, ok := m.cfg.Room(loc.Room); ok {
				add(r)
			}
			continue
		}
		for _, r := range m.cfg.Rooms {
			if r.Address == loc.Address {
				add(r)
			}
		}
	}
	return rooms
}

// availableAndAccessible filters candidates down to rooms that are free at
// (day, slot, week_type) and accessible to groups.
func (m *RoomManager) availableAndAccessible(candidates []model.Room, groups []string, day model.Day, slot int, week model.WeekType) []model.Room {
	var out []model.Room
	for _, r := range candidates {
		if m.isFree(r.Name, day, slot, week) && m.isAccessible(r, groups) {
			out = append(out, r)
		}
	}
	return out
}

// generalPool returns every non-special room accessible to groups (§4.6
// tier 4).
func (m *RoomManager) generalPool(groups []string, day model.Day, slot int, week model.WeekType) []model.Room {
	var out []model.Room
	for _, r := range m.cfg.Rooms {
		if r.IsSpecial {
			continue
		}
		if m.isFree(r.Name, day, slot, week) && m.isAccessible(r, groups) {
			out = append(out, r)
		}
	}
	return out
}

// FindRoom applies §4.6's four-tier policy for a stream's tentative
// placement at (day, slot, week_type) and returns the chosen room.
func (m *RoomManager) FindRoom(subject, instructor string, classType model.StreamType, groups []string, studentCount int, day model.Day, slot int, week model.WeekType) (model.Room, error) {
	if pref, ok := m.cfg.SubjectRoomRequirements[subject]; ok && !pref.isEmpty() {
		candidates := m.availableAndAccessible(m.resolveLocations(pref.forClassType(classType)), groups, day, slot, week)
		if len(candidates) == 0 {
			return model.Room{}, ErrNoRoomAvailable
		}
		return selectRoom(candidates, studentCount)
	}

	if pref, ok := m.cfg.InstructorRoomPreferences[instructor]; ok && !pref.isEmpty() {
		candidates := m.availableAndAccessible(m.resolveLocations(pref.forClassType(classType)), groups, day, slot, week)
		if len(candidates) > 0 {
			return selectRoom(candidates, studentCount)
		}
	}

	if prefix, ok := commonSpecialtyPrefix(groups); ok {
		if building, ok := m.cfg.GroupBuildings[prefix]; ok {
			var located []model.Room
			for _, r := range m.resolveLocations(building.Addresses) {
				if !r.IsSpecial {
					located = append(located, r)
				}
			}
			candidates := m.availableAndAccessible(located, groups, day, slot, week)
			if len(candidates) > 0 {
				return selectRoom(candidates, studentCount)
			}
		}
	}

	candidates := m.generalPool(groups, day, slot, week)
	if len(candidates) == 0 {
		return model.Room{}, ErrNoRoomAvailable
	}
	return selectRoom(candidates, studentCount)
}

// commonSpecialtyPrefix reports the shared specialty prefix of groups, if
// every group has the same one (§4.6 tier 3).
func commonSpecialtyPrefix(groups []string) (string, bool) {
	if len(groups) == 0 {
		return "", false
	}
	prefix := workload.ParseSpecialtyCode(groups[0])
	if prefix == "" {
		return "", false
	}
	for _, g := range groups[1:] {
		if workload.ParseSpecialtyCode(g) != prefix {
			return "", false
		}
	}
	return prefix, true
}

// selectRoom applies preferred selection, falling back to buffered
// selection, from a tier's candidate set (§4.6).
func selectRoom(candidates []model.Room, studentCount int) (model.Room, error) {
	fits := make([]model.Room, 0, len(candidates))
	for _, r := range candidates {
		if r.Fits(studentCount) {
			fits = append(fits, r)
		}
	}
	if len(fits) > 0 {
		sort.Slice(fits, func(i, j int) bool {
			if fits[i].Capacity != fits[j].Capacity {
				return fits[i].Capacity < fits[j].Capacity
			}
			return fits[i].Name < fits[j].Name
		})
		return fits[0], nil
	}

	buffer := capacityBuffer(studentCount)
	buffered := make([]model.Room, 0, len(candidates))
	for _, r := range candidates {
		if r.FitsBuffered(studentCount, buffer) {
			buffered = append(buffered, r)
		}
	}
	if len(buffered) == 0 {
		return model.Room{}, ErrNoRoomAvailable
	}
	sort.Slice(buffered, func(i, j int) bool {
		if buffered[i].Capacity != buffered[j].Capacity {
			return buffered[i].Capacity > buffered[j].Capacity
		}
		return buffered[i].Name < buffered[j].Name
	})
	return buffered[0], nil
}

// capacityBuffer returns the buffer slack for a student count (§4.6, §
// Glossary "Buffer"): 50% at counts <= 30, 20% at counts >= 100, linearly
// interpolated in between.
func capacityBuffer(studentCount int) int {
	const (
		lowCount    = 30
		highCount   = 100
		lowFraction = 0.50
		highFraction = 0.20
	)
	var fraction float64
	switch {
	case studentCount <= lowCount:
		fraction = lowFraction
	case studentCount >= highCount:
		fraction = highFraction
	default:
		t := float64(studentCount-lowCount) / float64(highCount-lowCount)
		fraction = lowFraction + t*(highFraction-lowFraction)
	}
	return int(fraction * float64(studentCount))
}
