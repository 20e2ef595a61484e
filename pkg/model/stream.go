package model

// StreamType is the kind of teaching unit a Stream represents (§3).
type StreamType int

const (
	Lecture StreamType = iota
	Practical
	Lab
)

func (t StreamType) String() string {
	switch t {
	case Lecture:
		return "lecture"
	case Practical:
		return "practical"
	case Lab:
		return "lab"
	default:
		return "unknown"
	}
}

// Language is the medium of instruction of a stream (§3).
type Language int

const (
	Kazakh Language = iota
	Russian
)

func (l Language) String() string {
	if l == Russian {
		return "rus"
	}
	return "kaz"
}

// WeeklyHours is the total-to-weekly hour decomposition over a 15-week
// semester (§3, §4.1). Invariant: Total = 8*OddWeek + 7*EvenWeek.
type WeeklyHours struct {
	Total    int `json:"total"`
	OddWeek  int `json:"odd_week"`
	EvenWeek int `json:"even_week"`
}

// Max returns the larger of OddWeek and EvenWeek — the number of
// consecutive slots a stream needs per occurrence (§4.7 step 3).
func (h WeeklyHours) Max() int {
	if h.OddWeek > h.EvenWeek {
		return h.OddWeek
	}
	return h.EvenWeek
}

// Provenance records where a stream came from in the source workbook, for
// warnings and audit trails.
type Provenance struct {
	Sheet string
	Rows  []int
}

// Stream is the indivisible unit of teaching identified by
// (subject, stream_type, instructor): a row-derived group of students
// taught together (§3). One instructor on a block always starts a new
// stream, even when the subject row-block is shared with another
// instructor's rows.
type Stream struct {
	ID                  string
	Subject             string
	StreamType          StreamType
	Instructor          string
	Groups              []string
	StudentCount        int
	Language            Language
	Hours               WeeklyHours
	Provenance          Provenance
	IsSubgroup          bool
	IsImplicitSubgroup  bool
}

// Key returns the tuple spec.md's stream-uniqueness invariant (§8) is
// defined over: no two streams from one parse should share this key along
// with equal Groups and Hours.
func (s Stream) Key() (subject string, streamType StreamType, instructor string) {
	return s.Subject, s.StreamType, s.Instructor
}
