// Package workload recovers a normalized list of teaching streams from a
// tabular workload artifact (§4.1-§4.4: hours decomposition, pattern
// classification, stream extraction, and sheet parsing). Grounded on
// _examples/original_source/src/form1_parser/{constants,patterns,extractors,
// parser,utils,normalization}.py; struct-tag and warning-accumulation style
// grounded on rhyrak-go-schedule/internal/csvio/loader.go.
package workload

import "regexp"

// Column indices (0-based) within a subject block's row, matching the
// source workbook layout (original_source/.../constants.py).
const (
	ColSubject    = 1
	ColSpecialty  = 3
	ColGroup      = 4
	ColLanguage   = 6
	ColStudents   = 7
	ColLectures   = 8
	ColPracticals = 9
	ColLabs       = 10
)

// instructorMarkers are case-insensitive substrings that identify the
// instructor column when it isn't in knownInstructorColumns (§4.4 step 2).
var instructorMarkers = []string{
	"проф", "а.о.", "с.п.", "асс", "доц", "д.", "prof.", "prof",
}

// dataStartMarkers are the stripped cell values that mark the first data
// row of a sheet (§4.4 step 1).
var dataStartMarkers = map[string]bool{
	"1":          true,
	"2 семестр":  true,
	"2семестр":   true,
}

// knownInstructorColumns maps a sheet name to its instructor column index,
// skipping the right-to-left scan entirely when the sheet is recognized
// (§4.4 step 2). Grounded on original_source/.../constants.py
// KNOWN_INSTRUCTOR_COLUMNS.
var knownInstructorColumns = map[string]int{
	"оод (2)": 25,
	"эиб":     25,
	"юр":      25,
	"стр":     26,
	"эл":      25,
	"ттт":     25,
	"нд":      26,
}

// explicitSubgroupPattern matches the subgroup notations named in §3:
// /1/, /2/, \1\, \2\, trailing " -1", " -2".
var explicitSubgroupPattern = regexp.MustCompile(`/[12]/|\\[12]\\|\s-[12]$`)

// groupNamePattern matches a well-formed group code per §3: a run of
// Cyrillic letters, a dash, two digits, and an optional trailing letter.
var groupNamePattern = regexp.MustCompile(
	`^[А-ЯӘҒҚҢӨҰҮІа-яәғқңөұүі]+-\d{2}[А-Яа-я]?( О)?$`,
)

// studyFormPattern matches the study-form suffixes /у/ and /г/, which are
// never subgroup notation even though they share the slash syntax (§3).
var studyFormPattern = regexp.MustCompile(`/[уг]/`)

const (
	// totalWeeks is the 15-week semester length the hours law (§4.1) is
	// defined over: 8 odd weeks + 7 even weeks.
	oddWeeksCount  = 8
	evenWeeksCount = 7
	totalWeeks     = oddWeeksCount + evenWeeksCount
)
