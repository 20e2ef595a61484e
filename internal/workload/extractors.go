package workload

import (
	"strconv"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// ExtractStreams dispatches on the pattern tag and emits the normalized
// streams for one subject block (§4.3). Lecture handling is identical
// across all four patterns; only practical/lab handling varies, so it is
// extracted once and shared, matching §9's "tagged union, single dispatch"
// design note rather than four parallel strategy implementations.
func ExtractStreams(pattern Pattern, sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, ids *StreamIDGenerator) ([]model.Stream, []error) {
	var streams []model.Stream
	var errs []error

	lectures, lecErrs := extractLectureStreams(sheetName, subject, rows, rowIdx, instructorCol, ids)
	streams = append(streams, lectures...)
	errs = append(errs, lecErrs...)

	switch pattern {
	case Pattern1a:
		s, e := extractColumnPerRow(sheetName, subject, rows, rowIdx, instructorCol, model.Practical, ColPracticals, ids)
		streams, errs = append(streams, s...), append(errs, e...)
		s, e = extractColumnPerRow(sheetName, subject, rows, rowIdx, instructorCol, model.Lab, ColLabs, ids)
		streams, errs = append(streams, s...), append(errs, e...)
	case Pattern1b:
		s, e := extractColumnRunLength(sheetName, subject, rows, rowIdx, instructorCol, model.Practical, ColPracticals, ids)
		streams, errs = append(streams, s...), append(errs, e...)
		s, e = extractColumnRunLength(sheetName, subject, rows, rowIdx, instructorCol, model.Lab, ColLabs, ids)
		streams, errs = append(streams, s...), append(errs, e...)
	case PatternImplicitSubgroup:
		s, e := extractColumnFirstOccurrence(sheetName, subject, rows, rowIdx, instructorCol, model.Practical, ColPracticals, ids)
		streams, errs = append(streams, s...), append(errs, e...)
		s, e = extractColumnPerRowFlagged(sheetName, subject, rows, rowIdx, instructorCol, model.Lab, ColLabs, ids, false, true)
		streams, errs = append(streams, s...), append(errs, e...)
	case PatternExplicitSubgroup:
		s, e := extractColumnPerRowFlagged(sheetName, subject, rows, rowIdx, instructorCol, model.Practical, ColPracticals, ids, true, false)
		streams, errs = append(streams, s...), append(errs, e...)
		s, e = extractColumnPerRowFlagged(sheetName, subject, rows, rowIdx, instructorCol, model.Lab, ColLabs, ids, true, false)
		streams, errs = append(streams, s...), append(errs, e...)
	}

	return streams, errs
}

// extractLectureStreams groups a block's rows by (normalized) instructor,
// preserving file order, and emits one lecture stream per instructor with
// positive summed lecture hours — identical for all four patterns (§4.3
// preamble).
func extractLectureStreams(sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, ids *StreamIDGenerator) ([]model.Stream, []error) {
	type group struct {
		instructor string
		indexes    []int
	}
	var order []string
	byInstructor := make(map[string]*group)

	for i := range rows {
		instructor := NormalizeInstructorName(rows[i].At(instructorCol))
		g, ok := byInstructor[instructor]
		if !ok {
			g = &group{instructor: instructor}
			byInstructor[instructor] = g
			order = append(order, instructor)
		}
		g.indexes = append(g.indexes, i)
	}

	var streams []model.Stream
	var errs []error

	for _, instructor := range order {
		g := byInstructor[instructor]
		total := 0
		for _, i := range g.indexes {
			total += parseHours(rows[i].At(ColLectures))
		}
		if total <= 0 {
			continue
		}
		hours, err := DecomposeHours(total)
		if err != nil {
			errs = append(errs, newRowError(KindInvalidHours, sheetName, rowIdx[g.indexes[0]], err.Error()))
			continue
		}

		var groups []string
		var provRows []int
		studentCount := 0
		for _, i := range g.indexes {
			groups = append(groups, rows[i].At(ColGroup))
			studentCount += parseHours(rows[i].At(ColStudents))
			provRows = append(provRows, rowIdx[i])
		}

		streams = append(streams, model.Stream{
			ID:           ids.Next(subject, model.Lecture, instructor),
			Subject:      subject,
			StreamType:   model.Lecture,
			Instructor:   instructor,
			Groups:       groups,
			StudentCount: studentCount,
			Language:     parseLanguage(rows[g.indexes[0]].At(ColLanguage)),
			Hours:        hours,
			Provenance:   model.Provenance{Sheet: sheetName, Rows: provRows},
		})
	}

	return streams, errs
}

// newColumnStream builds a one-row stream for the given hours column,
// shared by every practical/lab extraction variant.
func newColumnStream(sheetName, subject string, row Row, rowIndex, instructorCol int, streamType model.StreamType, col int, ids *StreamIDGenerator, subgroup, implicitSubgroup bool) (model.Stream, error, bool) {
	cell := row.At(col)
	if !hasPositiveHours(cell) {
		return model.Stream{}, nil, false
	}
	total, _ := strconv.Atoi(cell)
	hours, err := DecomposeHours(total)
	if err != nil {
		return model.Stream{}, newRowError(KindInvalidHours, sheetName, rowIndex, err.Error()), false
	}
	instructor := NormalizeInstructorName(row.At(instructorCol))
	return model.Stream{
		ID:                 ids.Next(subject, streamType, instructor),
		Subject:            subject,
		StreamType:         streamType,
		Instructor:         instructor,
		Groups:             []string{row.At(ColGroup)},
		StudentCount:       parseHours(row.At(ColStudents)),
		Language:           parseLanguage(row.At(ColLanguage)),
		Hours:              hours,
		Provenance:         model.Provenance{Sheet: sheetName, Rows: []int{rowIndex}},
		IsSubgroup:         subgroup,
		IsImplicitSubgroup: implicitSubgroup,
	}, nil, true
}

// extractColumnPerRow implements pattern 1a's rule for one hours column:
// every row with positive hours in that column becomes its own stream.
func extractColumnPerRow(sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, streamType model.StreamType, col int, ids *StreamIDGenerator) ([]model.Stream, []error) {
	return extractColumnPerRowFlagged(sheetName, subject, rows, rowIdx, instructorCol, streamType, col, ids, false, false)
}

func extractColumnPerRowFlagged(sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, streamType model.StreamType, col int, ids *StreamIDGenerator, subgroup, implicitSubgroup bool) ([]model.Stream, []error) {
	var streams []model.Stream
	var errs []error
	for i := range rows {
		s, err, ok := newColumnStream(sheetName, subject, rows[i], rowIdx[i], instructorCol, streamType, col, ids, subgroup, implicitSubgroup)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			streams = append(streams, s)
		}
	}
	return streams, errs
}

// extractColumnFirstOccurrence implements the implicit_subgroup rule for
// practicals (§4.3): rule 1a, but a group code's second and later
// occurrences in the block are silently skipped.
func extractColumnFirstOccurrence(sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, streamType model.StreamType, col int, ids *StreamIDGenerator) ([]model.Stream, []error) {
	var streams []model.Stream
	var errs []error
	seen := make(map[string]bool)
	for i := range rows {
		group := rows[i].At(ColGroup)
		if seen[group] {
			continue
		}
		seen[group] = true
		s, err, ok := newColumnStream(sheetName, subject, rows[i], rowIdx[i], instructorCol, streamType, col, ids, false, false)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			streams = append(streams, s)
		}
	}
	return streams, errs
}

// extractColumnRunLength implements pattern 1b's rule for one hours column
// (§4.3): a row with positive hours starts a new stream carrying its own
// hours; subsequent rows with a blank cell in that column append their
// group to the open stream. A non-blank row (positive or not) closes the
// previous stream. The last open stream flushes at end of block.
func extractColumnRunLength(sheetName, subject string, rows []Row, rowIdx []int, instructorCol int, streamType model.StreamType, col int, ids *StreamIDGenerator) ([]model.Stream, []error) {
	var streams []model.Stream
	var errs []error

	type open struct {
		leaderIdx    int
		hours        model.WeeklyHours
		groups       []string
		studentCount int
		provRows     []int
	}
	var current *open

	flush := func() {
		if current == nil {
			return
		}
		instructor := NormalizeInstructorName(rows[current.leaderIdx].At(instructorCol))
		streams = append(streams, model.Stream{
			ID:           ids.Next(subject, streamType, instructor),
			Subject:      subject,
			StreamType:   streamType,
			Instructor:   instructor,
			Groups:       current.groups,
			StudentCount: current.studentCount,
			Language:     parseLanguage(rows[current.leaderIdx].At(ColLanguage)),
			Hours:        current.hours,
			Provenance:   model.Provenance{Sheet: sheetName, Rows: current.provRows},
		})
		current = nil
	}

	for i := range rows {
		cell := rows[i].At(col)
		if cell == "" {
			if current != nil {
				current.groups = append(current.groups, rows[i].At(ColGroup))
				current.studentCount += parseHours(rows[i].At(ColStudents))
				current.provRows = append(current.provRows, rowIdx[i])
			}
			continue
		}

		flush()

		if !hasPositiveHours(cell) {
			continue
		}
		total, _ := strconv.Atoi(cell)
		hours, err := DecomposeHours(total)
		if err != nil {
			errs = append(errs, newRowError(KindInvalidHours, sheetName, rowIdx[i], err.Error()))
			continue
		}
		current = &open{
			leaderIdx:    i,
			hours:        hours,
			groups:       []string{rows[i].At(ColGroup)},
			studentCount: parseHours(rows[i].At(ColStudents)),
			provRows:     []int{rowIdx[i]},
		}
	}
	flush()

	return streams, errs
}
