package workload

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// ParseResult is the outcome of parsing every sheet handed to the parser:
// the streams recovered plus every recoverable warning encountered along
// the way (§7: warnings, never a fatal error, for per-sheet/per-row
// failures).
type ParseResult struct {
	Streams  []model.Stream
	Warnings []error
}

// ParseWorkload runs the C4 orchestration over every sheet: data-start
// detection, instructor-column discovery, subject forward-fill, block
// grouping, and C2+C3 invocation per block. One sheet's failure never
// aborts the others (§4.4, §7).
func ParseWorkload(sheets []Sheet, log *zap.Logger) ParseResult {
	if log == nil {
		log = zap.NewNop()
	}
	ids := NewStreamIDGenerator()
	result := ParseResult{}

	for _, sheet := range sheets {
		streams, warnings := parseSheet(sheet, ids, log)
		result.Streams = append(result.Streams, streams...)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result
}

func parseSheet(sheet Sheet, ids *StreamIDGenerator, log *zap.Logger) ([]model.Stream, []error) {
	var warnings []error

	dataStart, err := findDataStart(sheet)
	if err != nil {
		log.Warn("sheet skipped: no data-start marker", zap.String("sheet", sheet.Name))
		return nil, []error{err}
	}

	instructorCol, err := findInstructorColumn(sheet)
	if err != nil {
		log.Warn("sheet skipped: no instructor column", zap.String("sheet", sheet.Name))
		return nil, []error{err}
	}

	blocks := forwardFillAndGroupBySubject(sheet, dataStart)

	var streams []model.Stream
	for _, block := range blocks {
		pattern := ClassifyPattern(block.rows)
		blockStreams, blockErrs := ExtractStreams(pattern, sheet.Name, block.subject, block.rows, block.rowIndex, instructorCol, ids)
		streams = append(streams, blockStreams...)
		for _, e := range blockErrs {
			log.Warn("row skipped", zap.String("sheet", sheet.Name), zap.Error(e))
		}
		warnings = append(warnings, blockErrs...)
	}

	return streams, warnings
}

// findDataStart scans column 0 top-down for the first data-start marker
// (§4.4 step 1) and returns the index of the first data row, skipping one
// header row when the match is a semester marker rather than the bare "1".
func findDataStart(sheet Sheet) (int, error) {
	for i, row := range sheet.Rows {
		cell := row.At(0)
		if !dataStartMarkers[cell] {
			continue
		}
		if cell == "1" {
			return i, nil
		}
		return i + 1, nil
	}
	return 0, newSheetError(KindDataStartNotFound, sheet.Name, "no data-start marker found in column 0")
}

// findInstructorColumn discovers the instructor column for a sheet (§4.4
// step 2): a known-column lookup first, then a right-to-left scan of rows
// 11..min(50, last) for instructor-marker substrings.
func findInstructorColumn(sheet Sheet) (int, error) {
	if col, ok := knownInstructorColumns[strings.ToLower(strings.TrimSpace(sheet.Name))]; ok {
		if col >= 0 {
			return col, nil
		}
	}

	width := 0
	for _, row := range sheet.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	lastRow := len(sheet.Rows) - 1
	scanEnd := lastRow
	if scanEnd > 50 {
		scanEnd = 50
	}
	scanStart := 11
	if scanStart > scanEnd {
		return 0, newSheetError(KindInstructorColumnNotFound, sheet.Name, "too few rows to scan for instructor markers")
	}

	for col := width - 1; col >= 0; col-- {
		for rowIdx := scanStart; rowIdx <= scanEnd; rowIdx++ {
			if rowIdx >= len(sheet.Rows) {
				continue
			}
			if cellHasInstructorMarker(sheet.Rows[rowIdx].At(col)) {
				return col, nil
			}
		}
	}

	return 0, newSheetError(KindInstructorColumnNotFound, sheet.Name, "no column matched an instructor marker")
}

func cellHasInstructorMarker(cell string) bool {
	lower := strings.ToLower(cell)
	for _, marker := range instructorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// forwardFillAndGroupBySubject partitions the sheet's data region into
// contiguous subject blocks (§4.4 steps 3-4): a blank subject cell inherits
// the most recent non-blank subject above it, then contiguous rows sharing
// a (forward-filled) subject become one block.
func forwardFillAndGroupBySubject(sheet Sheet, dataStart int) []subjectBlock {
	var blocks []subjectBlock
	var current *subjectBlock
	lastSubject := ""

	for i := dataStart; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		subject := row.At(ColSubject)
		if subject == "" {
			subject = lastSubject
		} else {
			lastSubject = subject
		}
		if subject == "" {
			continue
		}

		if current == nil || current.subject != subject {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &subjectBlock{subject: subject}
		}
		current.rows = append(current.rows, row)
		current.rowIndex = append(current.rowIndex, i)
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}
