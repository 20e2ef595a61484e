package workload

import (
	"regexp"
	"strings"
)

// groupYearPattern pulls the two-digit number out of a group code, e.g.
// "АРХ-21 О" -> "21". Grounded on original_source/.../scheduler/utils.py:
// parse_group_year, which extracts the same run with `-(\d+)`.
var groupYearPattern = regexp.MustCompile(`-(\d+)`)

// specialtyCodePattern pulls the leading Cyrillic/Latin run off a group
// code, e.g. "АРХ-21 О" -> "АРХ". Grounded on
// original_source/.../scheduler/utils.py: parse_specialty_code.
var specialtyCodePattern = regexp.MustCompile(`^([А-ЯA-Z]+)`)

// ParseGroupYear extracts the study year (1-5) from a group code's two-digit
// suffix, e.g. "21" -> year 2. spec.md §3 only says "the second digit
// conveys the year", which reads two ways for a two-digit run; original_source's
// parse_group_year (`number // 10`) resolves the ambiguity to the tens
// digit, so that's what this reads. Defaults to year 1 when the code
// carries no parseable two-digit number, matching the permissive fallback
// the rest of the extraction pipeline relies on (a malformed code should
// never abort a row, only degrade its year classification).
func ParseGroupYear(groupCode string) int {
	match := groupYearPattern.FindStringSubmatch(groupCode)
	if match == nil {
		return 1
	}
	digits := match[1]
	if len(digits) < 2 {
		return 1
	}
	year := int(digits[0] - '0')
	if year < 1 {
		return 1
	}
	if year > 5 {
		return 5
	}
	return year
}

// ParseSpecialtyCode extracts the specialty prefix from a group code, e.g.
// "АРХ-21 О" -> "АРХ". Used by the room manager for the
// specialty-exclusive-building rule (§6) and the group-building tier
// (§4.6 tier 3).
func ParseSpecialtyCode(groupCode string) string {
	match := specialtyCodePattern.FindStringSubmatch(groupCode)
	if match == nil {
		return ""
	}
	return match[1]
}

// russianMarkerPattern matches the study-form markers that flag a group as
// Russian (§3: "/г/" or "/р/"). The digit-based subgroup notation
// (explicitSubgroupPattern) uses a disjoint character set, so the two never
// collide on the same suffix.
var russianMarkerPattern = regexp.MustCompile(`/[гр]/`)

// IsRussianGroup reports whether a group code is flagged Russian, i.e. it
// contains the study-form marker "/г/" or "/р/" (§3). Any group code that
// doesn't carry one of those markers is Kazakh.
func IsRussianGroup(groupCode string) bool {
	return russianMarkerPattern.MatchString(groupCode)
}

// HasExplicitSubgroup reports whether a group code carries one of the
// explicit subgroup notations named in §3: "/1/", "/2/", "\1\", "\2\", or a
// trailing " -1"/" -2".
func HasExplicitSubgroup(groupCode string) bool {
	return explicitSubgroupPattern.MatchString(groupCode)
}

// SubgroupNumber extracts the 1 or 2 out of an explicit subgroup notation,
// or 0 if groupCode carries none.
func SubgroupNumber(groupCode string) int {
	match := explicitSubgroupPattern.FindString(groupCode)
	if match == "" {
		return 0
	}
	for _, r := range match {
		if r == '1' {
			return 1
		}
		if r == '2' {
			return 2
		}
	}
	return 0
}

// NormalizeGroupCode trims the decorative trailing " О" (full-time marker)
// that original_source's sample codes carry, so two group codes that refer
// to the same group compare equal regardless of whether the marker is
// present. Defined as its own helper rather than folded into
// NormalizeInstructorName because group codes and instructor names are
// normalized for different reasons (dedup vs. stream identity).
func NormalizeGroupCode(groupCode string) string {
	trimmed := groupCode
	for strings.HasSuffix(trimmed, " О") {
		trimmed = strings.TrimSuffix(trimmed, " О")
	}
	return trimmed
}
