package workload

import (
	"regexp"
	"strings"
)

// instructorPrefixPatterns are academic-rank prefixes that must be stripped
// before two instructor-cell values are considered "the same instructor".
// Grounded on original_source/.../normalization.py
// INSTRUCTOR_PREFIX_PATTERNS (Russian/Kazakh abbreviations plus the English
// "prof." and "Dr " forms; of these two, only "prof." is also an
// instructor-column marker).
var instructorPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^а\.о\.\s*`),
	regexp.MustCompile(`(?i)^а\.о\s+`),
	regexp.MustCompile(`(?i)^с\.п\.\.*\s*`),
	regexp.MustCompile(`(?i)^с\.п\s+`),
	regexp.MustCompile(`(?i)^доцент\s*`),
	regexp.MustCompile(`(?i)^д\.\s*`),
	regexp.MustCompile(`(?i)^асс\.проф\.\s*`),
	regexp.MustCompile(`(?i)^қ\.проф\.\s*`),
	regexp.MustCompile(`(?i)^проф\.\s*`),
	regexp.MustCompile(`(?i)^профессор\s*`),
	regexp.MustCompile(`(?i)^ст\.преп\.\s*`),
	regexp.MustCompile(`(?i)^преподаватель\s*`),
	regexp.MustCompile(`(?i)^п\.\s*`),
	regexp.MustCompile(`(?i)^о\.\s*`),
	regexp.MustCompile(`(?i)^prof\.\s*`),
	regexp.MustCompile(`(?i)^Dr\s+`),
}

// NormalizeInstructorName strips academic-rank prefixes and collapses
// whitespace so that "а.о. Шалаев Б.Б." and "а.о.Шалаев Б.Б." compare equal.
// This underpins the stream-uniqueness invariant (§8): "one instructor ⇒
// one stream" only holds once instructor cells are normalized this way.
func NormalizeInstructorName(name string) string {
	cleaned := strings.TrimSpace(name)
	for _, pattern := range instructorPrefixPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}
