package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(subject, specialty, group, language, students, lectures, practicals, labs string) Row {
	r := make(Row, ColLabs+1)
	r[ColSubject] = subject
	r[ColSpecialty] = specialty
	r[ColGroup] = group
	r[ColLanguage] = language
	r[ColStudents] = students
	r[ColLectures] = lectures
	r[ColPracticals] = practicals
	r[ColLabs] = labs
	return r
}

func TestClassifyPatternEmptyBlock(t *testing.T) {
	assert.Equal(t, Pattern1a, ClassifyPattern(nil))
}

func TestClassifyPatternExplicitSubgroup(t *testing.T) {
	rows := []Row{
		row("Physics", "", "АРХ-21 О/1/", "каз", "12", "30", "8", "7"),
		row("Physics", "", "АРХ-21 О/2/", "каз", "13", "30", "8", "7"),
	}
	assert.Equal(t, PatternExplicitSubgroup, ClassifyPattern(rows))
}

func TestClassifyPatternImplicitSubgroup(t *testing.T) {
	rows := []Row{
		row("Physics", "", "СТР-21", "каз", "12", "30", "8", "7"),
		row("Physics", "", "СТР-21", "каз", "13", "", "8", "7"),
	}
	assert.Equal(t, PatternImplicitSubgroup, ClassifyPattern(rows))
}

func TestClassifyPattern1aHighFillRate(t *testing.T) {
	rows := []Row{
		row("Physics", "", "G1", "каз", "10", "30", "8", ""),
		row("Physics", "", "G2", "каз", "10", "", "8", ""),
		row("Physics", "", "G3", "каз", "10", "", "8", ""),
	}
	assert.Equal(t, Pattern1a, ClassifyPattern(rows))
}

func TestClassifyPattern1bLowFillRate(t *testing.T) {
	rows := []Row{
		row("Physics", "", "G1", "каз", "10", "30", "8", "7"),
		row("Physics", "", "G2", "каз", "10", "", "", ""),
		row("Physics", "", "G3", "каз", "10", "", "", ""),
	}
	assert.Equal(t, Pattern1b, ClassifyPattern(rows))
}
