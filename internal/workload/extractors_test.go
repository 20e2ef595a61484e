package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

const instructorColTest = 11

func rowWithInstructor(group, students, lectures, practicals, labs, instructor string) Row {
	r := row("Math", "", group, "каз", students, lectures, practicals, labs)
	for len(r) <= instructorColTest {
		r = append(r, "")
	}
	r[instructorColTest] = instructor
	return r
}

// TestExtractStreamsPattern1b mirrors spec.md §8 scenario 6.
func TestExtractStreamsPattern1b(t *testing.T) {
	rows := []Row{
		rowWithInstructor("G1", "10", "30", "8", "7", "проф. Ivanov"),
		rowWithInstructor("G2", "10", "", "", "", "проф. Ivanov"),
		rowWithInstructor("G3", "10", "", "8", "7", "проф. Ivanov"),
		rowWithInstructor("G4", "10", "", "", "", "проф. Ivanov"),
	}
	rowIdx := []int{0, 1, 2, 3}
	ids := NewStreamIDGenerator()

	streams, errs := ExtractStreams(Pattern1b, "Sheet1", "Math", rows, rowIdx, instructorColTest, ids)
	require.Empty(t, errs)

	var lectures, practicals, labs []model.Stream
	for _, s := range streams {
		switch s.StreamType {
		case model.Lecture:
			lectures = append(lectures, s)
		case model.Practical:
			practicals = append(practicals, s)
		case model.Lab:
			labs = append(labs, s)
		}
	}

	require.Len(t, lectures, 1)
	assert.Equal(t, []string{"G1", "G2", "G3", "G4"}, lectures[0].Groups)

	require.Len(t, practicals, 2)
	assert.Equal(t, []string{"G1", "G2"}, practicals[0].Groups)
	assert.Equal(t, []string{"G3", "G4"}, practicals[1].Groups)
	assert.Equal(t, 8, practicals[0].Hours.Total)
	assert.Equal(t, 8, practicals[1].Hours.Total)

	require.Len(t, labs, 2)
	assert.Equal(t, []string{"G1", "G2"}, labs[0].Groups)
	assert.Equal(t, []string{"G3", "G4"}, labs[1].Groups)
	assert.Equal(t, 7, labs[0].Hours.Total)
}

func TestExtractStreamsPattern1a(t *testing.T) {
	rows := []Row{
		rowWithInstructor("G1", "10", "30", "8", "", "с.п. Aliyeva"),
		rowWithInstructor("G2", "10", "", "8", "", "с.п. Aliyeva"),
	}
	rowIdx := []int{0, 1}
	ids := NewStreamIDGenerator()

	streams, errs := ExtractStreams(Pattern1a, "Sheet1", "Math", rows, rowIdx, instructorColTest, ids)
	require.Empty(t, errs)

	var practicals int
	for _, s := range streams {
		if s.StreamType == model.Practical {
			practicals++
			assert.Len(t, s.Groups, 1)
		}
	}
	assert.Equal(t, 2, practicals)
}

func TestExtractStreamsExplicitSubgroup(t *testing.T) {
	rows := []Row{
		rowWithInstructor("АРХ-21 О/1/", "12", "", "8", "7", "проф. Smaiyl"),
		rowWithInstructor("АРХ-21 О/2/", "13", "", "8", "7", "проф. Smaiyl"),
	}
	rowIdx := []int{0, 1}
	ids := NewStreamIDGenerator()

	streams, errs := ExtractStreams(PatternExplicitSubgroup, "Sheet1", "Math", rows, rowIdx, instructorColTest, ids)
	require.Empty(t, errs)

	for _, s := range streams {
		if s.StreamType == model.Practical || s.StreamType == model.Lab {
			assert.True(t, s.IsSubgroup)
			assert.Len(t, s.Groups, 1)
		}
	}
}

func TestExtractStreamsImplicitSubgroupSkipsRepeat(t *testing.T) {
	rows := []Row{
		rowWithInstructor("СТР-21", "12", "", "8", "7", "проф. Bekova"),
		rowWithInstructor("СТР-21", "13", "", "8", "7", "проф. Bekova"),
	}
	rowIdx := []int{0, 1}
	ids := NewStreamIDGenerator()

	streams, errs := ExtractStreams(PatternImplicitSubgroup, "Sheet1", "Math", rows, rowIdx, instructorColTest, ids)
	require.Empty(t, errs)

	var practicals, labs int
	for _, s := range streams {
		if s.StreamType == model.Practical {
			practicals++
		}
		if s.StreamType == model.Lab {
			labs++
			assert.True(t, s.IsImplicitSubgroup)
		}
	}
	assert.Equal(t, 1, practicals)
	assert.Equal(t, 2, labs)
}

func TestExtractStreamsInvalidHoursIsWarningNotAbort(t *testing.T) {
	rows := []Row{
		rowWithInstructor("G1", "10", "1", "", "", "проф. Ivanov"),
	}
	rowIdx := []int{0}
	ids := NewStreamIDGenerator()

	streams, errs := ExtractStreams(Pattern1a, "Sheet1", "Math", rows, rowIdx, instructorColTest, ids)
	require.Len(t, errs, 1)
	assert.Empty(t, streams)
}
