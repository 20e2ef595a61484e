package workload

import (
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixtureRow is a small CSV row shape used only to build Sheet fixtures for
// tests, exercising the teacher's own CSV dependency (gocarina/gocsv)
// without pulling CSV parsing into the production path (SPEC_FULL.md §9).
type fixtureRow struct {
	Marker     string `csv:"marker"`
	Subject    string `csv:"subject"`
	Group      string `csv:"group"`
	Language   string `csv:"language"`
	Students   string `csv:"students"`
	Lectures   string `csv:"lectures"`
	Practicals string `csv:"practicals"`
	Labs       string `csv:"labs"`
	Instructor string `csv:"instructor"`
}

const fixtureCSV = `marker,subject,group,language,students,lectures,practicals,labs,instructor
1,Механика,АРХ-31,каз,12,30,8,7,проф. Смайыл
,,АРХ-32,каз,13,,,,проф. Смайыл
`

func sheetFromFixtureCSV(t *testing.T, sheetName string, csvText string, instructorCol int) Sheet {
	t.Helper()
	var records []fixtureRow
	require.NoError(t, gocsv.UnmarshalString(csvText, &records))

	var rows []Row
	for _, rec := range records {
		row := make(Row, instructorCol+1)
		row[0] = rec.Marker
		row[ColSubject] = rec.Subject
		row[ColGroup] = rec.Group
		row[ColLanguage] = rec.Language
		row[ColStudents] = rec.Students
		row[ColLectures] = rec.Lectures
		row[ColPracticals] = rec.Practicals
		row[ColLabs] = rec.Labs
		row[instructorCol] = rec.Instructor
		rows = append(rows, row)
	}
	return Sheet{Name: sheetName, Rows: rows}
}

func TestParseWorkloadFromCSVFixture(t *testing.T) {
	sheet := sheetFromFixtureCSV(t, "юр", fixtureCSV, knownInstructorColumns["юр"])

	result := ParseWorkload([]Sheet{sheet}, zap.NewNop())
	require.Empty(t, result.Warnings)
	assert.NotEmpty(t, result.Streams)

	var sawLecture bool
	for _, s := range result.Streams {
		if s.Subject == "Механика" {
			sawLecture = true
			assert.Equal(t, []string{"АРХ-31", "АРХ-32"}, s.Groups)
		}
	}
	assert.True(t, sawLecture)
}
