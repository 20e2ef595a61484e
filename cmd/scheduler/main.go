// Command scheduler is a thin wiring example over the core: it builds an
// in-memory workload sheet and a minimal Config by hand, runs the parser
// and placement engine, and prints a summary. Loading a real workbook and
// reference-config files from disk, and rendering the result to Excel/JSON,
// are external collaborators (spec §1) this module does not implement.
// Grounded on rhyrak-go-schedule's cmd/cli/main.go: a package-level config
// struct literal, a sequential load-then-run, and a plain-text summary
// printed at the end.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rhyrak/form1-scheduler/internal/scheduler"
	"github.com/rhyrak/form1-scheduler/internal/workload"
	"github.com/rhyrak/form1-scheduler/pkg/model"
)

var demoConfig = scheduler.Config{
	Rooms: []model.Room{
		{Name: "101", Capacity: 60, Address: "Main Campus"},
		{Name: "102", Capacity: 30, Address: "Main Campus"},
		{Name: "VetHall", Capacity: 40, Address: "ул. Жангир хана, 51/4", IsSpecial: false},
	},
	GroupBuildings: map[string]scheduler.GroupBuilding{
		"ВЕТ": {Addresses: []scheduler.RoomLocation{{Address: "ул. Жангир хана, 51/4"}}},
	},
	FlexibleSubjects: map[string]bool{
		"Физическая культура": true,
	},
}

// demoSheet stands in for a workbook loaded by an external collaborator:
// one subject block in pattern 1b (§4.3), matching spec.md §8 scenario 6.
var demoSheet = workload.Sheet{
	Name: "юр",
	Rows: []workload.Row{
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"1"},
		demoRow("Информатика", "АРХ-31", "12", "30", "8", "7", "проф. Смайыл"),
		demoRow("", "АРХ-32", "13", "", "", "", "проф. Смайыл"),
	},
}

func demoRow(subject, group, students, lectures, practicals, labs, instructor string) workload.Row {
	r := make(workload.Row, workload.ColLabs+1)
	r[workload.ColSubject] = subject
	r[workload.ColGroup] = group
	r[workload.ColLanguage] = "каз"
	r[workload.ColStudents] = students
	r[workload.ColLectures] = lectures
	r[workload.ColPracticals] = practicals
	r[workload.ColLabs] = labs
	for len(r) <= 25 {
		r = append(r, "")
	}
	r[25] = instructor
	return r
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	parsed := workload.ParseWorkload([]workload.Sheet{demoSheet}, log)
	for _, w := range parsed.Warnings {
		log.Warn("parse warning", zap.Error(w))
	}
	fmt.Printf("extracted %d streams\n", len(parsed.Streams))

	cfg, err := scheduler.NewConfig(demoConfig)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	engine := scheduler.NewEngine(cfg, log.Sugar())
	result := engine.Run(parsed.Streams)

	fmt.Printf("assigned: %d, unscheduled: %d\n", result.Statistics.TotalAssigned, result.Statistics.TotalUnscheduled)
	for _, a := range result.Assignments {
		fmt.Printf("  %s: %s day=%s slot=%d room=%s\n", a.StreamID, a.Subject, a.Day, a.Slot, a.Room)
	}
	for _, u := range result.Unscheduled {
		fmt.Printf("  UNSCHEDULED %s: %s (%s)\n", u.StreamID, u.Subject, u.Reason)
	}
}
