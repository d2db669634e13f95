package main

import (
	"fmt"
	"strings"

	"github.com/trezcool/tutormate/core/tutor"
)

func (cli *commandLine) listTutors(crit tutor.Criteria) error {
	if err := crit.Validate(cli.validate); err != nil {
		return cli.validationError(err)
	}
	res, err := cli.tutorSvc.Discover(crit)
	if err != nil {
		return err
	}

	cli.out.Println(cli.out.Bold(fmt.Sprintf("%d tutors found, sorted by %s", res.Count, res.SortLabel)))
	if res.Empty {
		cli.out.Println("No tutors match these filters.")
		if len(res.Suggestions) > 0 {
			cli.out.Println("Did you mean: " + strings.Join(res.Suggestions, ", ") + "?")
		}
		return nil
	}
	for _, t := range res.Tutors {
		line := fmt.Sprintf("%-3s %-20s %-17s $%-6.2f %.1f (%d)  %s",
			t.ID, t.Name, t.Department, t.HourlyRate, t.Rating, t.ReviewCount, strings.Join(t.Skills, ", "))
		cli.out.Println(cli.truncate(line))
	}
	return nil
}

func (cli *commandLine) showTutor(id, date string) error {
	p, err := cli.tutorSvc.Profile(id, date)
	if err != nil {
		return err
	}
	t := p.Tutor

	cli.out.Println(cli.out.Bold(t.Name) + " - " + t.Level + " " + t.Department)
	cli.out.Printf("$%.2f/hour, rated %.1f from %d reviews, %d sessions\n", t.HourlyRate, t.Rating, t.ReviewCount, t.TotalSessions)
	cli.out.Println(cli.truncate("Skills: " + strings.Join(t.Skills, ", ")))
	cli.out.Println(cli.truncate(t.Bio))

	if len(p.Reviews) > 0 {
		cli.out.Println(cli.out.Bold("Ratings"))
		for _, b := range p.Distribution {
			cli.out.Printf("  %d stars: %3d%% (%d)\n", b.Stars, b.Percentage, b.Count)
		}
	}

	cli.out.Println(cli.out.Bold("Availability"))
	if len(p.Times) == 0 {
		cli.out.Printf("  %s: no open slots\n", p.SelectedDate)
		return nil
	}
	cli.out.Printf("  %s: %s\n", p.SelectedDate, strings.Join(p.Times, ", "))
	return nil
}

func (cli *commandLine) listSkills() error {
	skills, err := cli.tutorSvc.Skills()
	if err != nil {
		return err
	}
	for _, s := range skills {
		cli.out.Println(s)
	}
	return nil
}

func (cli *commandLine) listClasses(department string) error {
	classes, err := cli.classSvc.Query(department, nil)
	if err != nil {
		return err
	}
	cli.out.Println(cli.out.Bold(fmt.Sprintf("%d group classes", len(classes))))
	for _, c := range classes {
		seats := cli.out.Green(fmt.Sprintf("%d seats left", c.SeatsLeft))
		if c.Full() {
			seats = cli.out.Red("full")
		}
		line := fmt.Sprintf("%-3s %s %s  %-30s %s  $%.2f  ", c.ID, c.Date, c.Time, c.Title, c.TutorName, c.Price)
		cli.out.Println(cli.truncate(line) + seats)
	}
	return nil
}

func (cli *commandLine) listRecordings(department, search string) error {
	lib, err := cli.recSvc.Query(department, search)
	if err != nil {
		return err
	}
	cli.out.Println(cli.out.Bold(fmt.Sprintf("%d of %d recordings, %d views in total", lib.Count, lib.Total, lib.TotalViews)))
	for _, r := range lib.Recordings {
		line := fmt.Sprintf("%-3s %-40s %s  %s  %d views", r.ID, r.Title, r.TutorName, r.Duration, r.Views)
		cli.out.Println(cli.truncate(line))
	}
	return nil
}
