// Package seed loads the mock dataset the app is served from.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/message"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
)

//go:embed data.yaml
var data []byte

type Dataset struct {
	Tutors         []tutor.Tutor                `yaml:"tutors"`
	Reviews        []tutor.Review               `yaml:"reviews"`
	Sessions       []calendar.Session           `yaml:"sessions"`
	OpeningBalance float64                      `yaml:"opening_balance"`
	Transactions   []wallet.Transaction         `yaml:"transactions"`
	Conversations  []message.Conversation       `yaml:"conversations"`
	Messages       map[string][]message.Message `yaml:"messages"`
	GroupClasses   []groupclass.GroupClass      `yaml:"group_classes"`
	Recordings     []recording.Recording        `yaml:"recordings"`
}

// Load parses the embedded dataset and checks it.
func Load() (*Dataset, error) {
	return Parse(data)
}

// Parse parses a YAML dataset and checks it.
func Parse(b []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.UnmarshalStrict(b, &ds); err != nil {
		return nil, errors.Wrap(err, "parsing dataset")
	}
	if err := ds.Check(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Check enforces the invariants the app relies on: unique ids, known departments and bounded figures.
func (ds *Dataset) Check() error {
	ids := make(map[string]bool)
	unique := func(kind, id string) error {
		key := kind + "/" + id
		if id == "" || ids[key] {
			return fmt.Errorf("%s: missing or duplicate id %q", kind, id)
		}
		ids[key] = true
		return nil
	}

	for _, t := range ds.Tutors {
		if err := unique("tutor", t.ID); err != nil {
			return err
		}
		switch {
		case !core.IsDepartment(t.Department):
			return fmt.Errorf("tutor %s: unknown department %q", t.ID, t.Department)
		case t.Rating < 0 || t.Rating > 5:
			return fmt.Errorf("tutor %s: rating out of [0, 5]", t.ID)
		case t.ReviewCount < 0 || t.HourlyRate < 0 || t.TotalSessions < 0:
			return fmt.Errorf("tutor %s: negative figure", t.ID)
		}
	}
	for _, r := range ds.Reviews {
		if err := unique("review", r.ID); err != nil {
			return err
		}
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("review %s: rating out of [1, 5]", r.ID)
		}
		if !ids["tutor/"+r.TutorID] {
			return fmt.Errorf("review %s: unknown tutor %q", r.ID, r.TutorID)
		}
	}
	for _, s := range ds.Sessions {
		if err := unique("session", s.ID); err != nil {
			return err
		}
		if _, err := s.StartsAt(time.UTC); err != nil {
			return errors.Wrapf(err, "session %s", s.ID)
		}
	}
	if ds.OpeningBalance < 0 {
		return errors.New("negative opening balance")
	}
	for _, tx := range ds.Transactions {
		if err := unique("transaction", tx.ID); err != nil {
			return err
		}
		if tx.Amount <= 0 {
			return fmt.Errorf("transaction %s: amount must be positive", tx.ID)
		}
	}
	for _, c := range ds.Conversations {
		if err := unique("conversation", c.ID); err != nil {
			return err
		}
	}
	for convID := range ds.Messages {
		if !ids["conversation/"+convID] {
			return fmt.Errorf("messages: unknown conversation %q", convID)
		}
	}
	for _, c := range ds.GroupClasses {
		if err := unique("class", c.ID); err != nil {
			return err
		}
		if !core.IsDepartment(c.Department) {
			return fmt.Errorf("class %s: unknown department %q", c.ID, c.Department)
		}
		if c.Enrolled < 0 || c.Enrolled > c.MaxStudents {
			return fmt.Errorf("class %s: enrolled out of [0, max_students]", c.ID)
		}
	}
	for _, r := range ds.Recordings {
		if err := unique("recording", r.ID); err != nil {
			return err
		}
		if !core.IsDepartment(r.Department) {
			return fmt.Errorf("recording %s: unknown department %q", r.ID, r.Department)
		}
		if r.Views < 0 {
			return fmt.Errorf("recording %s: negative views", r.ID)
		}
	}
	return nil
}
