package inmemdb

import (
	"sync"

	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/message"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
	"github.com/trezcool/tutormate/storage/seed"
)

type (
	// DB holds the seeded dataset and the records created while the app runs.
	DB struct {
		tutor     *tutorTable
		session   *sessionTable
		wallet    *walletTable
		message   *messageTable
		class     *classTable
		recording *recordingTable
		ui        *uiSessionTable
	}

	tutorTable struct {
		sync.RWMutex
		tutors  []tutor.Tutor
		reviews []tutor.Review
	}

	sessionTable struct {
		sync.RWMutex
		table []calendar.Session
	}

	walletTable struct {
		sync.RWMutex
		balance      float64
		transactions []wallet.Transaction // newest first
	}

	messageTable struct {
		sync.RWMutex
		conversations []message.Conversation
		messages      map[string][]message.Message
	}

	classTable struct {
		sync.RWMutex
		table []groupclass.GroupClass
	}

	recordingTable struct {
		sync.RWMutex
		table []recording.Recording
	}

	uiSessionTable struct {
		sync.RWMutex
		table map[string]*session.Session
	}
)

// Open copies ds into a new database. ds is left untouched.
func Open(ds *seed.Dataset) *DB {
	messages := make(map[string][]message.Message, len(ds.Messages))
	for id, msgs := range ds.Messages {
		messages[id] = append([]message.Message(nil), msgs...)
	}

	return &DB{
		tutor: &tutorTable{
			tutors:  append([]tutor.Tutor(nil), ds.Tutors...),
			reviews: append([]tutor.Review(nil), ds.Reviews...),
		},
		session: &sessionTable{table: append([]calendar.Session(nil), ds.Sessions...)},
		wallet: &walletTable{
			balance:      ds.OpeningBalance,
			transactions: append([]wallet.Transaction(nil), ds.Transactions...),
		},
		message: &messageTable{
			conversations: append([]message.Conversation(nil), ds.Conversations...),
			messages:      messages,
		},
		class:     &classTable{table: append([]groupclass.GroupClass(nil), ds.GroupClasses...)},
		recording: &recordingTable{table: append([]recording.Recording(nil), ds.Recordings...)},
		ui:        &uiSessionTable{table: make(map[string]*session.Session)},
	}
}
