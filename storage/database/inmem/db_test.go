package inmemdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/message"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/storage/seed"
)

func openDB(t *testing.T) (*seed.Dataset, *inmemdb.DB) {
	ds, err := seed.Load()
	require.NoError(t, err)
	return ds, inmemdb.Open(ds)
}

func TestOpen_leavesDatasetUntouched(t *testing.T) {
	ds, db := openDB(t)
	repo := inmemdb.NewSessionRepository(db)

	_, err := repo.CreateSession(calendar.Session{ID: "new", Date: "2025-11-30", Time: "10:00 AM"})
	require.NoError(t, err)

	sessions, err := repo.QuerySessions()
	require.NoError(t, err)
	assert.Len(t, sessions, len(ds.Sessions)+1)

	// a second database starts from the same seed
	other := inmemdb.NewSessionRepository(inmemdb.Open(ds))
	sessions, err = other.QuerySessions()
	require.NoError(t, err)
	assert.Len(t, sessions, len(ds.Sessions))
}

func TestTutorRepository(t *testing.T) {
	_, db := openDB(t)
	repo := inmemdb.NewTutorRepository(db)

	tutors, err := repo.QueryAllTutors()
	require.NoError(t, err)
	assert.Len(t, tutors, 6)

	// callers cannot alter the table through the returned slice
	tutors[0].Name = "lol"
	got, err := repo.GetTutorByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", got.Name)

	_, err = repo.GetTutorByID("42")
	assert.Equal(t, tutor.ErrNotFound, err)

	reviews, err := repo.QueryReviewsByTutor("1")
	require.NoError(t, err)
	assert.Len(t, reviews, 4)

	reviews, err = repo.QueryReviewsByTutor("2")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestWalletRepository_AddTransaction(t *testing.T) {
	_, db := openDB(t)
	repo := inmemdb.NewWalletRepository(db)

	w, err := repo.AddTransaction(wallet.Transaction{ID: "t1", Type: wallet.TypeCredit, Amount: 10.25, Status: wallet.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 160.25, w.Balance)
	assert.Equal(t, "t1", w.Transactions[0].ID)

	_, err = repo.AddTransaction(wallet.Transaction{ID: "t2", Type: wallet.TypeDebit, Amount: 200, Status: wallet.StatusPending})
	assert.Equal(t, wallet.ErrInsufficientFunds, err)

	w, err = repo.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 160.25, w.Balance)
	assert.Equal(t, "t1", w.Transactions[0].ID)
}

func TestMessageRepository_AddMessage(t *testing.T) {
	_, db := openDB(t)
	repo := inmemdb.NewMessageRepository(db)

	before, err := repo.QueryMessages("1")
	require.NoError(t, err)

	msg := message.Message{ID: "99", Sender: message.SenderUser, Text: "See you!", Timestamp: "9:00 AM"}
	_, err = repo.AddMessage("1", msg)
	require.NoError(t, err)

	after, err := repo.QueryMessages("1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, msg, after[len(after)-1])

	conv, err := repo.GetConversationByID("1")
	require.NoError(t, err)
	assert.Equal(t, "See you!", conv.LastMessage)
	assert.Equal(t, "9:00 AM", conv.Timestamp)

	_, err = repo.AddMessage("42", msg)
	assert.Equal(t, message.ErrNotFound, err)
	_, err = repo.GetConversationByID("42")
	assert.Equal(t, message.ErrNotFound, err)
}

func TestCatalogRepositories(t *testing.T) {
	_, db := openDB(t)

	classes := inmemdb.NewClassRepository(db)
	c, err := classes.GetClassByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Quantum Mechanics Study Group", c.Title)
	_, err = classes.GetClassByID("42")
	assert.Equal(t, groupclass.ErrNotFound, err)

	recordings := inmemdb.NewRecordingRepository(db)
	all, err := recordings.QueryAllRecordings()
	require.NoError(t, err)
	assert.Len(t, all, 8)
	_, err = recordings.GetRecordingByID("42")
	assert.Equal(t, recording.ErrNotFound, err)
}

func TestUISessionRepository(t *testing.T) {
	_, db := openDB(t)
	repo := inmemdb.NewUISessionRepository(db)
	now := time.Date(2025, time.November, 24, 12, 0, 0, 0, time.UTC)

	fresh := session.Session{ID: "fresh", UpdatedAt: now}
	stale := session.Session{ID: "stale", UpdatedAt: now.Add(-2 * time.Hour)}
	for _, s := range []session.Session{fresh, stale} {
		_, err := repo.CreateSession(s)
		require.NoError(t, err)
	}

	fresh.Criteria.Query = "python"
	_, err := repo.UpdateSession(fresh)
	require.NoError(t, err)
	got, err := repo.GetSessionByID("fresh")
	require.NoError(t, err)
	assert.Equal(t, "python", got.Criteria.Query)

	_, err = repo.UpdateSession(session.Session{ID: "unknown"})
	assert.Equal(t, session.ErrNotFound, err)

	n, err := repo.DeleteSessionsBefore(now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = repo.GetSessionByID("stale")
	assert.Equal(t, session.ErrNotFound, err)

	require.NoError(t, repo.DeleteSession("fresh"))
	_, err = repo.GetSessionByID("fresh")
	assert.Equal(t, session.ErrNotFound, err)
}
