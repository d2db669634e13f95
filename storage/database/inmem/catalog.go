package inmemdb

import (
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/recording"
)

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) groupclass.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) QueryAllClasses() ([]groupclass.GroupClass, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]groupclass.GroupClass(nil), repo.db.table...), nil
}

func (repo *classRepository) GetClassByID(id string) (groupclass.GroupClass, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.table {
		if c.ID == id {
			return c, nil
		}
	}
	return groupclass.GroupClass{}, groupclass.ErrNotFound
}

type recordingRepository struct {
	db *recordingTable
}

func NewRecordingRepository(db *DB) recording.Repository {
	return &recordingRepository{db: db.recording}
}

func (repo *recordingRepository) QueryAllRecordings() ([]recording.Recording, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]recording.Recording(nil), repo.db.table...), nil
}

func (repo *recordingRepository) GetRecordingByID(id string) (recording.Recording, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, r := range repo.db.table {
		if r.ID == id {
			return r, nil
		}
	}
	return recording.Recording{}, recording.ErrNotFound
}
