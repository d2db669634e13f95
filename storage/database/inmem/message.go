package inmemdb

import (
	"github.com/trezcool/tutormate/core/message"
)

type messageRepository struct {
	db *messageTable
}

func NewMessageRepository(db *DB) message.Repository {
	return &messageRepository{db: db.message}
}

func (repo *messageRepository) QueryConversations() ([]message.Conversation, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]message.Conversation(nil), repo.db.conversations...), nil
}

func (repo *messageRepository) GetConversationByID(id string) (message.Conversation, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return message.Conversation{}, message.ErrNotFound
}

func (repo *messageRepository) QueryMessages(convID string) ([]message.Message, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]message.Message(nil), repo.db.messages[convID]...), nil
}

func (repo *messageRepository) AddMessage(convID string, msg message.Message) (message.Message, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, c := range repo.db.conversations {
		if c.ID == convID {
			c.LastMessage = msg.Text
			c.Timestamp = msg.Timestamp
			repo.db.conversations[i] = c
			repo.db.messages[convID] = append(repo.db.messages[convID], msg)
			return msg, nil
		}
	}
	return message.Message{}, message.ErrNotFound
}
