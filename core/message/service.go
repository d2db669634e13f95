package message

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
)

const timestampLayout = "3:04 PM"

type (
	Repository interface {
		QueryConversations() ([]Conversation, error)
		GetConversationByID(id string) (Conversation, error)
		// QueryMessages returns the messages of a conversation, oldest first; none for unknown ids.
		QueryMessages(convID string) ([]Message, error)
		// AddMessage appends msg and makes it the conversation's last message.
		AddMessage(convID string, msg Message) (Message, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		now      func() time.Time
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate, now: time.Now}
}

func (svc *Service) QueryConversations(search string) ([]Conversation, error) {
	convs, err := svc.repo.QueryConversations()
	if err != nil {
		return nil, errors.Wrap(err, "querying conversations")
	}
	return FilterConversations(convs, search), nil
}

func (svc *Service) QueryMessages(convID string) ([]Message, error) {
	msgs, err := svc.repo.QueryMessages(core.CleanString(convID))
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}

// Send posts nm in conversation convID on behalf of the user.
func (svc *Service) Send(convID string, nm NewMessage) (Message, error) {
	if err := svc.validate.Struct(nm); err != nil {
		return Message{}, err
	}
	conv, err := svc.repo.GetConversationByID(core.CleanString(convID))
	if err != nil {
		return Message{}, err
	}
	return svc.repo.AddMessage(conv.ID, Message{
		ID:        uuid.New().String(),
		Sender:    SenderUser,
		Text:      core.CleanString(nm.Text),
		Timestamp: svc.now().Format(timestampLayout),
	})
}
