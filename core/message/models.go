package message

import (
	"errors"

	"github.com/trezcool/tutormate/core"
)

var (
	// errors
	ErrNotFound = errors.New("conversation not found")
)

type Sender string

// Senders
const (
	SenderUser  Sender = "user"
	SenderOther Sender = "other"
)

type Conversation struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	LastMessage string `json:"last_message" yaml:"last_message"`
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
	Unread      int    `json:"unread" yaml:"unread"`
}

type Message struct {
	ID        string `json:"id" yaml:"id"`
	Sender    Sender `json:"sender" yaml:"sender"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewMessage is the payload of a message being sent.
type NewMessage struct {
	Text string `json:"text" validate:"notblank"`
}

// FilterConversations keeps the conversations whose name contains search, ignoring case.
func FilterConversations(convs []Conversation, search string) []Conversation {
	search = core.CleanString(search)
	out := make([]Conversation, 0, len(convs))
	for _, c := range convs {
		if search == "" || core.ContainsFold(c.Name, search) {
			out = append(out, c)
		}
	}
	return out
}
