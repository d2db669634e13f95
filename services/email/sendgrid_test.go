package emailsvc

import (
	"encoding/base64"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/tests"
)

func Test_sendgridService_prepare(t *testing.T) {
	conf := testutil.NewConfig()
	svc := NewSendgridService(conf, testutil.NewLogger(conf)).(*sendgridService)

	ics := []byte("BEGIN:VCALENDAR")
	m := svc.prepare(core.EmailMessage{
		To:          []mail.Address{{Name: "Alex Thompson", Address: "alex@tutormate.test"}},
		Bcc:         []mail.Address{{Address: "audit@tutormate.test"}},
		Subject:     "Your session with Michael Chen is booked",
		TextContent: "See you there",
		Attachments: []core.Attachment{{Filename: "session.ics", ContentType: "text/calendar", Content: ics}},
	})

	assert.Equal(t, "noreply@tutormate.test", m.From.Address)
	require.Len(t, m.Personalizations, 1)
	p := m.Personalizations[0]
	assert.Equal(t, "[TutorMate] Your session with Michael Chen is booked", p.Subject)
	require.Len(t, p.To, 1)
	assert.Equal(t, "alex@tutormate.test", p.To[0].Address)
	require.Len(t, p.BCC, 1)
	assert.Equal(t, "audit@tutormate.test", p.BCC[0].Address)

	// text only: no html part
	require.Len(t, m.Content, 1)
	assert.Equal(t, "text/plain", m.Content[0].Type)

	require.Len(t, m.Attachments, 1)
	assert.Equal(t, "session.ics", m.Attachments[0].Filename)
	assert.Equal(t, base64.StdEncoding.EncodeToString(ics), m.Attachments[0].Content)
}
