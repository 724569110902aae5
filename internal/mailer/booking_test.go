package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mindcare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	fail map[string]error
}

type sentMail struct {
	to      string
	subject string
	html    string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html})
	if err, ok := f.fail[to]; ok {
		return err
	}
	return nil
}

func testEmail() model.BookingEmail {
	return model.BookingEmail{
		TherapistName: "Dr. Sarah Chen",
		BookingDate:   "2026-09-14T15:30:00Z",
		JitsiRoomCode: "mindcare-1757000000000",
		UserName:      "Pat Doe",
		UserEmail:     "pat@example.com",
	}
}

func TestDispatchFansOutToUserAndOperators(t *testing.T) {
	sender := &fakeSender{}
	d := NewBookingDispatcher(sender, []string{"ops-a@mindcare.example", "ops-b@mindcare.example"})

	require.NoError(t, d.SendBookingEmail(context.Background(), testEmail()))
	require.Len(t, sender.sent, 3, "one send per recipient")

	byTo := map[string]sentMail{}
	for _, m := range sender.sent {
		byTo[m.to] = m
	}

	user := byTo["pat@example.com"]
	assert.Equal(t, "Your Therapy Session is Confirmed", user.subject)
	assert.Contains(t, user.html, "Dr. Sarah Chen")
	assert.Contains(t, user.html, "https://meet.jit.si/mindcare-1757000000000")
	assert.Contains(t, user.html, "Monday, September 14, 2026 at 3:30 PM")

	op := byTo["ops-a@mindcare.example"]
	assert.Equal(t, "New Therapy Booking - Pat Doe", op.subject)
	assert.Contains(t, op.html, "Pat Doe (pat@example.com)")
	_, ok := byTo["ops-b@mindcare.example"]
	assert.True(t, ok)
}

func TestDispatchNoOperators(t *testing.T) {
	sender := &fakeSender{}
	d := NewBookingDispatcher(sender, nil)

	require.NoError(t, d.SendBookingEmail(context.Background(), testEmail()))
	require.Len(t, sender.sent, 1, "only the user gets an email")
}

func TestDispatchWaitsForAllAndReportsFailure(t *testing.T) {
	sender := &fakeSender{fail: map[string]error{"ops-a@mindcare.example": errors.New("bounced")}}
	d := NewBookingDispatcher(sender, []string{"ops-a@mindcare.example", "ops-b@mindcare.example"})

	err := d.SendBookingEmail(context.Background(), testEmail())
	require.Error(t, err)
	assert.Len(t, sender.sent, 3, "every send is attempted even when one fails")
}

func TestDispatchUnparseableDatePassedThrough(t *testing.T) {
	sender := &fakeSender{}
	d := NewBookingDispatcher(sender, nil)

	msg := testEmail()
	msg.BookingDate = "not-a-date"
	require.NoError(t, d.SendBookingEmail(context.Background(), msg))
	assert.Contains(t, sender.sent[0].html, "not-a-date")
}
