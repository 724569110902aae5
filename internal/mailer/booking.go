package mailer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// Sender is the slice of Client the dispatcher needs; tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// BookingDispatcher fans a booking confirmation out to the booked user and
// every configured operator address. All sends run concurrently and the
// dispatcher waits for every one to settle.
type BookingDispatcher struct {
	sender    Sender
	operators []string
}

var _ service.BookingNotifier = (*BookingDispatcher)(nil)

func NewBookingDispatcher(sender Sender, operators []string) *BookingDispatcher {
	return &BookingDispatcher{sender: sender, operators: operators}
}

func (d *BookingDispatcher) SendBookingEmail(ctx context.Context, msg model.BookingEmail) error {
	formattedDate := msg.BookingDate
	if t, err := time.Parse(time.RFC3339, msg.BookingDate); err == nil {
		formattedDate = t.Format("Monday, January 2, 2006 at 3:04 PM")
	}
	link := service.MeetingLink(msg.JitsiRoomCode)

	type send struct {
		to      string
		subject string
		html    string
	}
	sends := []send{{
		to:      msg.UserEmail,
		subject: "Your Therapy Session is Confirmed",
		html:    userBody(msg.TherapistName, formattedDate, link),
	}}
	for _, op := range d.operators {
		sends = append(sends, send{
			to:      op,
			subject: "New Therapy Booking - " + msg.UserName,
			html:    operatorBody(msg.UserName, msg.UserEmail, msg.TherapistName, formattedDate, link),
		})
	}

	errs := make([]error, len(sends))
	var wg sync.WaitGroup
	for i, m := range sends {
		wg.Add(1)
		go func(i int, m send) {
			defer wg.Done()
			errs[i] = d.sender.Send(ctx, m.to, m.subject, m.html)
		}(i, m)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func userBody(therapist, date, link string) string {
	return fmt.Sprintf(`<h1>Your therapy session is confirmed!</h1>
<p><strong>Therapist:</strong> %s</p>
<p><strong>Date &amp; Time:</strong> %s</p>
<p><strong>Video Link:</strong> <a href="%s">Join Session</a></p>
<p>Please join the session at the scheduled time using the link above.</p>
<p>Best regards,<br>The MindCare Team</p>`, therapist, date, link)
}

func operatorBody(userName, userEmail, therapist, date, link string) string {
	return fmt.Sprintf(`<h1>New Therapy Booking</h1>
<p><strong>Patient:</strong> %s (%s)</p>
<p><strong>Therapist:</strong> %s</p>
<p><strong>Date &amp; Time:</strong> %s</p>
<p><strong>Video Link:</strong> <a href="%s">%s</a></p>
<p>Please ensure you're available for this session.</p>`, userName, userEmail, therapist, date, link, link)
}
