// ABOUTME: Tests the calendar event skip filters and date extraction
package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"
)

func meetingEvent() *calendar.Event {
	return &calendar.Event{
		Id:      "evt-1",
		Summary: "Acme Corp discovery",
		Status:  "confirmed",
		Start:   &calendar.EventDateTime{DateTime: "2026-02-10T14:00:00Z"},
		Attendees: []*calendar.EventAttendee{
			{Email: "me@example.com", Self: true, ResponseStatus: "accepted"},
			{Email: "alice@acmecorp.com", ResponseStatus: "accepted"},
		},
	}
}

func TestShouldSkipEvent(t *testing.T) {
	skip, _ := shouldSkipEvent(meetingEvent())
	assert.False(t, skip)

	skip, reason := shouldSkipEvent(nil)
	assert.True(t, skip)
	assert.Equal(t, "nil event", reason)

	e := meetingEvent()
	e.Start = &calendar.EventDateTime{Date: "2026-02-10"}
	skip, reason = shouldSkipEvent(e)
	assert.True(t, skip)
	assert.Equal(t, "all-day event", reason)

	e = meetingEvent()
	e.Status = "cancelled"
	skip, _ = shouldSkipEvent(e)
	assert.True(t, skip)

	e = meetingEvent()
	e.Attendees[0].ResponseStatus = "declined"
	skip, reason = shouldSkipEvent(e)
	assert.True(t, skip)
	assert.Equal(t, "declined", reason)

	e = meetingEvent()
	e.Attendees = e.Attendees[:1]
	skip, reason = shouldSkipEvent(e)
	assert.True(t, skip)
	assert.Equal(t, "solo event (1 attendee)", reason)
}

func TestEventDate(t *testing.T) {
	assert.Equal(t, "2026-02-10", eventDate(meetingEvent()))

	e := meetingEvent()
	e.Start.DateTime = "2026-03-05T09:30:00+05:30"
	assert.Equal(t, "2026-03-05", eventDate(e))
}
