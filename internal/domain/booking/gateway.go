package booking

import (
	"context"
	"time"
)

// Event is a calendar entry to be inserted in a site's calendar.
type Event struct {
	Summary  string
	Start    time.Time
	End      time.Time
	TimeZone string
}

// CalendarGateway is the external calendar collaborator. It owns all
// authentication and token lifecycle; callers only see free/busy and inserts.
type CalendarGateway interface {
	FreeBusy(
		ctx context.Context,
		calendarID string,
		timeMin time.Time,
		timeMax time.Time,
	) ([]BusyInterval, error)

	InsertEvent(
		ctx context.Context,
		calendarID string,
		ev Event,
	) (string, error)
}
