package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/psiboxes/box-scheduler/internal/domain/booking"
)

const freeBusyTTL = 60 * time.Second

// CachedGateway caches free/busy responses per (calendar, day) for a short
// window. Inserts invalidate the day so a fresh availability read follows a
// reservation immediately.
type CachedGateway struct {
	inner booking.CalendarGateway
	rdb   *redis.Client
}

func NewCachedGateway(inner booking.CalendarGateway, rdb *redis.Client) *CachedGateway {
	return &CachedGateway{inner: inner, rdb: rdb}
}

func freeBusyKey(calendarID string, day time.Time) string {
	return fmt.Sprintf("freebusy:%s:%s", calendarID, day.Format("2006-01-02"))
}

func (g *CachedGateway) FreeBusy(
	ctx context.Context,
	calendarID string,
	timeMin time.Time,
	timeMax time.Time,
) ([]booking.BusyInterval, error) {

	key := freeBusyKey(calendarID, timeMin)

	if raw, err := g.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached []booking.BusyInterval
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	intervals, err := g.inner.FreeBusy(ctx, calendarID, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(intervals); err == nil {
		g.rdb.Set(ctx, key, raw, freeBusyTTL)
	}

	return intervals, nil
}

func (g *CachedGateway) InsertEvent(
	ctx context.Context,
	calendarID string,
	ev booking.Event,
) (string, error) {

	eventID, err := g.inner.InsertEvent(ctx, calendarID, ev)
	if err != nil {
		return "", err
	}

	g.rdb.Del(ctx, freeBusyKey(calendarID, ev.Start))

	return eventID, nil
}
