package booking

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/sites"
)

type GetAvailability struct {
	gateway domain.CalendarGateway
	sites   *sites.Registry
	loc     *time.Location
}

func NewGetAvailability(
	gateway domain.CalendarGateway,
	registry *sites.Registry,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		gateway: gateway,
		sites:   registry,
		loc:     loc,
	}
}

// Execute returns the free slots for a site on a date. A gateway failure is
// treated as "no data": the caller sees an empty list, never an error page.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	siteName string,
	date time.Time,
) ([]domain.Slot, error) {

	site, err := uc.sites.Get(siteName)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.gateway.FreeBusy(ctx, site.CalendarID, dayStart, dayEnd)
	if err != nil {
		slog.Warn("freebusy query failed, returning empty availability",
			"site", site.Name,
			"date", dayStart.Format("2006-01-02"),
			"error", err,
		)
		return []domain.Slot{}, nil
	}

	return domain.FreeSlots(date, uc.loc, busy), nil
}
