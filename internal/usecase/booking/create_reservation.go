package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/psiboxes/box-scheduler/internal/audit"
	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/models"
	"github.com/psiboxes/box-scheduler/internal/sites"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Site         string
	Psychologist string

	Date string // "2006-01-02"
	Hour string // "9:00"

	DurationMin int // 0 means the 60-minute default
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo    domain.Repository
	gateway domain.CalendarGateway
	sites   *sites.Registry
	audit   *audit.Dispatcher
	loc     *time.Location
}

func NewCreateReservation(
	repo domain.Repository,
	gateway domain.CalendarGateway,
	registry *sites.Registry,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateReservation {
	return &CreateReservation{
		repo:    repo,
		gateway: gateway,
		sites:   registry,
		audit:   auditDispatcher,
		loc:     loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a reservation in two phases: a pending store row reserves the
// slot, then the calendar insert confirms it. A confirmed row therefore always
// has a calendar event behind it, and a gateway failure leaves no confirmed row.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Site
	// --------------------------------------------------
	site, err := uc.sites.Get(in.Site)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Date / hour in site-local time
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Hour,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := time.Duration(in.DurationMin) * time.Minute
	if duration <= 0 {
		duration = domain.SlotDuration
	}
	end := start.Add(duration)

	// --------------------------------------------------
	// 3. Pending row (conditional insert holds the slot)
	// --------------------------------------------------
	res := &models.Reservation{
		PublicID:     uuid.New(),
		Psychologist: in.Psychologist,
		Site:         site.Name,
		Date:         start.Format("2006-01-02"),
		Hour:         fmt.Sprintf("%d:%02d", start.Hour(), start.Minute()),
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservationIfFree(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Calendar insert
	// --------------------------------------------------
	eventID, err := uc.gateway.InsertEvent(ctx, site.CalendarID, domain.Event{
		Summary:  "Reserva de " + in.Psychologist,
		Start:    start,
		End:      end,
		TimeZone: uc.loc.String(),
	})
	if err != nil {
		uc.failPending(ctx, res, err)
		return nil, httperr.ErrBusiness("calendar_unavailable")
	}

	// --------------------------------------------------
	// 5. Confirm
	// --------------------------------------------------
	now := time.Now().In(uc.loc)
	if err := domain.Confirm(res, eventID, now); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Site:         site.Name,
		Psychologist: in.Psychologist,
		Action:       "reservation_confirmed",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}

func (uc *CreateReservation) failPending(ctx context.Context, res *models.Reservation, cause error) {
	now := time.Now().In(uc.loc)
	if err := domain.Fail(res, now); err != nil {
		return
	}
	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		slog.Error("could not mark reservation as failed",
			"reservation", res.PublicID,
			"error", err,
		)
	}

	uc.audit.Dispatch(audit.Event{
		Site:         res.Site,
		Psychologist: res.Psychologist,
		Action:       "reservation_failed",
		Entity:       "reservation",
		EntityID:     &res.ID,
		Metadata:     map[string]any{"cause": cause.Error()},
	})
}
