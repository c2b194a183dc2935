package booking_test

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/models"
)

// --------- gateway fake ---------

type freeBusyCall struct {
	calendarID string
	timeMin    time.Time
	timeMax    time.Time
}

type fakeGateway struct {
	busy        []domain.BusyInterval
	freeBusyErr error

	eventID   string
	insertErr error

	freeBusyCalls []freeBusyCall

	insertedCalendarID string
	insertedEvent      domain.Event
	insertCalls        int
}

func (g *fakeGateway) FreeBusy(
	_ context.Context,
	calendarID string,
	timeMin time.Time,
	timeMax time.Time,
) ([]domain.BusyInterval, error) {
	g.freeBusyCalls = append(g.freeBusyCalls, freeBusyCall{calendarID, timeMin, timeMax})
	if g.freeBusyErr != nil {
		return nil, g.freeBusyErr
	}
	return g.busy, nil
}

func (g *fakeGateway) InsertEvent(
	_ context.Context,
	calendarID string,
	ev domain.Event,
) (string, error) {
	g.insertCalls++
	if g.insertErr != nil {
		return "", g.insertErr
	}
	g.insertedCalendarID = calendarID
	g.insertedEvent = ev
	return g.eventID, nil
}

// --------- repository fake ---------

type fakeRepo struct {
	mu           sync.Mutex
	nextID       uint
	reservations []models.Reservation
	payments     []models.Payment

	createErr error
}

func (r *fakeRepo) CreateReservationIfFree(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.reservations {
		if existing.Site == res.Site &&
			existing.Date == res.Date &&
			existing.Hour == res.Hour &&
			(existing.Status == "pending" || existing.Status == "confirmed") {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	res.ID = r.nextID
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.reservations {
		if existing.ID == res.ID {
			r.reservations[i] = *res
			return nil
		}
	}
	return errors.New("reservation not found")
}

func (r *fakeRepo) ListConfirmedReservations(_ context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if res.Status == "confirmed" {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakeRepo) ListPayments(_ context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Payment(nil), r.payments...), nil
}

func (r *fakeRepo) statusCounts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int)
	for _, res := range r.reservations {
		out[res.Status]++
	}
	return out
}

// --------- audit sink fake ---------

type noopSink struct{}

func (noopSink) Log(string, string, string, string, *uint, any) error {
	return nil
}
