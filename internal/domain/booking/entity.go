package booking

import (
	"time"

	"github.com/psiboxes/box-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm marks a pending reservation as accepted by the external calendar.
// The event id is the reconciliation key between store and calendar.
func Confirm(res *models.Reservation, eventID string, now time.Time) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	res.CalendarEventID = eventID
	res.UpdatedAt = now
	return nil
}

// Fail marks a pending reservation as rejected. Failed rows never appear in
// reports and never block the slot.
func Fail(res *models.Reservation, now time.Time) error {
	if err := CanFail(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusFailed)
	res.UpdatedAt = now
	return nil
}
