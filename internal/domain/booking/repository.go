package booking

import (
	"context"

	"github.com/psiboxes/box-scheduler/internal/models"
)

type Repository interface {
	// -------- Reservation (create / conflict) --------

	// CreateReservationIfFree inserts a pending reservation unless another
	// pending or confirmed reservation already holds the same (site, date, hour).
	// Returns the "slot_taken" business error on conflict.
	CreateReservationIfFree(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (state change) --------
	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reporting --------
	ListConfirmedReservations(
		ctx context.Context,
	) ([]models.Reservation, error)

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPayments(
		ctx context.Context,
	) ([]models.Payment, error)
}
