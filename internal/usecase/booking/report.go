package booking

import (
	"context"

	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/models"
)

type Report struct {
	Reservations []models.Reservation `json:"reservations"`
	Payments     []models.Payment     `json:"payments"`
}

type GetReport struct {
	repo domain.Repository
}

func NewGetReport(repo domain.Repository) *GetReport {
	return &GetReport{repo: repo}
}

// Execute returns every confirmed reservation and every payment, in storage
// order. No filtering or aggregation.
func (uc *GetReport) Execute(ctx context.Context) (*Report, error) {
	reservations, err := uc.repo.ListConfirmedReservations(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := uc.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		Reservations: reservations,
		Payments:     payments,
	}, nil
}
