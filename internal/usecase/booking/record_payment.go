package booking

import (
	"context"

	"github.com/psiboxes/box-scheduler/internal/audit"
	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/models"
)

type RecordPaymentInput struct {
	Psychologist string
	Amount       float64
	Date         string // "2006-01-02"
	Description  string
}

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute appends exactly one payment record. No external calls are involved.
func (uc *RecordPayment) Execute(
	ctx context.Context,
	in RecordPaymentInput,
) (*models.Payment, error) {

	if in.Psychologist == "" || in.Date == "" {
		return nil, httperr.ErrBusiness("invalid_payment")
	}

	p := &models.Payment{
		Psychologist: in.Psychologist,
		Amount:       in.Amount,
		Date:         in.Date,
		Description:  in.Description,
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Psychologist: in.Psychologist,
		Action:       "payment_recorded",
		Entity:       "payment",
		EntityID:     &p.ID,
	})

	return p, nil
}
