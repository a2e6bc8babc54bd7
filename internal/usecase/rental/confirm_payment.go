package rental

import (
	"context"

	"github.com/google/uuid"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

type ConfirmPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	rentalID uint,
	actorID uint,
	method string,
) (*models.Rental, error) {

	r, err := uc.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, httperr.ErrBusiness("rental_not_found")
	}

	if r.RenterID != actorID {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	if err := domain.Approve(r); err != nil {
		return nil, err
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		payment := &models.Payment{
			RentalID:       r.ID,
			Amount:         r.TotalPrice,
			Method:         method,
			Status:         "completed",
			TransactionRef: uuid.NewString(),
		}

		if err := tx.CreatePayment(ctx, payment); err != nil {
			return err
		}

		if err := tx.UpdateRental(ctx, r); err != nil {
			return err
		}

		// held days become rented days, still tied to this rental
		return tx.RelabelBlocksByRental(ctx, r.ID, domain.ReasonRented)
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_confirmed",
		Entity:   "rental",
		EntityID: &r.ID,
	})

	return r, nil
}
