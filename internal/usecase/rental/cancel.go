package rental

import (
	"context"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

type CancelRental struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail AvailabilityCache
}

func NewCancelRental(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avail AvailabilityCache,
) *CancelRental {
	return &CancelRental{
		repo:  repo,
		audit: audit,
		avail: avail,
	}
}

func (uc *CancelRental) Execute(
	ctx context.Context,
	rentalID uint,
	actorID uint,
) (*models.Rental, error) {

	r, err := uc.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, httperr.ErrBusiness("rental_not_found")
	}

	item, err := uc.repo.GetItemByID(ctx, r.ItemID)
	if err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	// renter or the item's owner
	if r.RenterID != actorID && item.OwnerID != actorID {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	// cancelling twice is a no-op, not an error
	if r.Status == string(domain.StatusCancelled) {
		return r, nil
	}

	now := domain.Today()
	if err := domain.Cancel(r, now); err != nil {
		return nil, err
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		if _, err := tx.DeleteBlocksByRental(ctx, r.ID); err != nil {
			return err
		}

		if err := tx.UpdateRental(ctx, r); err != nil {
			return err
		}

		payment, err := tx.GetPaymentByRental(ctx, r.ID)
		if err != nil {
			return err
		}
		if payment == nil {
			// nothing was paid yet, nothing to refund
			return nil
		}

		payment.Status = "refunded"
		return tx.UpdatePayment(ctx, payment)
	})

	if err != nil {
		return nil, err
	}

	if uc.avail != nil {
		uc.avail.Invalidate(ctx, r.ItemID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "rental_cancelled",
		Entity:   "rental",
		EntityID: &r.ID,
	})

	return r, nil
}
