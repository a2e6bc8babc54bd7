package rental

import (
	"context"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

// OwnerUpdateStatus lets the item's owner move a rental through the
// state machine. Cancellation is delegated to CancelRental so the
// calendar is always freed together with the status change.
type OwnerUpdateStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cancel *CancelRental
}

func NewOwnerUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cancel *CancelRental,
) *OwnerUpdateStatus {
	return &OwnerUpdateStatus{
		repo:   repo,
		audit:  audit,
		cancel: cancel,
	}
}

func (uc *OwnerUpdateStatus) Execute(
	ctx context.Context,
	rentalID uint,
	ownerID uint,
	newStatus string,
) (*models.Rental, error) {

	target := domain.Status(newStatus)
	if !domain.IsValid(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	r, err := uc.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, httperr.ErrBusiness("rental_not_found")
	}

	item, err := uc.repo.GetItemByID(ctx, r.ItemID)
	if err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	if item.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	if target == domain.StatusCancelled {
		return uc.cancel.Execute(ctx, rentalID, ownerID)
	}

	if !domain.CanTransition(domain.Status(r.Status), target) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	switch target {
	case domain.StatusCompleted:
		now := domain.Today()
		if err := domain.Complete(r, now); err != nil {
			return nil, err
		}
	default:
		r.Status = string(target)
	}

	if err := uc.repo.UpdateRental(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "rental_status_updated",
		Entity:   "rental",
		EntityID: &r.ID,
		Metadata: map[string]any{"status": newStatus},
	})

	return r, nil
}
