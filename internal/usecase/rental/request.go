package rental

import (
	"context"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RequestRentalInput struct {
	ItemID   uint
	RenterID uint

	StartDate string
	EndDate   string
}

// ======================================================
// USE CASE
// ======================================================

type RequestRental struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail AvailabilityCache
}

func NewRequestRental(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avail AvailabilityCache,
) *RequestRental {
	return &RequestRental{
		repo:  repo,
		audit: audit,
		avail: avail,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestRental) Execute(
	ctx context.Context,
	in RequestRentalInput,
) (*models.Rental, error) {

	// --------------------------------------------------
	// 1. Dates: format, past start, inverted range
	// --------------------------------------------------
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateRange(start, end, domain.Today()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Item: must be approved and switched on
	// --------------------------------------------------
	item, err := uc.repo.GetItemByID(ctx, in.ItemID)
	if err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	if item.Status != "approved" || !item.IsAvailable {
		return nil, httperr.ErrBusiness("item_unavailable")
	}

	// --------------------------------------------------
	// 3. Price: inclusive day count
	// --------------------------------------------------
	total := domain.TotalPrice(item.PricePerDay, start, end)

	// --------------------------------------------------
	// 4. Rental + blocks in one transaction
	// --------------------------------------------------
	var created *models.Rental

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		if err := tx.AssertRangeFree(ctx, item.ID, start, end); err != nil {
			return err
		}

		r := &models.Rental{
			ItemID:     item.ID,
			RenterID:   in.RenterID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: total,
			Status:     string(domain.InitialStatus()),
		}

		if err := tx.CreateRental(ctx, r); err != nil {
			return err
		}

		// one block per rented day; a concurrent winner makes the
		// unique index fire here and the whole unit rolls back
		for d := range domain.DatesIn(start, end) {
			b := &models.DateBlock{
				ItemID:   item.ID,
				Date:     d,
				Reason:   string(domain.ReasonBookingHold),
				RentalID: &r.ID,
			}
			if err := tx.InsertBlock(ctx, b); err != nil {
				return err
			}
		}

		created = r
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.avail != nil {
		uc.avail.Invalidate(ctx, item.ID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RenterID,
		Action:   "rental_requested",
		Entity:   "rental",
		EntityID: &created.ID,
	})

	return created, nil
}
