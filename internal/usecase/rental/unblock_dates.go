package rental

import (
	"context"
	"time"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

type UnblockDates struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail AvailabilityCache
}

func NewUnblockDates(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avail AvailabilityCache,
) *UnblockDates {
	return &UnblockDates{
		repo:  repo,
		audit: audit,
		avail: avail,
	}
}

// Execute removes manual blocks only. Booking-held days survive this
// path silently; the removed count tells the owner what happened.
func (uc *UnblockDates) Execute(
	ctx context.Context,
	itemID uint,
	ownerID uint,
	dateStrs []string,
) (int, error) {

	item, err := uc.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return 0, httperr.ErrBusiness("item_not_found")
	}

	if item.OwnerID != ownerID {
		return 0, httperr.ErrBusiness("not_authorized")
	}

	dates := make([]time.Time, 0, len(dateStrs))
	for _, s := range dateStrs {
		d, err := domain.ParseDate(s)
		if err != nil {
			return 0, err
		}
		dates = append(dates, d)
	}

	removed := 0

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		for _, d := range dates {
			ok, err := tx.DeleteManualBlock(ctx, item.ID, d)
			if err != nil {
				return err
			}
			if ok {
				removed++
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}

	if uc.avail != nil {
		uc.avail.Invalidate(ctx, item.ID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "dates_unblocked",
		Entity:   "item",
		EntityID: &item.ID,
		Metadata: map[string]any{"requested": len(dateStrs), "removed": removed},
	})

	return removed, nil
}
