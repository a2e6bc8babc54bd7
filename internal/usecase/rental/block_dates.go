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

type BlockDatesInput struct {
	ItemID  uint
	OwnerID uint

	Dates  []string
	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type BlockDates struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail AvailabilityCache
}

func NewBlockDates(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avail AvailabilityCache,
) *BlockDates {
	return &BlockDates{
		repo:  repo,
		audit: audit,
		avail: avail,
	}
}

// Execute inserts one manual block per date, skipping days that are
// already held (by any reason) and never touching rental blocks.
// Returns how many blocks were actually inserted.
func (uc *BlockDates) Execute(
	ctx context.Context,
	in BlockDatesInput,
) (int, error) {

	reason := domain.BlockReason(in.Reason)
	if reason == "" {
		reason = domain.ReasonOwnerBlock
	}
	if !domain.IsManualReason(reason) {
		return 0, httperr.ErrBusiness("invalid_reason")
	}

	item, err := uc.repo.GetItemByID(ctx, in.ItemID)
	if err != nil {
		return 0, httperr.ErrBusiness("item_not_found")
	}

	if item.OwnerID != in.OwnerID {
		return 0, httperr.ErrBusiness("not_authorized")
	}

	dates := make([]models.DateBlock, 0, len(in.Dates))
	for _, s := range in.Dates {
		d, err := domain.ParseDate(s)
		if err != nil {
			return 0, err
		}
		dates = append(dates, models.DateBlock{
			ItemID: item.ID,
			Date:   d,
			Reason: string(reason),
		})
	}

	inserted := 0

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		for i := range dates {
			ok, err := tx.AddBlock(ctx, &dates[i])
			if err != nil {
				return err
			}
			if ok {
				inserted++
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
		UserID:   &in.OwnerID,
		Action:   "dates_blocked",
		Entity:   "item",
		EntityID: &item.ID,
		Metadata: map[string]any{"requested": len(in.Dates), "inserted": inserted},
	})

	return inserted, nil
}
