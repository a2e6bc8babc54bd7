package rental

import (
	"context"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

type ClearManualBlocks struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail AvailabilityCache
}

func NewClearManualBlocks(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avail AvailabilityCache,
) *ClearManualBlocks {
	return &ClearManualBlocks{
		repo:  repo,
		audit: audit,
		avail: avail,
	}
}

func (uc *ClearManualBlocks) Execute(
	ctx context.Context,
	itemID uint,
	ownerID uint,
) (int, error) {

	item, err := uc.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return 0, httperr.ErrBusiness("item_not_found")
	}

	if item.OwnerID != ownerID {
		return 0, httperr.ErrBusiness("not_authorized")
	}

	removed, err := uc.repo.DeleteAllManualBlocks(ctx, item.ID)
	if err != nil {
		return 0, err
	}

	if uc.avail != nil {
		uc.avail.Invalidate(ctx, item.ID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "manual_blocks_cleared",
		Entity:   "item",
		EntityID: &item.ID,
		Metadata: map[string]any{"removed": removed},
	})

	return int(removed), nil
}
