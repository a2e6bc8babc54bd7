package rental

import (
	"context"
	"time"

	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

// ======================================================
// IS RANGE FREE
// ======================================================

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute reporta se todos os dias de [start, end] estão livres.
// Um bloqueio exatamente em start ou end já torna o intervalo indisponível.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	itemID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	if _, err := uc.repo.GetItemByID(ctx, itemID); err != nil {
		return false, httperr.ErrBusiness("item_not_found")
	}

	count, err := uc.repo.CountBlocksInRange(ctx, itemID, start, end)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// ======================================================
// LIST AVAILABLE DATES
// ======================================================

type ListAvailableDates struct {
	repo domain.Repository
}

func NewListAvailableDates(repo domain.Repository) *ListAvailableDates {
	return &ListAvailableDates{repo: repo}
}

// Execute enumerates the free dates of [today, today+horizonDays] in
// chronological order.
func (uc *ListAvailableDates) Execute(
	ctx context.Context,
	itemID uint,
	horizonDays int,
) ([]time.Time, error) {

	if _, err := uc.repo.GetItemByID(ctx, itemID); err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	today := domain.Today()
	end := today.AddDate(0, 0, horizonDays)

	blocks, err := uc.repo.BlocksInRange(ctx, itemID, today, end)
	if err != nil {
		return nil, err
	}

	blocked := make(map[time.Time]bool, len(blocks))
	for _, b := range blocks {
		blocked[b.Date] = true
	}

	var free []time.Time
	for d := range domain.FreeDates(today, horizonDays, blocked) {
		free = append(free, d)
	}

	return free, nil
}

// ======================================================
// COUNT AVAILABLE
// ======================================================

type CountAvailable struct {
	repo  domain.Repository
	avail AvailabilityCache
}

func NewCountAvailable(
	repo domain.Repository,
	avail AvailabilityCache,
) *CountAvailable {
	return &CountAvailable{
		repo:  repo,
		avail: avail,
	}
}

// Execute subtrai os dias bloqueados do horizonte sem materializar a
// lista de datas.
func (uc *CountAvailable) Execute(
	ctx context.Context,
	itemID uint,
	horizonDays int,
) (int, error) {

	if _, err := uc.repo.GetItemByID(ctx, itemID); err != nil {
		return 0, httperr.ErrBusiness("item_not_found")
	}

	if uc.avail != nil {
		if n, ok := uc.avail.GetCount(ctx, itemID, horizonDays); ok {
			return n, nil
		}
	}

	today := domain.Today()
	end := today.AddDate(0, 0, horizonDays)

	blockedCount, err := uc.repo.CountBlocksInRange(ctx, itemID, today, end)
	if err != nil {
		return 0, err
	}

	total := domain.DayCount(today, end)
	free := total - int(blockedCount)

	if uc.avail != nil {
		uc.avail.SetCount(ctx, itemID, horizonDays, free)
	}

	return free, nil
}
