package rental

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory domain.Repository. Transaction takes a deep
// snapshot and restores it on error, so rollback behavior is observable
// in tests.
type fakeRepo struct {
	items    map[uint]models.Item
	rentals  map[uint]models.Rental
	blocks   map[uint]models.DateBlock
	payments map[uint]models.Payment // keyed by rental id
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    make(map[uint]models.Item),
		rentals:  make(map[uint]models.Rental),
		blocks:   make(map[uint]models.DateBlock),
		payments: make(map[uint]models.Payment),
		nextID:   1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) addItem(item models.Item) uint {
	if item.ID == 0 {
		item.ID = f.id()
	}
	f.items[item.ID] = item
	return item.ID
}

func (f *fakeRepo) clone() *fakeRepo {
	c := newFakeRepo()
	c.nextID = f.nextID
	for k, v := range f.items {
		c.items[k] = v
	}
	for k, v := range f.rentals {
		c.rentals[k] = v
	}
	for k, v := range f.blocks {
		c.blocks[k] = v
	}
	for k, v := range f.payments {
		c.payments[k] = v
	}
	return c
}

// -------- Item --------

func (f *fakeRepo) GetItemByID(_ context.Context, id uint) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, errNotFound
	}
	return &item, nil
}

// -------- Rental --------

func (f *fakeRepo) CreateRental(_ context.Context, r *models.Rental) error {
	r.ID = f.id()
	f.rentals[r.ID] = *r
	return nil
}

func (f *fakeRepo) GetRentalByID(_ context.Context, id uint) (*models.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, errNotFound
	}
	return &r, nil
}

func (f *fakeRepo) UpdateRental(_ context.Context, r *models.Rental) error {
	if _, ok := f.rentals[r.ID]; !ok {
		return errNotFound
	}
	f.rentals[r.ID] = *r
	return nil
}

func (f *fakeRepo) ListRentalsByRenter(_ context.Context, renterID uint) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range f.rentals {
		if r.RenterID == renterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRentalsByOwner(_ context.Context, ownerID uint) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range f.rentals {
		if item, ok := f.items[r.ItemID]; ok && item.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// -------- Calendar --------

func (f *fakeRepo) findBlock(itemID uint, date time.Time) (uint, bool) {
	for id, b := range f.blocks {
		if b.ItemID == itemID && b.Date.Equal(date) {
			return id, true
		}
	}
	return 0, false
}

func (f *fakeRepo) InsertBlock(_ context.Context, b *models.DateBlock) error {
	if _, exists := f.findBlock(b.ItemID, b.Date); exists {
		return httperr.ErrBusiness("range_unavailable")
	}
	b.ID = f.id()
	f.blocks[b.ID] = *b
	return nil
}

func (f *fakeRepo) AddBlock(_ context.Context, b *models.DateBlock) (bool, error) {
	if _, exists := f.findBlock(b.ItemID, b.Date); exists {
		return false, nil
	}
	b.ID = f.id()
	f.blocks[b.ID] = *b
	return true, nil
}

func (f *fakeRepo) BlocksInRange(_ context.Context, itemID uint, start, end time.Time) ([]models.DateBlock, error) {
	var out []models.DateBlock
	for _, b := range f.blocks {
		if b.ItemID == itemID && !b.Date.Before(start) && !b.Date.After(end) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeRepo) CountBlocksInRange(ctx context.Context, itemID uint, start, end time.Time) (int64, error) {
	blocks, _ := f.BlocksInRange(ctx, itemID, start, end)
	return int64(len(blocks)), nil
}

func (f *fakeRepo) AssertRangeFree(ctx context.Context, itemID uint, start, end time.Time) error {
	n, _ := f.CountBlocksInRange(ctx, itemID, start, end)
	if n > 0 {
		return httperr.ErrBusiness("range_unavailable")
	}
	return nil
}

func (f *fakeRepo) RelabelBlocksByRental(_ context.Context, rentalID uint, reason domain.BlockReason) error {
	for id, b := range f.blocks {
		if b.RentalID != nil && *b.RentalID == rentalID {
			b.Reason = string(reason)
			f.blocks[id] = b
		}
	}
	return nil
}

func (f *fakeRepo) DeleteBlocksByRental(_ context.Context, rentalID uint) (int64, error) {
	var removed int64
	for id, b := range f.blocks {
		if b.RentalID != nil && *b.RentalID == rentalID {
			delete(f.blocks, id)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeRepo) DeleteManualBlock(_ context.Context, itemID uint, date time.Time) (bool, error) {
	for id, b := range f.blocks {
		if b.ItemID == itemID && b.Date.Equal(date) && b.RentalID == nil {
			delete(f.blocks, id)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) DeleteAllManualBlocks(_ context.Context, itemID uint) (int64, error) {
	var removed int64
	for id, b := range f.blocks {
		if b.ItemID == itemID && b.RentalID == nil {
			delete(f.blocks, id)
			removed++
		}
	}
	return removed, nil
}

// -------- Payment --------

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	p.ID = f.id()
	f.payments[p.RentalID] = *p
	return nil
}

func (f *fakeRepo) GetPaymentByRental(_ context.Context, rentalID uint) (*models.Payment, error) {
	p, ok := f.payments[rentalID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeRepo) UpdatePayment(_ context.Context, p *models.Payment) error {
	if _, ok := f.payments[p.RentalID]; !ok {
		return errNotFound
	}
	f.payments[p.RentalID] = *p
	return nil
}

// -------- Unit of work --------

func (f *fakeRepo) Transaction(_ context.Context, fn func(domain.Repository) error) error {
	snap := f.clone()
	if err := fn(f); err != nil {
		*f = *snap
		return err
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
