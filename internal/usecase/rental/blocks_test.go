package rental

import (
	"context"
	"testing"

	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

func TestBlockDatesInsertsManualBlocks(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	uc := NewBlockDates(f, testDispatcher(), nil)

	n, err := uc.Execute(context.Background(), BlockDatesInput{
		ItemID:  itemID,
		OwnerID: testOwnerID,
		Dates:   []string{day(5), day(6)},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted = %d, want 2", n)
	}

	blocks, _ := f.BlocksInRange(context.Background(), itemID, dayT(5), dayT(6))
	if len(blocks) != 2 {
		t.Fatalf("visible blocks = %d, want 2", len(blocks))
	}
	for _, b := range blocks {
		if b.Reason != string(domain.ReasonOwnerBlock) {
			t.Errorf("reason = %s, want owner_blocked (default)", b.Reason)
		}
		if b.RentalID != nil {
			t.Error("manual block must not reference a rental")
		}
	}
}

func TestBlockDatesSkipsAlreadyBlocked(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	uc := NewBlockDates(f, testDispatcher(), nil)

	if _, err := uc.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(5)},
	}); err != nil {
		t.Fatalf("seed block: %v", err)
	}

	n, err := uc.Execute(context.Background(), BlockDatesInput{
		ItemID:  itemID,
		OwnerID: testOwnerID,
		Dates:   []string{day(5), day(6)},
		Reason:  string(domain.ReasonMaintenance),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 1 {
		t.Errorf("inserted = %d, want 1 (day 5 already blocked)", n)
	}

	// the existing block keeps its original reason
	blocks, _ := f.BlocksInRange(context.Background(), itemID, dayT(5), dayT(5))
	if len(blocks) != 1 || blocks[0].Reason != string(domain.ReasonOwnerBlock) {
		t.Errorf("existing block was overwritten: %+v", blocks)
	}
}

func TestBlockDatesNeverOverwritesBookingHold(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)
	r := mustRequest(t, f, itemID, testRenterID, 3, 4)

	uc := NewBlockDates(f, testDispatcher(), nil)

	n, err := uc.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(3), day(4)},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 0 {
		t.Errorf("inserted = %d, want 0", n)
	}

	for _, b := range f.blocks {
		if b.Reason != string(domain.ReasonBookingHold) || b.RentalID == nil || *b.RentalID != r.ID {
			t.Errorf("booking hold disturbed: %+v", b)
		}
	}
}

func TestBlockDatesGuards(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	uc := NewBlockDates(f, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(1)}, Reason: "rented",
	})
	if !httperr.IsBusiness(err, "invalid_reason") {
		t.Errorf("rental-owned reason: got %v, want invalid_reason", err)
	}

	_, err = uc.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: 99, Dates: []string{day(1)},
	})
	if !httperr.IsBusiness(err, "not_authorized") {
		t.Errorf("non-owner: got %v, want not_authorized", err)
	}

	_, err = uc.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{"not-a-date"},
	})
	if !httperr.IsBusiness(err, "invalid_date_format") {
		t.Errorf("bad date: got %v, want invalid_date_format", err)
	}
}

func TestUnblockDatesLeavesBookingHolds(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)
	mustRequest(t, f, itemID, testRenterID, 3, 3+1)

	block := NewBlockDates(f, testDispatcher(), nil)
	if _, err := block.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(6)},
	}); err != nil {
		t.Fatalf("block: %v", err)
	}

	uc := NewUnblockDates(f, testDispatcher(), nil)

	// booking-held day: removed count 0, block untouched
	n, err := uc.Execute(context.Background(), itemID, testOwnerID, []string{day(3)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 0 {
		t.Errorf("removed = %d, want 0", n)
	}
	if got := countBlocks(t, f, itemID); got != 3 {
		t.Errorf("blocks = %d, want 3", got)
	}

	// manual day comes off normally
	n, err = uc.Execute(context.Background(), itemID, testOwnerID, []string{day(6)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}
}

func TestClearManualBlocks(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)
	mustRequest(t, f, itemID, testRenterID, 1, 2)

	block := NewBlockDates(f, testDispatcher(), nil)
	if _, err := block.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID,
		Dates:  []string{day(8), day(9), day(10)},
		Reason: string(domain.ReasonMaintenance),
	}); err != nil {
		t.Fatalf("block: %v", err)
	}

	uc := NewClearManualBlocks(f, testDispatcher(), nil)

	n, err := uc.Execute(context.Background(), itemID, testOwnerID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 3 {
		t.Errorf("removed = %d, want 3", n)
	}
	if got := countBlocks(t, f, itemID); got != 2 {
		t.Errorf("blocks = %d, want 2 (the booking holds)", got)
	}

	_, err = uc.Execute(context.Background(), itemID, 99)
	if !httperr.IsBusiness(err, "not_authorized") {
		t.Errorf("non-owner clear: got %v, want not_authorized", err)
	}
}
