package rental

import (
	"context"
	"testing"

	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

func TestCheckAvailabilityBoundaries(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	check := NewCheckAvailability(f)

	free, err := check.Execute(context.Background(), itemID, dayT(1), dayT(5))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !free {
		t.Fatal("empty calendar must be free")
	}

	block := NewBlockDates(f, testDispatcher(), nil)
	if _, err := block.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(5)},
	}); err != nil {
		t.Fatalf("block: %v", err)
	}

	// a block exactly on the end date counts: the interval is inclusive
	free, _ = check.Execute(context.Background(), itemID, dayT(1), dayT(5))
	if free {
		t.Error("range ending on a blocked day reported free")
	}
	free, _ = check.Execute(context.Background(), itemID, dayT(5), dayT(8))
	if free {
		t.Error("range starting on a blocked day reported free")
	}
	free, _ = check.Execute(context.Background(), itemID, dayT(6), dayT(8))
	if !free {
		t.Error("range just past the block reported busy")
	}

	_, err = check.Execute(context.Background(), 999, dayT(1), dayT(2))
	if !httperr.IsBusiness(err, "item_not_found") {
		t.Errorf("missing item: got %v", err)
	}
}

func TestListAvailableDatesExcludesBlocked(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	block := NewBlockDates(f, testDispatcher(), nil)
	if _, err := block.Execute(context.Background(), BlockDatesInput{
		ItemID: itemID, OwnerID: testOwnerID, Dates: []string{day(0), day(2)},
	}); err != nil {
		t.Fatalf("block: %v", err)
	}

	uc := NewListAvailableDates(f)

	free, err := uc.Execute(context.Background(), itemID, 4)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// horizon 4 spans 5 days, 2 are blocked
	if len(free) != 3 {
		t.Fatalf("free = %d dates, want 3", len(free))
	}
	want := []int{1, 3, 4}
	for i, d := range free {
		if !d.Equal(dayT(want[i])) {
			t.Errorf("free[%d] = %v, want today+%d", i, d, want[i])
		}
		if i > 0 && !free[i-1].Before(d) {
			t.Error("dates out of order")
		}
	}
}

func TestCountAvailable(t *testing.T) {
	f := newFakeRepo()
	itemID := seedItem(f)

	uc := NewCountAvailable(f, nil)

	// horizon 30 spans 31 inclusive days
	n, err := uc.Execute(context.Background(), itemID, 30)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 31 {
		t.Errorf("count = %d, want 31", n)
	}

	mustRequest(t, f, itemID, testRenterID, 2, 4)

	n, err = uc.Execute(context.Background(), itemID, 30)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 28 {
		t.Errorf("count = %d, want 28 after a 3-day booking", n)
	}

	_, err = uc.Execute(context.Background(), 999, 30)
	if !httperr.IsBusiness(err, "item_not_found") {
		t.Errorf("missing item: got %v", err)
	}
}
