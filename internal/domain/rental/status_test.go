package rental

import (
	"testing"

	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusPending, StatusCancelled},
		{StatusApproved, StatusCancelled},
		{StatusApproved, StatusCompleted},
	}

	for _, c := range allowed {
		if !CanTransition(c.from, c.to) {
			t.Errorf("expected %s -> %s to be allowed", c.from, c.to)
		}
	}

	// terminal states have no way out
	for _, terminal := range []Status{StatusCompleted, StatusRejected, StatusCancelled} {
		for _, to := range []Status{StatusPending, StatusApproved, StatusCompleted, StatusCancelled} {
			if CanTransition(terminal, to) {
				t.Errorf("terminal %s must not transition to %s", terminal, to)
			}
		}
	}

	if CanTransition(StatusPending, StatusCompleted) {
		t.Error("pending must not jump straight to completed")
	}
}

func TestStatusGuards(t *testing.T) {
	if err := CanConfirmPayment(StatusPending); err != nil {
		t.Errorf("payment from pending: %v", err)
	}
	if err := CanConfirmPayment(StatusApproved); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("payment from approved: got %v", err)
	}

	for _, s := range []Status{StatusPending, StatusApproved} {
		if err := CanCancel(s); err != nil {
			t.Errorf("cancel from %s: %v", s, err)
		}
	}
	if err := CanCancel(StatusCompleted); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancel from completed: got %v", err)
	}

	if err := CanComplete(StatusApproved); err != nil {
		t.Errorf("complete from approved: %v", err)
	}
	if err := CanComplete(StatusPending); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("complete from pending: got %v", err)
	}
}

func TestIsManualReason(t *testing.T) {
	if !IsManualReason(ReasonOwnerBlock) || !IsManualReason(ReasonMaintenance) {
		t.Error("owner_blocked and maintenance are manual reasons")
	}
	if IsManualReason(ReasonBookingHold) || IsManualReason(ReasonRented) {
		t.Error("rental reasons are not manual")
	}
}
