package rental

import (
	"time"

	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Approve(r *models.Rental) error {
	if err := CanConfirmPayment(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusApproved)
	return nil
}

func Cancel(r *models.Rental, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

func Complete(r *models.Rental, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}
