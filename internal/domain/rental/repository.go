package rental

import (
	"context"
	"time"

	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

type Repository interface {
	// -------- Item --------
	GetItemByID(
		ctx context.Context,
		id uint,
	) (*models.Item, error)

	// -------- Rental --------
	CreateRental(
		ctx context.Context,
		r *models.Rental,
	) error

	GetRentalByID(
		ctx context.Context,
		id uint,
	) (*models.Rental, error)

	UpdateRental(
		ctx context.Context,
		r *models.Rental,
	) error

	ListRentalsByRenter(
		ctx context.Context,
		renterID uint,
	) ([]models.Rental, error)

	ListRentalsByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Rental, error)

	// -------- Calendar (blocks) --------

	// InsertBlock is strict: a duplicate (item, date) surfaces as
	// range_unavailable so the enclosing transaction rolls back.
	InsertBlock(
		ctx context.Context,
		b *models.DateBlock,
	) error

	// AddBlock is idempotent: inserting an already-blocked day is a
	// no-op and reports inserted=false.
	AddBlock(
		ctx context.Context,
		b *models.DateBlock,
	) (inserted bool, err error)

	BlocksInRange(
		ctx context.Context,
		itemID uint,
		start time.Time,
		end time.Time,
	) ([]models.DateBlock, error)

	CountBlocksInRange(
		ctx context.Context,
		itemID uint,
		start time.Time,
		end time.Time,
	) (int64, error)

	// AssertRangeFree locks the item's blocks in the range and fails
	// with range_unavailable when any exist.
	AssertRangeFree(
		ctx context.Context,
		itemID uint,
		start time.Time,
		end time.Time,
	) error

	RelabelBlocksByRental(
		ctx context.Context,
		rentalID uint,
		reason BlockReason,
	) error

	DeleteBlocksByRental(
		ctx context.Context,
		rentalID uint,
	) (int64, error)

	DeleteManualBlock(
		ctx context.Context,
		itemID uint,
		date time.Time,
	) (bool, error)

	DeleteAllManualBlocks(
		ctx context.Context,
		itemID uint,
	) (int64, error)

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// GetPaymentByRental returns (nil, nil) when the rental has no
	// payment record.
	GetPaymentByRental(
		ctx context.Context,
		rentalID uint,
	) (*models.Payment, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// -------- Unit of work --------

	// Transaction runs fn against a repository bound to one database
	// transaction; any error rolls the whole unit back.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
