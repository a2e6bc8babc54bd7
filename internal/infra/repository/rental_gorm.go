package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// --------------------------------------------------
// Item
// --------------------------------------------------

func (r *RentalGormRepository) GetItemByID(
	ctx context.Context,
	id uint,
) (*models.Item, error) {

	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// --------------------------------------------------
// Rental
// --------------------------------------------------

func (r *RentalGormRepository) CreateRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *RentalGormRepository) GetRentalByID(
	ctx context.Context,
	id uint,
) (*models.Rental, error) {

	var rental models.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *RentalGormRepository) UpdateRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

func (r *RentalGormRepository) ListRentalsByRenter(
	ctx context.Context,
	renterID uint,
) ([]models.Rental, error) {

	var rentals []models.Rental
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}

	return rentals, nil
}

func (r *RentalGormRepository) ListRentalsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Rental, error) {

	var rentals []models.Rental
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Renter").
		Joins("JOIN items ON items.id = rentals.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("rentals.created_at DESC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}

	return rentals, nil
}

// --------------------------------------------------
// Calendar (blocks)
// --------------------------------------------------

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *RentalGormRepository) InsertBlock(
	ctx context.Context,
	b *models.DateBlock,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("range_unavailable")
		}
		return err
	}
	return nil
}

func (r *RentalGormRepository) AddBlock(
	ctx context.Context,
	b *models.DateBlock,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(b)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RentalGormRepository) BlocksInRange(
	ctx context.Context,
	itemID uint,
	start time.Time,
	end time.Time,
) ([]models.DateBlock, error) {

	var blocks []models.DateBlock
	if err := r.db.WithContext(ctx).
		Where(
			"item_id = ? AND date >= ? AND date <= ?",
			itemID, start, end,
		).
		Order("date ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *RentalGormRepository) CountBlocksInRange(
	ctx context.Context,
	itemID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DateBlock{}).
		Where(
			"item_id = ? AND date >= ? AND date <= ?",
			itemID, start, end,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *RentalGormRepository) AssertRangeFree(
	ctx context.Context,
	itemID uint,
	start time.Time,
	end time.Time,
) error {

	// Lock the parent item row for the check-then-insert window.
	// Locking the block rows would be useless here (a free range has
	// none), and Postgres rejects FOR UPDATE on aggregate queries.
	var item models.Item
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&item, itemID).Error; err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DateBlock{}).
		Where(
			"item_id = ? AND date >= ? AND date <= ?",
			itemID, start, end,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("range_unavailable")
	}

	return nil
}

func (r *RentalGormRepository) RelabelBlocksByRental(
	ctx context.Context,
	rentalID uint,
	reason domain.BlockReason,
) error {

	return r.db.WithContext(ctx).
		Model(&models.DateBlock{}).
		Where("rental_id = ?", rentalID).
		Update("reason", string(reason)).Error
}

func (r *RentalGormRepository) DeleteBlocksByRental(
	ctx context.Context,
	rentalID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("rental_id = ?", rentalID).
		Delete(&models.DateBlock{})

	return res.RowsAffected, res.Error
}

func (r *RentalGormRepository) DeleteManualBlock(
	ctx context.Context,
	itemID uint,
	date time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where(
			"item_id = ? AND date = ? AND rental_id IS NULL",
			itemID, date,
		).
		Delete(&models.DateBlock{})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RentalGormRepository) DeleteAllManualBlocks(
	ctx context.Context,
	itemID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("item_id = ? AND rental_id IS NULL", itemID).
		Delete(&models.DateBlock{})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *RentalGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RentalGormRepository) GetPaymentByRental(
	ctx context.Context,
	rentalID uint,
) (*models.Payment, error) {

	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("rental_id = ?", rentalID).
		First(&payment).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *RentalGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *RentalGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRentalGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
