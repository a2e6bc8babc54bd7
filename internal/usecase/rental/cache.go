package rental

import "context"

// AvailabilityCache is the read-through cache for free-day counts.
// Mutating use cases call Invalidate whenever an item's calendar
// changes; a nil cache disables caching entirely.
type AvailabilityCache interface {
	GetCount(ctx context.Context, itemID uint, horizonDays int) (int, bool)
	SetCount(ctx context.Context, itemID uint, horizonDays int, count int)
	Invalidate(ctx context.Context, itemID uint)
}
