package rental

// ===============================
// Block Reasons
// ===============================

// Why a calendar day is held. booking_hold becomes rented once the
// rental is paid; owner_blocked and maintenance never reference a rental.
type BlockReason string

const (
	ReasonBookingHold BlockReason = "booking_hold"
	ReasonRented      BlockReason = "rented"
	ReasonOwnerBlock  BlockReason = "owner_blocked"
	ReasonMaintenance BlockReason = "maintenance"
)

func IsManualReason(r BlockReason) bool {
	return r == ReasonOwnerBlock || r == ReasonMaintenance
}
