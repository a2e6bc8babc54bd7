package rental

import "github.com/T3nda22/DungogWebsite2c/internal/httperr"

// ===============================
// Rental Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// pending -> approved -> completed, with rejection/cancellation as the
// only exits. completed, rejected and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled, StatusCompleted},
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirmPayment define se um aluguel pode receber pagamento
func CanConfirmPayment(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um aluguel pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusApproved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusApproved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
