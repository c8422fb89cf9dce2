package constants

/* ======================= PACKAGE STATUS ======================= */

const (
	PackageStatusPending  = "PENDING"
	PackageStatusApproved = "APPROVED"
	PackageStatusRejected = "REJECTED"
)

/* ======================= BOOKING STATUS ======================= */

const (
	BookingStatusPending             = "PENDING"
	BookingStatusAgentApproved       = "AGENT_APPROVED"
	BookingStatusAgentRejected       = "AGENT_REJECTED"
	BookingStatusConfirmed           = "CONFIRMED"
	BookingStatusCancelled           = "CANCELLED"
	BookingStatusCancelledByCustomer = "CANCELLED_BY_CUSTOMER"
)

// BookingStatusTerminal reports whether no further transition is defined
// from the given booking status.
func BookingStatusTerminal(status string) bool {
	switch status {
	case BookingStatusAgentRejected,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCancelledByCustomer:
		return true
	}
	return false
}

/* ======================= PAYMENT STATUS ======================= */

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusRefunded = "REFUNDED"
	PaymentStatusFailed   = "FAILED"
)

/* ======================= DECISIONS ======================= */

const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
	DecisionConfirm = "CONFIRM"
	DecisionCancel  = "CANCEL"
)

/* ======================= PAYMENT MODES ======================= */

const (
	PaymentModeSimulated    = "SIMULATED"
	PaymentModeMidtransSnap = "MIDTRANS_SNAP"
)
