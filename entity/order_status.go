package entity

// Order statuses. Creation always lands in pending; every later move is
// staff-initiated and must pass CanTransition.
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
	OrderRejected  = "rejected"
)

// orderTransitions is the full transition table. completed, cancelled and
// rejected are terminal.
var orderTransitions = map[string][]string{
	OrderPending:  {OrderAccepted, OrderRejected, OrderCancelled},
	OrderAccepted: {OrderCompleted, OrderCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition is possible.
func IsTerminalStatus(status string) bool {
	return len(orderTransitions[status]) == 0
}

// ValidOrderStatus reports whether the given string names a known status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderAccepted, OrderCompleted, OrderCancelled, OrderRejected:
		return true
	}
	return false
}
