// Package trade defines the order-ledger domain records carried over a
// FIX session and the code tables that map them onto FIX field values.
//
// The codec in pkg/message treats every business field as an opaque
// string; this package gives those strings meaning. It provides:
//   - Order and Fill, the ledger-side records
//   - Side, OrderType, and TimeInForce enumerations with their FIX
//     wire codes (tags 54, 40, 59)
//   - ParseExecutionReport, assembling a Fill from an execution report
package trade

// OrderID identifies an order in the ledger.
type OrderID uint64

// Order is a single order as the ledger tracks it. It carries no
// instrument symbol; the symbol travels alongside the order wherever an
// instrument association is needed.
type Order struct {
	// ID is the ledger-assigned order identifier. On the wire it is
	// carried as ClOrdID (tag 11).
	ID OrderID

	// Side is the order side (bid or ask).
	Side Side

	// Type is the order type.
	Type OrderType

	// Price is the limit price in integer ticks. Zero for market orders.
	Price int64

	// Quantity is the total order quantity.
	Quantity uint64

	// FilledQuantity is the quantity filled so far.
	FilledQuantity uint64

	// TimestampNS is the order timestamp in nanoseconds.
	TimestampNS uint64

	// TimeInForce governs how long the order rests.
	TimeInForce TimeInForce
}

// Fill records a single match between two orders.
type Fill struct {
	// MakerID is the resting order, from the broker-assigned OrderID
	// (tag 37).
	MakerID OrderID

	// TakerID is the aggressing order, from the client-assigned ClOrdID
	// (tag 11).
	TakerID OrderID

	// Price is the fill price in integer ticks, from LastPx (tag 31).
	Price int64

	// Quantity is the filled quantity, from LastQty (tag 32).
	Quantity uint64

	// TimestampNS is the fill timestamp in nanoseconds, from
	// TransactTime (tag 60) when it carries a plain integer, else 0.
	TimestampNS uint64
}
