// Package tag defines the FIX field numbers (tags) used by the codec and
// session layers. Tag numbers are assigned by the FIX 4.4 data dictionary;
// only the subset consumed by this library is enumerated here. The codec
// treats every non-structural tag as an opaque pass-through value.
package tag

// Tag is a FIX field number. The tag namespace is open: values outside
// this catalogue are valid wire fields and round-trip through the codec
// unchanged.
type Tag uint32

// Structural tags. These frame the message itself and are consumed by the
// codec during framing rather than stored as body fields (Section
// "Message Format", FIX 4.4 Volume 2).
const (
	// BeginString carries the protocol version string, e.g. "FIX.4.4".
	// Always the first field of a message.
	BeginString Tag = 8

	// BodyLength is the declared byte count of the message body.
	// Always the second field of a message.
	BodyLength Tag = 9

	// CheckSum is the modulo-256 sum of all preceding bytes, rendered as
	// exactly three decimal digits. Always the last field of a message.
	CheckSum Tag = 10

	// MsgType identifies the message type ("A" = Logon, "D" =
	// NewOrderSingle, ...). First field of the body.
	MsgType Tag = 35
)

// Session-level header tags (FIX 4.4 Volume 2).
const (
	// MsgSeqNum is the per-direction message sequence number.
	MsgSeqNum Tag = 34

	// SenderCompID identifies the message originator.
	SenderCompID Tag = 49

	// SendingTime is the UTC timestamp of message transmission.
	SendingTime Tag = 52

	// TargetCompID identifies the message recipient.
	TargetCompID Tag = 56
)

// Order-entry tags (NewOrderSingle, FIX 4.4 Volume 4).
const (
	// ClOrdID is the client-assigned order identifier.
	ClOrdID Tag = 11

	// OrderQty is the order quantity.
	OrderQty Tag = 38

	// OrdType is the order type code ("1" = Market, "2" = Limit).
	OrdType Tag = 40

	// Price is the limit price.
	Price Tag = 44

	// Side is the order side code ("1" = Buy, "2" = Sell).
	Side Tag = 54

	// Symbol is the instrument symbol.
	Symbol Tag = 55

	// TimeInForce is the order lifetime code ("1" = GTC, "3" = IOC, ...).
	TimeInForce Tag = 59
)

// Execution-report tags (FIX 4.4 Volume 4).
const (
	// AvgPx is the average fill price across all executions of an order.
	AvgPx Tag = 6

	// CumQty is the total quantity filled so far.
	CumQty Tag = 14

	// ExecID is the venue-assigned execution identifier.
	ExecID Tag = 17

	// LastPx is the price of the most recent fill.
	LastPx Tag = 31

	// LastQty is the quantity of the most recent fill.
	LastQty Tag = 32

	// OrderID is the venue-assigned order identifier.
	OrderID Tag = 37

	// OrdStatus is the current order status code.
	OrdStatus Tag = 39

	// TransactTime is the UTC transaction timestamp.
	TransactTime Tag = 60

	// ExecType is the execution report type code.
	ExecType Tag = 150

	// LeavesQty is the quantity still open for execution.
	LeavesQty Tag = 151
)

// Free-text tag.
const (
	// Text carries a free-format explanatory string.
	Text Tag = 58
)
