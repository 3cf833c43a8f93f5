package trade

// Side is the side of an order.
type Side uint8

const (
	// SideBid is a buy order. FIX Side code "1".
	SideBid Side = 1

	// SideAsk is a sell order. FIX Side code "2".
	SideAsk Side = 2
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideBid:
		return "Bid"
	case SideAsk:
		return "Ask"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the side is a defined value.
func (s Side) IsValid() bool {
	return s == SideBid || s == SideAsk
}

// FIXCode returns the FIX Side value for tag 54, or the empty string
// for an undefined side.
func (s Side) FIXCode() string {
	switch s {
	case SideBid:
		return "1"
	case SideAsk:
		return "2"
	default:
		return ""
	}
}

// SideFromFIX maps a FIX Side value (tag 54) to a Side. The second
// return value is false for unrecognized codes.
func SideFromFIX(code string) (Side, bool) {
	switch code {
	case "1":
		return SideBid, true
	case "2":
		return SideAsk, true
	default:
		return 0, false
	}
}

// OrderType is the execution style of an order.
type OrderType uint8

const (
	// OrderTypeMarket executes immediately at the best available price.
	// FIX OrdType code "1".
	OrderTypeMarket OrderType = 1

	// OrderTypeLimit rests at its limit price. FIX OrdType code "2".
	OrderTypeLimit OrderType = 2

	// OrderTypeStopLimit becomes a limit order once its stop price
	// trades. It has no FIX OrdType code of its own here and goes out
	// on the wire as a limit order.
	OrderTypeStopLimit OrderType = 3
)

// String returns a human-readable name for the order type.
func (o OrderType) String() string {
	switch o {
	case OrderTypeMarket:
		return "Market"
	case OrderTypeLimit:
		return "Limit"
	case OrderTypeStopLimit:
		return "StopLimit"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the order type is a defined value.
func (o OrderType) IsValid() bool {
	return o >= OrderTypeMarket && o <= OrderTypeStopLimit
}

// FIXCode returns the FIX OrdType value for tag 40, or the empty string
// for an undefined type. StopLimit maps to "2" (limit), so the mapping
// is many-to-one and not invertible for stop-limit orders.
func (o OrderType) FIXCode() string {
	switch o {
	case OrderTypeMarket:
		return "1"
	case OrderTypeLimit, OrderTypeStopLimit:
		return "2"
	default:
		return ""
	}
}

// OrderTypeFromFIX maps a FIX OrdType value (tag 40) to an OrderType.
// The second return value is false for unrecognized codes. "2" always
// maps to OrderTypeLimit; stop-limit cannot be recovered from tag 40.
func OrderTypeFromFIX(code string) (OrderType, bool) {
	switch code {
	case "1":
		return OrderTypeMarket, true
	case "2":
		return OrderTypeLimit, true
	default:
		return 0, false
	}
}

// TimeInForce governs how long an order remains eligible to trade.
type TimeInForce uint8

const (
	// TimeInForceGTC rests until filled or cancelled. FIX TimeInForce
	// code "1".
	TimeInForceGTC TimeInForce = 1

	// TimeInForceIOC fills what it can immediately and cancels the
	// rest. FIX TimeInForce code "3".
	TimeInForceIOC TimeInForce = 2

	// TimeInForceFOK fills completely and immediately or not at all.
	// FIX TimeInForce code "4".
	TimeInForceFOK TimeInForce = 3

	// TimeInForceGTD rests until an expiry time. FIX TimeInForce code
	// "6"; the expiry itself is not carried in tag 59.
	TimeInForceGTD TimeInForce = 4
)

// String returns a human-readable name for the time in force.
func (t TimeInForce) String() string {
	switch t {
	case TimeInForceGTC:
		return "GTC"
	case TimeInForceIOC:
		return "IOC"
	case TimeInForceFOK:
		return "FOK"
	case TimeInForceGTD:
		return "GTD"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the time in force is a defined value.
func (t TimeInForce) IsValid() bool {
	return t >= TimeInForceGTC && t <= TimeInForceGTD
}

// FIXCode returns the FIX TimeInForce value for tag 59, or the empty
// string for an undefined value.
func (t TimeInForce) FIXCode() string {
	switch t {
	case TimeInForceGTC:
		return "1"
	case TimeInForceIOC:
		return "3"
	case TimeInForceFOK:
		return "4"
	case TimeInForceGTD:
		return "6"
	default:
		return ""
	}
}

// TimeInForceFromFIX maps a FIX TimeInForce value (tag 59) to a
// TimeInForce. The second return value is false for unrecognized codes.
// Day ("0") and GTD ("6") both fold to GTC on the way in: Day has no
// ledger representation, and the expiry a GTD order needs does not
// travel in tag 59.
func TimeInForceFromFIX(code string) (TimeInForce, bool) {
	switch code {
	case "0", "1", "6":
		return TimeInForceGTC, true
	case "3":
		return TimeInForceIOC, true
	case "4":
		return TimeInForceFOK, true
	default:
		return 0, false
	}
}
