package session

// State is the administrative state of a FIX session.
type State uint8

const (
	// StateDisconnected is the initial state: no messages exchanged.
	StateDisconnected State = 0

	// StateLogonSent means a Logon has been built; the session is
	// waiting on the counterparty's Logon.
	StateLogonSent State = 1

	// StateActive means the session is fully established. No operation
	// in this package enters it; promotion on the counterparty's Logon
	// belongs to the surrounding connection manager.
	StateActive State = 2

	// StateLogoutSent means a Logout has been built; the session is
	// waiting on the counterparty's Logout.
	StateLogoutSent State = 3
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateLogonSent:
		return "LogonSent"
	case StateActive:
		return "Active"
	case StateLogoutSent:
		return "LogoutSent"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the state is a defined value.
func (s State) IsValid() bool {
	return s <= StateLogoutSent
}

// MsgType values (tag 35) used at the session layer.
const (
	// MsgTypeHeartbeat keeps an idle session alive.
	MsgTypeHeartbeat = "0"

	// MsgTypeLogout ends a session.
	MsgTypeLogout = "5"

	// MsgTypeExecutionReport reports an order event. Sessions never
	// build one; the constant exists for inbound dispatch.
	MsgTypeExecutionReport = "8"

	// MsgTypeLogon initiates a session.
	MsgTypeLogon = "A"

	// MsgTypeNewOrderSingle submits one order.
	MsgTypeNewOrderSingle = "D"
)
