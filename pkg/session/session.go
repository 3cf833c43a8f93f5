// Package session implements the FIX session layer. A Session tracks
// per-direction sequence numbers and administrative state, and builds
// the standard session-level messages.
//
// Session flow:
//
//	Disconnected → (send Logon) → LogonSent → (receive Logon) → Active
//	Active → (send Logout) → LogoutSent → (receive Logout) → Disconnected
//
// Only the send-side transitions live here: BuildLogon moves the
// session to StateLogonSent and BuildLogout to StateLogoutSent, from
// any prior state. Reacting to the counterparty's Logon and Logout is
// connection-manager territory, so no operation in this package enters
// StateActive or returns to StateDisconnected.
package session

import (
	"github.com/pion/logging"

	"github.com/backkem/fix/pkg/message"
	"github.com/backkem/fix/pkg/tag"
	"github.com/backkem/fix/pkg/trade"
)

// DefaultBeginString is the protocol version used when the config does
// not name one.
const DefaultBeginString = "FIX.4.4"

// Config configures a Session.
type Config struct {
	// SenderCompID identifies the local party (tag 49). Required.
	SenderCompID string

	// TargetCompID identifies the counterparty (tag 56). Required.
	TargetCompID string

	// BeginString is the protocol version for tag 8.
	// Default: DefaultBeginString.
	BeginString string

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Session tracks the state and sequence numbers of a single FIX
// session and builds its outbound messages.
//
// A Session is not safe for concurrent use. It belongs to exactly one
// connection's handling context at a time; callers that share one
// across goroutines must provide their own mutual exclusion.
type Session struct {
	senderCompID string
	targetCompID string
	beginString  string

	// Next sequence number to assign to an outgoing message.
	outgoingSeq uint64

	// Next sequence number expected from the counterparty.
	incomingSeq uint64

	state State

	log logging.LeveledLogger
}

// New creates a session in StateDisconnected. Sequence numbers start
// at 1 on both sides.
func New(config Config) (*Session, error) {
	if config.SenderCompID == "" {
		return nil, ErrMissingSenderCompID
	}
	if config.TargetCompID == "" {
		return nil, ErrMissingTargetCompID
	}

	beginString := config.BeginString
	if beginString == "" {
		beginString = DefaultBeginString
	}

	s := &Session{
		senderCompID: config.SenderCompID,
		targetCompID: config.TargetCompID,
		beginString:  beginString,
		outgoingSeq:  1,
		incomingSeq:  1,
		state:        StateDisconnected,
	}

	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("session")
	}

	return s, nil
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// OutgoingSeq returns the sequence number the next build will consume,
// without consuming it.
func (s *Session) OutgoingSeq() uint64 {
	return s.outgoingSeq
}

// ExpectedIncomingSeq returns the sequence number the next inbound
// message must carry.
func (s *Session) ExpectedIncomingSeq() uint64 {
	return s.incomingSeq
}

// NextOutgoingSeq consumes and returns the next outbound sequence
// number. The counter starts at 1; the first call returns 1.
//
// The build methods call this internally. Calling it directly burns a
// sequence number the counterparty will never see.
func (s *Session) NextOutgoingSeq() uint64 {
	seq := s.outgoingSeq
	s.outgoingSeq++
	return seq
}

// ValidateIncomingSeq checks an inbound sequence number against the
// expected value. On a match the expectation advances by one and the
// method returns true; otherwise the expectation is left unchanged and
// the method returns false.
//
// A false return does not distinguish replay from gap; callers compare
// seq against ExpectedIncomingSeq and own the recovery policy.
func (s *Session) ValidateIncomingSeq(seq uint64) bool {
	if seq != s.incomingSeq {
		if s.log != nil {
			s.log.Warnf("inbound sequence mismatch: got %d, expected %d", seq, s.incomingSeq)
		}
		return false
	}
	s.incomingSeq++
	return true
}

// BuildLogon builds a Logon message (MsgType "A") and moves the
// session to StateLogonSent.
func (s *Session) BuildLogon() []byte {
	seq := s.NextOutgoingSeq()
	s.state = StateLogonSent
	if s.log != nil {
		s.log.Debugf("logon: seq=%d", seq)
	}
	return s.buildAdmin(MsgTypeLogon, seq)
}

// BuildLogout builds a Logout message (MsgType "5") and moves the
// session to StateLogoutSent.
func (s *Session) BuildLogout() []byte {
	seq := s.NextOutgoingSeq()
	s.state = StateLogoutSent
	if s.log != nil {
		s.log.Debugf("logout: seq=%d", seq)
	}
	return s.buildAdmin(MsgTypeLogout, seq)
}

// BuildHeartbeat builds a Heartbeat message (MsgType "0") without
// changing the session state.
func (s *Session) BuildHeartbeat() []byte {
	seq := s.NextOutgoingSeq()
	if s.log != nil {
		s.log.Debugf("heartbeat: seq=%d", seq)
	}
	return s.buildAdmin(MsgTypeHeartbeat, seq)
}

// BuildNewOrder builds a NewOrderSingle (MsgType "D") from an order.
// The instrument symbol (tag 55) is supplied separately because Order
// does not carry one.
//
// Side, order type, and time in force go out as their FIX codes; an
// order holding undefined enum values produces empty code fields. The
// numeric fields are stringified as-is, with no range validation.
func (s *Session) BuildNewOrder(order *trade.Order, symbol string) []byte {
	seq := s.NextOutgoingSeq()
	if s.log != nil {
		s.log.Debugf("new order: seq=%d id=%d %s %s", seq, order.ID, order.Side, symbol)
	}
	return message.NewBuilder(s.beginString, MsgTypeNewOrderSingle).
		Field(tag.SenderCompID, s.senderCompID).
		Field(tag.TargetCompID, s.targetCompID).
		FieldUint(tag.MsgSeqNum, seq).
		FieldUint(tag.ClOrdID, uint64(order.ID)).
		Field(tag.Symbol, symbol).
		Field(tag.Side, order.Side.FIXCode()).
		Field(tag.OrdType, order.Type.FIXCode()).
		FieldInt(tag.Price, order.Price).
		FieldUint(tag.OrderQty, order.Quantity).
		Field(tag.TimeInForce, order.TimeInForce.FIXCode()).
		Encode()
}

// buildAdmin builds a minimal administrative message carrying only the
// standard header fields.
func (s *Session) buildAdmin(msgType string, seq uint64) []byte {
	return message.NewBuilder(s.beginString, msgType).
		Field(tag.SenderCompID, s.senderCompID).
		Field(tag.TargetCompID, s.targetCompID).
		FieldUint(tag.MsgSeqNum, seq).
		Encode()
}
