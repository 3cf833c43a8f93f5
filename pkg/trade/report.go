package trade

import (
	"github.com/backkem/fix/pkg/message"
	"github.com/backkem/fix/pkg/tag"
)

// ParseExecutionReport assembles a Fill from an execution report
// message (MsgType "8"). The message type itself is not checked here;
// callers dispatch on Message.MsgType before handing the message over.
//
// Required fields: ExecID (17), OrderID (37), ClOrdID (11), LastPx (31),
// and LastQty (32). The second return value is false when any of them is
// absent or fails to parse as the expected integer form. ExecID must be
// numeric even though the fill record does not carry it.
//
// TransactTime (60) is optional: a value that parses as a plain integer
// becomes the fill timestamp, anything else reads as 0. FIX timestamps
// in calendar form ("20260101-12:00:00") therefore yield 0.
func ParseExecutionReport(msg *message.Message) (Fill, bool) {
	if _, ok := msg.GetUint(tag.ExecID); !ok {
		return Fill{}, false
	}
	orderID, ok := msg.GetUint(tag.OrderID)
	if !ok {
		return Fill{}, false
	}
	clOrdID, ok := msg.GetUint(tag.ClOrdID)
	if !ok {
		return Fill{}, false
	}
	lastPx, ok := msg.GetInt(tag.LastPx)
	if !ok {
		return Fill{}, false
	}
	lastQty, ok := msg.GetUint(tag.LastQty)
	if !ok {
		return Fill{}, false
	}
	transactTime, _ := msg.GetUint(tag.TransactTime)

	return Fill{
		MakerID:     OrderID(orderID),
		TakerID:     OrderID(clOrdID),
		Price:       lastPx,
		Quantity:    lastQty,
		TimestampNS: transactTime,
	}, true
}
