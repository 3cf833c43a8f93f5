package trade

import (
	"testing"

	"github.com/backkem/fix/pkg/message"
	"github.com/backkem/fix/pkg/tag"
)

func makeReport() *message.Message {
	return message.New("FIX.4.4", "8").
		Set(tag.ExecID, "99").
		Set(tag.OrderID, "10").
		Set(tag.ClOrdID, "42").
		Set(tag.LastPx, "50000").
		Set(tag.LastQty, "5").
		Set(tag.TransactTime, "1000000")
}

func TestParseExecutionReport(t *testing.T) {
	fill, ok := ParseExecutionReport(makeReport())
	if !ok {
		t.Fatal("ParseExecutionReport() not ok")
	}

	if fill.MakerID != 10 {
		t.Errorf("MakerID = %d, want 10", fill.MakerID)
	}
	if fill.TakerID != 42 {
		t.Errorf("TakerID = %d, want 42", fill.TakerID)
	}
	if fill.Price != 50000 {
		t.Errorf("Price = %d, want 50000", fill.Price)
	}
	if fill.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", fill.Quantity)
	}
	if fill.TimestampNS != 1000000 {
		t.Errorf("TimestampNS = %d, want 1000000", fill.TimestampNS)
	}
}

func TestParseExecutionReport_RequiredFields(t *testing.T) {
	required := []struct {
		name string
		tag  tag.Tag
	}{
		{"ExecID", tag.ExecID},
		{"OrderID", tag.OrderID},
		{"ClOrdID", tag.ClOrdID},
		{"LastPx", tag.LastPx},
		{"LastQty", tag.LastQty},
	}

	for _, tc := range required {
		t.Run("Missing "+tc.name, func(t *testing.T) {
			msg := message.New("FIX.4.4", "8")
			for _, r := range required {
				if r.tag != tc.tag {
					msg.Set(r.tag, "1")
				}
			}
			if _, ok := ParseExecutionReport(msg); ok {
				t.Error("ParseExecutionReport() ok with required field missing")
			}
		})

		t.Run("Non-numeric "+tc.name, func(t *testing.T) {
			msg := makeReport().Set(tc.tag, "not-a-number")
			if _, ok := ParseExecutionReport(msg); ok {
				t.Error("ParseExecutionReport() ok with unparseable required field")
			}
		})
	}
}

func TestParseExecutionReport_Timestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  uint64
	}{
		{"Plain integer", "9999", 9999},
		{"Calendar form", "20260101-12:00:00.000", 0},
		{"Empty", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fill, ok := ParseExecutionReport(makeReport().Set(tag.TransactTime, tc.value))
			if !ok {
				t.Fatal("ParseExecutionReport() not ok")
			}
			if fill.TimestampNS != tc.want {
				t.Errorf("TimestampNS = %d, want %d", fill.TimestampNS, tc.want)
			}
		})
	}

	t.Run("Absent", func(t *testing.T) {
		msg := message.New("FIX.4.4", "8").
			Set(tag.ExecID, "1").
			Set(tag.OrderID, "2").
			Set(tag.ClOrdID, "3").
			Set(tag.LastPx, "4").
			Set(tag.LastQty, "5")
		fill, ok := ParseExecutionReport(msg)
		if !ok {
			t.Fatal("ParseExecutionReport() not ok")
		}
		if fill.TimestampNS != 0 {
			t.Errorf("TimestampNS = %d, want 0", fill.TimestampNS)
		}
	})
}

// TestParseExecutionReport_Wire runs a report through the full wire
// codec before parsing, covering the decode path a live session sees.
func TestParseExecutionReport_Wire(t *testing.T) {
	encoded := message.NewBuilder("FIX.4.4", "8").
		Field(tag.SenderCompID, "BROKER").
		Field(tag.TargetCompID, "ALICE").
		Field(tag.MsgSeqNum, "10").
		Field(tag.ExecID, "77").
		Field(tag.OrderID, "20").
		Field(tag.ClOrdID, "55").
		Field(tag.LastPx, "48000").
		Field(tag.LastQty, "3").
		FieldUint(tag.TransactTime, 9999).
		Encode()

	msg, err := message.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	fill, ok := ParseExecutionReport(msg)
	if !ok {
		t.Fatal("ParseExecutionReport() not ok")
	}
	if fill.MakerID != 20 {
		t.Errorf("MakerID = %d, want 20", fill.MakerID)
	}
	if fill.TakerID != 55 {
		t.Errorf("TakerID = %d, want 55", fill.TakerID)
	}
	if fill.Price != 48000 {
		t.Errorf("Price = %d, want 48000", fill.Price)
	}
	if fill.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", fill.Quantity)
	}
	if fill.TimestampNS != 9999 {
		t.Errorf("TimestampNS = %d, want 9999", fill.TimestampNS)
	}
}
