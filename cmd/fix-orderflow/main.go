// fix-orderflow walks both sides of a FIX session through a complete
// order round trip: logon, heartbeat, order placement, execution
// report, and logout, printing each step.
//
// Usage:
//
//	fix-orderflow
//
// The demo takes no options and opens no sockets; both ends of the
// session live in this process.
package main

import (
	"log"

	"github.com/backkem/fix/examples/orderflow"
)

func main() {
	if err := orderflow.Run(); err != nil {
		log.Fatalf("order flow failed: %v", err)
	}
}
