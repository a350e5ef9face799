// Package alert implements the alert bus: a multicast channel of alert records
// partitioned by group identifier.
//
// A Bus is constructed explicitly and injected into producers and views. Every
// publish is delivered synchronously, in subscription order, to the subscribers
// of the record's group that are active at that moment. There is no history:
// a record published while nobody listens to its group is lost.
//
//	bus := alert.NewBus(alert.WithLogger(log))
//	defer bus.Close()
//
//	sub := bus.Subscribe("checkout", func(rec alert.Record) {
//		if rec.IsClear() {
//			// drop what is on screen
//			return
//		}
//		render(rec)
//	})
//	defer sub.Unsubscribe()
//
//	bus.Success("Order placed", alert.WithGroup("checkout"), alert.WithAutoClose())
//	bus.Clear("checkout")
//
// A record with an empty message is a clear signal for its group rather than
// something to display.
package alert
