// Package broadcast provides a type-safe, synchronous multicast subject.
//
// A Subject delivers every published value to all subscribers that are active at
// the moment of publishing, in subscription order, on the publisher's goroutine.
// There is no buffering and no replay: a subscriber never sees values published
// before it subscribed, and a value published with no subscribers is dropped.
//
// Basic usage:
//
//	subject := broadcast.NewSubject[string]()
//	defer subject.Close()
//
//	sub := subject.Subscribe(func(msg string) {
//		fmt.Println(msg)
//	})
//	defer sub.Unsubscribe()
//
//	subject.Publish("hello")
//
// Filtered subscriptions share the same subject and evaluate the predicate per
// publish:
//
//	sub := subject.SubscribeFunc(
//		func(msg string) bool { return strings.HasPrefix(msg, "user.") },
//		handleUserEvent,
//	)
//
// Handlers run without any internal lock held, so a handler may publish, subscribe
// or unsubscribe re-entrantly.
package broadcast
