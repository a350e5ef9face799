// Package alertview holds the state of one on-page alert region.
//
// A View subscribes to a single group on an alert.Bus, keeps the ordered list
// of visible alerts, runs the auto-close and fade-out timers, and clears its
// group whenever the host reports a navigation. Each visible entry carries a
// surrogate key assigned when it is appended; the faded copy produced by a
// dismissal gets a fresh key, so callers always address entries by key.
//
//	v := alertview.New(bus,
//		alertview.WithGroup("checkout"),
//		alertview.WithNavigator(nav),
//		alertview.WithOnChange(func(items []alertview.Item) { push(items) }),
//	)
//	if err := v.Mount(); err != nil {
//		return err
//	}
//	defer v.Teardown()
//
// Per entry the lifecycle is Shown -> Fading -> Removed when fading is enabled
// and Shown -> Removed otherwise. Teardown releases the bus subscription, the
// navigation listener and every pending timer.
//
// Banner and Region render the list as templ components.
package alertview
