// Package navigation provides the host-side "location changed" notifier that
// alert views listen to.
package navigation

import (
	"github.com/dmitrymomot/alertkit/pkg/broadcast"
)

// Notifier fans out navigation events to listeners in registration order.
type Notifier struct {
	subject *broadcast.Subject[string]
}

// NewNotifier returns a notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{subject: broadcast.NewSubject[string]()}
}

// Navigate reports that the host moved to location.
func (n *Notifier) Navigate(location string) {
	n.subject.Publish(location)
}

// OnNavigate registers fn and returns the function that removes it.
func (n *Notifier) OnNavigate(fn func(location string)) (unlisten func()) {
	sub := n.subject.Subscribe(fn)
	return sub.Unsubscribe
}

// Listeners returns the number of attached listeners.
func (n *Notifier) Listeners() int {
	return n.subject.Len()
}

// Close detaches every listener.
func (n *Notifier) Close() error {
	return n.subject.Close()
}
