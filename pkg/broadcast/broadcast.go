package broadcast

import (
	"sync"
	"sync/atomic"
)

// Handler receives values published on a Subject.
type Handler[T any] func(v T)

// Subject is an ordered observer list with synchronous dispatch.
// All methods are safe for concurrent use.
type Subject[T any] struct {
	mu     sync.RWMutex
	subs   []*Subscription
	fns    map[*Subscription]Handler[T]
	closed bool
}

// NewSubject creates an open subject without subscribers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		fns: make(map[*Subscription]Handler[T]),
	}
}

// Subscription is the token returned by Subscribe. Unsubscribe releases it.
type Subscription struct {
	active   atomic.Bool
	once     sync.Once
	detachFn func()
}

// Active reports whether the subscription still receives values.
func (s *Subscription) Active() bool {
	return s != nil && s.active.Load()
}

// Unsubscribe stops delivery immediately. It is idempotent.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.active.Store(false)
		if s.detachFn != nil {
			s.detachFn()
		}
	})
}

// Subscribe registers fn for every value published from now on.
// Subscribing to a closed subject returns an inactive subscription.
func (s *Subject[T]) Subscribe(fn Handler[T]) *Subscription {
	sub := &Subscription{}
	if fn == nil {
		return sub
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return sub
	}

	sub.active.Store(true)
	sub.detachFn = func() { s.remove(sub) }
	s.subs = append(s.subs, sub)
	s.fns[sub] = fn

	return sub
}

// SubscribeFunc registers fn for published values accepted by match.
func (s *Subject[T]) SubscribeFunc(match func(T) bool, fn Handler[T]) *Subscription {
	if match == nil {
		return s.Subscribe(fn)
	}
	if fn == nil {
		return s.Subscribe(nil)
	}
	return s.Subscribe(func(v T) {
		if match(v) {
			fn(v)
		}
	})
}

// Publish delivers v to every active subscriber in subscription order.
// Subscribers added while a publish is in flight do not receive that value;
// subscribers removed before their turn are skipped.
func (s *Subject[T]) Publish(v T) {
	s.mu.RLock()
	if s.closed || len(s.subs) == 0 {
		s.mu.RUnlock()
		return
	}
	subs := make([]*Subscription, len(s.subs))
	copy(subs, s.subs)
	fns := make([]Handler[T], len(subs))
	for i, sub := range subs {
		fns[i] = s.fns[sub]
	}
	s.mu.RUnlock()

	for i, sub := range subs {
		if !sub.active.Load() {
			continue
		}
		fns[i](v)
	}
}

// Len returns the number of active subscribers.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Close drops all subscribers. Later publishes are no-ops and later
// subscriptions are inactive. Close is idempotent.
func (s *Subject[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	clear(s.fns)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.active.Store(false)
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *Subject[T]) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Subject[T]) remove(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fns[sub]; !ok {
		return
	}
	delete(s.fns, sub)
	for i, existing := range s.subs {
		if existing == sub {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			break
		}
	}
}
