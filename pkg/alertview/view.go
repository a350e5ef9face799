package alertview

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
	"github.com/dmitrymomot/alertkit/pkg/broadcast"
	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// Item is a visible alert and its surrogate key.
type Item struct {
	Key    uint64
	Record alert.Record
}

// Fading reports whether the item is in its fade-out phase.
func (i Item) Fading() bool {
	return i.Record.Fade
}

// delivery is an onChange snapshot stamped with the revision it was taken at.
type delivery struct {
	rev   uint64
	items []Item
}

// pending is a scheduled removal bound to one item key.
type pending struct {
	timer Timer
}

// View is the state of one alert region. All methods are safe for concurrent
// use; timer callbacks and bus deliveries are serialised by an internal lock.
type View struct {
	bus *alert.Bus
	cfg config

	mu       sync.Mutex
	items    []Item
	nextKey  uint64
	timers   map[uint64]*pending
	sub      *broadcast.Subscription
	unlisten func()
	mounted  bool
	tornDown bool
	rev      uint64

	// notifyMu guards the delivery queue. onChange runs without it held, one
	// call at a time, in revision order.
	notifyMu   sync.Mutex
	queue      []delivery
	delivered  uint64
	delivering bool
}

// New creates an unmounted view for bus.
func New(bus *alert.Bus, opts ...Option) *View {
	cfg := config{
		group:          alert.DefaultGroup,
		fade:           true,
		autoCloseDelay: DefaultAutoCloseDelay,
		fadeDelay:      DefaultFadeDelay,
		scheduler:      RealScheduler{},
		logger:         logger.Discard(),
		collector:      alertmetrics.Nop{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &View{
		bus:    bus,
		cfg:    cfg,
		timers: make(map[uint64]*pending),
	}
}

// Group returns the group id the view listens to.
func (v *View) Group() string { return v.cfg.group }

// FadeEnabled reports whether dismissals fade out.
func (v *View) FadeEnabled() bool { return v.cfg.fade }

// Mount subscribes to the bus and attaches the navigation listener. It runs
// once; later calls return nil without subscribing again.
func (v *View) Mount() error {
	if v.bus == nil {
		return ErrNilBus
	}

	v.mu.Lock()
	if v.tornDown {
		v.mu.Unlock()
		return ErrTornDown
	}
	if v.mounted {
		v.mu.Unlock()
		return nil
	}
	v.mounted = true
	v.mu.Unlock()

	sub := v.bus.Subscribe(v.cfg.group, v.handle)

	var unlisten func()
	if v.cfg.navigator != nil {
		group := v.cfg.group
		unlisten = v.cfg.navigator.OnNavigate(func(location string) {
			v.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "navigation, clearing alerts",
				logger.AlertGroup(group),
				logger.Location(location),
			)
			v.bus.Clear(group)
		})
	}

	v.mu.Lock()
	raced := v.tornDown
	if !raced {
		v.sub = sub
		v.unlisten = unlisten
	}
	v.mu.Unlock()

	// Teardown ran between the two critical sections.
	if raced {
		sub.Unsubscribe()
		if unlisten != nil {
			unlisten()
		}
		return ErrTornDown
	}

	v.cfg.collector.ViewMounted(v.cfg.group)
	v.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert view mounted",
		logger.AlertGroup(v.cfg.group),
	)
	return nil
}

// Teardown unsubscribes, detaches the navigator and stops every pending timer.
// It is idempotent; a torn down view cannot be mounted again.
func (v *View) Teardown() {
	v.mu.Lock()
	if v.tornDown {
		v.mu.Unlock()
		return
	}
	v.tornDown = true
	wasMounted := v.mounted
	for key, p := range v.timers {
		p.timer.Stop()
		delete(v.timers, key)
	}
	sub, unlisten := v.sub, v.unlisten
	v.sub, v.unlisten = nil, nil
	v.mu.Unlock()

	sub.Unsubscribe()
	if unlisten != nil {
		unlisten()
	}

	if wasMounted && sub != nil {
		v.cfg.collector.ViewTornDown(v.cfg.group)
	}
	v.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert view torn down",
		logger.AlertGroup(v.cfg.group),
	)
}

// Items returns a copy of the visible list in arrival order.
func (v *View) Items() []Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.items)
}

// PendingTimers returns the number of scheduled removals.
func (v *View) PendingTimers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// Remove dismisses the item with key. With fading enabled the item is replaced
// by a faded copy under a new key, which is dropped after the fade delay;
// otherwise it is removed at once. It returns false when the key is unknown or
// the item is already fading.
func (v *View) Remove(key uint64) bool {
	v.mu.Lock()
	if v.tornDown {
		v.mu.Unlock()
		return false
	}
	ok := v.removeLocked(key)
	var snapshot delivery
	if ok {
		snapshot = v.snapshotLocked()
	}
	v.mu.Unlock()

	v.notify(snapshot)
	return ok
}

func (v *View) handle(rec alert.Record) {
	v.mu.Lock()
	if v.tornDown {
		v.mu.Unlock()
		return
	}

	if rec.IsClear() {
		v.clearLocked()
	} else {
		key := v.appendLocked(rec)
		if rec.AutoClose {
			v.scheduleLocked(key, v.cfg.autoCloseDelay, func() { v.removeLocked(key) })
		}
	}
	snapshot := v.snapshotLocked()
	v.mu.Unlock()

	v.notify(snapshot)
}

// clearLocked keeps only items flagged KeepAfterRouteChange and strips the
// flag, so the next clear removes them too.
func (v *View) clearLocked() {
	kept := v.items[:0:0]
	for _, it := range v.items {
		if !it.Record.KeepAfterRouteChange {
			v.cancelLocked(it.Key)
			continue
		}
		it.Record.KeepAfterRouteChange = false
		kept = append(kept, it)
	}
	v.items = kept
}

func (v *View) appendLocked(rec alert.Record) uint64 {
	v.nextKey++
	v.items = append(v.items, Item{Key: v.nextKey, Record: rec})
	return v.nextKey
}

func (v *View) removeLocked(key uint64) bool {
	idx := v.indexLocked(key)
	if idx < 0 || v.items[idx].Fading() {
		return false
	}
	v.cancelLocked(key)

	if !v.cfg.fade {
		v.items = slices.Delete(v.items, idx, idx+1)
		return true
	}

	faded := v.items[idx].Record
	faded.Fade = true
	v.nextKey++
	fadedKey := v.nextKey
	v.items[idx] = Item{Key: fadedKey, Record: faded}
	v.scheduleLocked(fadedKey, v.cfg.fadeDelay, func() { v.dropLocked(fadedKey) })
	return true
}

func (v *View) dropLocked(key uint64) {
	if idx := v.indexLocked(key); idx >= 0 {
		v.items = slices.Delete(v.items, idx, idx+1)
	}
}

func (v *View) indexLocked(key uint64) int {
	return slices.IndexFunc(v.items, func(it Item) bool { return it.Key == key })
}

func (v *View) scheduleLocked(key uint64, d time.Duration, fn func()) {
	p := &pending{}
	v.timers[key] = p
	p.timer = v.cfg.scheduler.AfterFunc(d, func() { v.fire(key, p, fn) })
}

func (v *View) cancelLocked(key uint64) {
	if p, ok := v.timers[key]; ok {
		if p.timer != nil {
			p.timer.Stop()
		}
		delete(v.timers, key)
	}
}

// fire runs a timer callback unless the view was torn down or the timer was
// cancelled or replaced in the meantime.
func (v *View) fire(key uint64, p *pending, fn func()) {
	v.mu.Lock()
	if v.tornDown || v.timers[key] != p {
		v.mu.Unlock()
		return
	}
	delete(v.timers, key)
	fn()
	snapshot := v.snapshotLocked()
	v.mu.Unlock()

	v.notify(snapshot)
}

// snapshotLocked copies the list for onChange; items are non-nil even when
// empty. A zero rev means there is no onChange to deliver to.
func (v *View) snapshotLocked() delivery {
	if v.cfg.onChange == nil {
		return delivery{}
	}
	v.rev++
	out := make([]Item, len(v.items))
	copy(out, v.items)
	return delivery{rev: v.rev, items: out}
}

// notify queues d and, unless another goroutine is already delivering, drains
// the queue. Snapshots older than the last delivered one are dropped, so the
// final onChange call always carries the newest state.
func (v *View) notify(d delivery) {
	if d.rev == 0 {
		return
	}

	v.notifyMu.Lock()
	if d.rev <= v.delivered {
		v.notifyMu.Unlock()
		return
	}
	idx, _ := slices.BinarySearchFunc(v.queue, d.rev, func(q delivery, rev uint64) int {
		return cmp.Compare(q.rev, rev)
	})
	v.queue = slices.Insert(v.queue, idx, d)
	if v.delivering {
		v.notifyMu.Unlock()
		return
	}

	v.delivering = true
	for len(v.queue) > 0 {
		next := v.queue[0]
		v.queue = v.queue[1:]
		if next.rev <= v.delivered {
			continue
		}
		v.delivered = next.rev
		v.notifyMu.Unlock()
		v.cfg.onChange(next.items)
		v.notifyMu.Lock()
	}
	v.delivering = false
	v.notifyMu.Unlock()
}
