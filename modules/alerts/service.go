package alerts

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/alertkit/handler"
	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
	"github.com/dmitrymomot/alertkit/pkg/alertview"
	"github.com/dmitrymomot/alertkit/pkg/binder"
	"github.com/dmitrymomot/alertkit/pkg/broadcast"
	"github.com/dmitrymomot/alertkit/pkg/cache"
	"github.com/dmitrymomot/alertkit/pkg/logger"
	"github.com/dmitrymomot/alertkit/pkg/navigation"
)

type viewKey struct {
	client string
	group  string
}

// liveView is a mounted view bound to one SSE connection.
type liveView struct {
	view    *alertview.View
	updates chan []alertview.Item
	done    chan struct{}
	once    sync.Once
}

// push keeps only the latest snapshot; the stream renders whole regions.
func (lv *liveView) push(items []alertview.Item) {
	for {
		select {
		case lv.updates <- items:
			return
		default:
		}
		select {
		case <-lv.updates:
		default:
		}
	}
}

func (lv *liveView) close() {
	lv.once.Do(func() {
		lv.view.Teardown()
		close(lv.done)
	})
}

// clientState is the per-client fan-out. Every record on the shared bus is
// copied onto the client bus, and navigation clears only reach this client's
// views.
type clientState struct {
	bus  *alert.Bus
	nav  *navigation.Notifier
	feed *broadcast.Subscription
}

func (c *clientState) close() {
	c.feed.Unsubscribe()
	_ = c.nav.Close()
	_ = c.bus.Close()
}

// Service serves the alert endpoints for one bus.
type Service struct {
	cfg          Config
	bus          *alert.Bus
	logger       *slog.Logger
	collector    alertmetrics.Collector
	viewOpts     []alertview.Option
	errorHandler handler.ErrorHandler

	views   *cache.LRU[viewKey, *liveView]
	clients *cache.LRU[string, *clientState]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCollector sets the metrics collector passed to every view.
func WithCollector(c alertmetrics.Collector) Option {
	return func(s *Service) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithViewOptions appends options applied to every mounted view.
func WithViewOptions(opts ...alertview.Option) Option {
	return func(s *Service) {
		s.viewOpts = append(s.viewOpts, opts...)
	}
}

// WithErrorHandler overrides the JSON error handler.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates the alert endpoints for bus. Zero limits in cfg fall
// back to DefaultConfig.
func NewService(cfg Config, bus *alert.Bus, opts ...Option) *Service {
	def := DefaultConfig()
	if cfg.MaxViews <= 0 {
		cfg.MaxViews = def.MaxViews
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = def.MaxClients
	}

	s := &Service{
		cfg:       cfg,
		bus:       bus,
		logger:    logger.Discard(),
		collector: alertmetrics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}

	s.views = cache.NewLRU(cfg.MaxViews, cache.WithEvictFunc(func(_ viewKey, lv *liveView) {
		lv.close()
	}))
	s.clients = cache.NewLRU(cfg.MaxClients, cache.WithEvictFunc(func(_ string, c *clientState) {
		c.close()
	}))
	return s
}

// Handle returns the router; mount it at Config.BasePath.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/stream", handler.Wrap(s.stream,
		handler.WithBinders(binder.Query()),
		handler.WithErrorHandler(s.errorHandler),
	))
	r.Post("/dismiss", handler.Wrap(s.dismiss,
		handler.WithBinders(binder.Query()),
		handler.WithErrorHandler(s.errorHandler),
	))
	r.Post("/navigate", handler.Wrap(s.navigate,
		handler.WithBinders(binder.Query()),
		handler.WithErrorHandler(s.errorHandler),
	))
	r.Post("/publish", handler.Wrap(s.publish,
		handler.WithBinders(binder.JSON()),
		handler.WithErrorHandler(s.errorHandler),
	))

	return r
}

// ActiveViews returns the number of mounted views.
func (s *Service) ActiveViews() int {
	return s.views.Len()
}

// Close tears down every live view and client.
func (s *Service) Close() error {
	s.views.Purge()
	s.clients.Purge()
	return nil
}

// Navigate clears the views of client. Other clients are not affected.
func (s *Service) Navigate(client, location string) bool {
	c, ok := s.clients.Get(client)
	if !ok {
		return false
	}
	c.nav.Navigate(location)
	return true
}

func (s *Service) client(id string) *clientState {
	c, _ := s.clients.GetOrCreate(id, func() *clientState {
		bus := alert.NewBus(alert.WithLogger(s.logger.With(logger.ClientID(id))))
		return &clientState{
			bus:  bus,
			nav:  navigation.NewNotifier(),
			feed: s.bus.SubscribeAll(bus.Publish),
		}
	})
	return c
}

// mount creates and mounts a view for key, replacing a previous one.
func (s *Service) mount(key viewKey) (*liveView, error) {
	if s.bus == nil {
		return nil, alertview.ErrNilBus
	}
	lv := &liveView{
		updates: make(chan []alertview.Item, 1),
		done:    make(chan struct{}),
	}

	c := s.client(key.client)
	opts := []alertview.Option{
		alertview.WithGroup(key.group),
		alertview.WithFade(s.cfg.Fade),
		alertview.WithAutoCloseDelay(s.cfg.AutoCloseDelay),
		alertview.WithFadeDelay(s.cfg.FadeDelay),
		alertview.WithNavigator(c.nav),
		alertview.WithLogger(s.logger),
		alertview.WithCollector(s.collector),
	}
	opts = append(opts, s.viewOpts...)
	opts = append(opts, alertview.WithOnChange(lv.push))
	lv.view = alertview.New(c.bus, opts...)

	if err := lv.view.Mount(); err != nil {
		return nil, err
	}
	if old, replaced := s.views.Put(key, lv); replaced {
		old.close()
	}
	return lv, nil
}

func (s *Service) release(key viewKey, lv *liveView) {
	if !s.views.RemoveIf(key, func(v *liveView) bool { return v == lv }) {
		lv.close()
	}
}

func (s *Service) dismissURL(key viewKey) alertview.DismissURL {
	return func(itemKey uint64) string {
		q := url.Values{}
		q.Set("group", key.group)
		q.Set("client", key.client)
		q.Set("key", strconv.FormatUint(itemKey, 10))
		return s.cfg.BasePath + "/dismiss?" + q.Encode()
	}
}
