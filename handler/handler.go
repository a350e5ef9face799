package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/alertkit/pkg/binder"
)

// HandlerFunc handles a request already decoded into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to the client.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding and rendering failures to the client.
type ErrorHandler func(ctx Context, err error)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// Option configures Wrap.
type Option func(*wrapConfig)

// WithBinders appends binders; they run in order and a binder returning
// binder.ErrBinderNotApplicable is skipped.
func WithBinders(binders ...Bind) Option {
	return func(c *wrapConfig) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func defaultErrorHandler(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts h into an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, errors.Join(ErrBadRequest, err))
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
