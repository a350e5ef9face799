package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is satisfied by templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// StreamContext is the Context of an open SSE connection.
type StreamContext interface {
	Context

	// SendComponent patches a rendered component into the page.
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendSignals merges values into the client's signal store.
	SendSignals(signals map[string]any) error
}

// SSEHandler runs for the lifetime of the connection.
type SSEHandler func(stream StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

// SendComponent patches the rendered component into the page.
func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

// SendSignals merges signals into the client store.
func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// SSE opens a datastar event stream and runs h on it. Non-datastar requests
// get ErrNotDataStar.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
