package main

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/alertkit/handler"
	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertview"
	"github.com/dmitrymomot/alertkit/pkg/binder"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

type demoRequest struct {
	Type      string `query:"type"`
	Group     string `query:"group"`
	AutoClose bool   `query:"autoClose"`
	Keep      bool   `query:"keep"`
}

// mountDemo serves a page with two alert regions and buttons that raise
// alerts through the bus.
func mountDemo(r chi.Router, bus *alert.Bus, basePath string) {
	r.Get("/", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(demoPage(basePath, uuid.NewString()))
	}))

	r.Post("/demo/alert", handler.Wrap(func(_ handler.Context, req demoRequest) handler.Response {
		t, err := alert.ParseType(req.Type)
		if err != nil {
			return handler.Error(handler.ErrBadRequest)
		}
		opts := []alert.Option{alert.WithGroup(req.Group)}
		if req.AutoClose {
			opts = append(opts, alert.WithAutoClose())
		}
		if req.Keep {
			opts = append(opts, alert.WithKeepAfterRouteChange())
		}
		bus.Publish(record(t, "This is a <strong>"+string(t)+"</strong> alert.", opts))
		return handler.Empty()
	}, handler.WithBinders(binder.Query())))
}

func record(t alert.Type, message string, opts []alert.Option) alert.Record {
	rec := alert.Record{Type: t, Message: message}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// demoPage renders one page view; both regions share the client id so a
// navigation clears them together.
func demoPage(basePath, client string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>alertd</title>`+
			`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">`+
			`<script type="module" src="`+datastarScript+`"></script></head>`+
			`<body>`); err != nil {
			return err
		}

		for _, group := range []string{alert.DefaultGroup, "form1"} {
			stream := basePath + "/stream?" + url.Values{"group": {group}, "client": {client}}.Encode()
			if _, err := io.WriteString(w, `<section data-on-load="`+templ.EscapeString("@get('"+stream+"')")+`">`+
				`<h5 class="m-3">`+templ.EscapeString(group)+`</h5>`); err != nil {
				return err
			}
			if err := alertview.Region(alertview.RegionID(group), nil, nil).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</section>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<div class="m-3">`+
			demoButton("Success", "success", "")+
			demoButton("Error", "error", "&autoClose=true")+
			demoButton("Info", "info", "&keep=true")+
			demoButton("Warning", "warning", "&group=form1")+
			`<button class="btn btn-secondary m-1" data-on-click="`+
			templ.EscapeString("@post('"+basePath+"/navigate?"+url.Values{"client": {client}, "location": {"/next"}}.Encode()+"')")+
			`">Navigate</button></div></body></html>`)
		return err
	})
}

func demoButton(label, kind, extra string) string {
	action := "@post('/demo/alert?type=" + kind + extra + "')"
	return `<button class="btn btn-outline-primary m-1" data-on-click="` + templ.EscapeString(action) + `">` + label + `</button>`
}
