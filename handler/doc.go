// Package handler turns typed request handlers into http.HandlerFunc values
// and provides the responses used by the alert endpoints: JSON, empty,
// templ HTML and datastar server-sent event streams.
//
//	type DismissRequest struct {
//	    Key uint64 `query:"key"`
//	}
//
//	r.Post("/dismiss", handler.Wrap(
//	    func(ctx handler.Context, req DismissRequest) handler.Response {
//	        if !view.Remove(req.Key) {
//	            return handler.Error(handler.ErrNotFound)
//	        }
//	        return handler.Empty()
//	    },
//	    handler.WithBinders[DismissRequest](binder.Query()),
//	))
//
// Long-lived streams are written with SSE; the handler runs until it returns
// or the client disconnects:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//	    <-stream.Done()
//	    return nil
//	})
package handler
