// Package binder decodes HTTP requests into typed request structs for
// handler.Wrap.
//
// JSON decodes an application/json body strictly; Query fills fields tagged
// `query:"name"` from the URL. A binder that does not apply to a request
// returns ErrBinderNotApplicable and is skipped.
//
//	type DismissRequest struct {
//	    Group  string `query:"group"`
//	    Client string `query:"client"`
//	    Key    uint64 `query:"key"`
//	}
package binder
