package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	DataStarAcceptHeader  = "text/event-stream"
	DataStarRequestHeader = "Datastar-Request"
	DataStarQueryParam    = "datastar"
)

const (
	PatchOuter  = datastar.ElementPatchModeOuter
	PatchInner  = datastar.ElementPatchModeInner
	PatchRemove = datastar.ElementPatchModeRemove
	PatchAppend = datastar.ElementPatchModeAppend
)

// IsDataStar reports whether r was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget selects the element to patch.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patch is applied to the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}
