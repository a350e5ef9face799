package alertview

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/alertkit/pkg/alert"
)

// DismissAttr is the datastar attribute that wires the close button.
const DismissAttr = "data-on-click"

var typeClasses = map[alert.Type]string{
	alert.TypeSuccess: "alert-success",
	alert.TypeError:   "alert-danger",
	alert.TypeInfo:    "alert-info",
	alert.TypeWarning: "alert-warning",
}

// DismissURL returns the endpoint that dismisses the item with key.
// A nil DismissURL renders close buttons without an action.
type DismissURL func(key uint64) string

// ClassNames returns the CSS classes for one entry.
func ClassNames(it Item) string {
	classes := []string{"alert", "alert-dismissible"}
	if c, ok := typeClasses[it.Record.Type]; ok {
		classes = append(classes, c)
	}
	if it.Record.Fade {
		classes = append(classes, "fade")
	}
	return strings.Join(classes, " ")
}

// Banner renders the visible alerts. An empty list renders nothing at all.
// Messages are written as raw markup: producers are trusted to supply safe HTML.
func Banner(items []Item, dismiss DismissURL) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div class="container"><div class="m-3">`); err != nil {
			return err
		}
		for _, it := range items {
			if err := renderItem(ctx, w, it, dismiss); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></div>`)
		return err
	})
}

// Region wraps Banner in a container that always exists, so SSE patches have a
// stable target even when no alert is visible.
func Region(id string, items []Item, dismiss DismissURL) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+templ.EscapeString(id)+`">`); err != nil {
			return err
		}
		if err := Banner(items, dismiss).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RegionID is the DOM id used for a group's region.
func RegionID(group string) string {
	return "alerts-" + group
}

func renderItem(ctx context.Context, w io.Writer, it Item, dismiss DismissURL) error {
	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(templ.EscapeString(ClassNames(it)))
	b.WriteString(`" role="alert"><span>`)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := templ.Raw(it.Record.Message).Render(ctx, w); err != nil {
		return err
	}

	b.Reset()
	b.WriteString(`</span><button type="button" class="btn-close" aria-label="Close"`)
	if dismiss != nil {
		b.WriteString(` ` + DismissAttr + `="`)
		b.WriteString(templ.EscapeString("@post('" + dismiss(it.Key) + "')"))
		b.WriteString(`"`)
	}
	b.WriteString(`></button></div>`)
	_, err := io.WriteString(w, b.String())
	return err
}
