package alertview_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertview"
)

func render(t *testing.T, items []alertview.Item, dismiss alertview.DismissURL) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, alertview.Banner(items, dismiss).Render(context.Background(), &buf))
	return buf.String()
}

func TestClassNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  alert.Record
		want string
	}{
		{"success", alert.Record{Type: alert.TypeSuccess}, "alert alert-dismissible alert-success"},
		{"error", alert.Record{Type: alert.TypeError}, "alert alert-dismissible alert-danger"},
		{"info", alert.Record{Type: alert.TypeInfo}, "alert alert-dismissible alert-info"},
		{"warning", alert.Record{Type: alert.TypeWarning}, "alert alert-dismissible alert-warning"},
		{"fading", alert.Record{Type: alert.TypeInfo, Fade: true}, "alert alert-dismissible alert-info fade"},
		{"unknown type", alert.Record{Type: "Other"}, "alert alert-dismissible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alertview.ClassNames(alertview.Item{Record: tt.rec}))
		})
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("empty list renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, render(t, nil, nil))
	})

	t.Run("renders entries in order", func(t *testing.T) {
		t.Parallel()
		items := []alertview.Item{
			{Key: 1, Record: alert.Record{Type: alert.TypeSuccess, Message: "Saved"}},
			{Key: 2, Record: alert.Record{Type: alert.TypeError, Message: "<b>Oops</b>"}},
		}
		dismiss := func(key uint64) string { return "/alerts/dismiss?key=" + strconv.FormatUint(key, 10) }

		html := render(t, items, dismiss)
		assert.Equal(t,
			`<div class="container"><div class="m-3">`+
				`<div class="alert alert-dismissible alert-success" role="alert"><span>Saved</span>`+
				`<button type="button" class="btn-close" aria-label="Close" data-on-click="@post(&#39;/alerts/dismiss?key=1&#39;)"></button></div>`+
				`<div class="alert alert-dismissible alert-danger" role="alert"><span><b>Oops</b></span>`+
				`<button type="button" class="btn-close" aria-label="Close" data-on-click="@post(&#39;/alerts/dismiss?key=2&#39;)"></button></div>`+
				`</div></div>`,
			html,
		)
	})

	t.Run("without dismiss url", func(t *testing.T) {
		t.Parallel()
		html := render(t, []alertview.Item{{Key: 1, Record: alert.Record{Type: alert.TypeInfo, Message: "hi"}}}, nil)
		assert.Contains(t, html, `<button type="button" class="btn-close" aria-label="Close"></button>`)
		assert.NotContains(t, html, alertview.DismissAttr)
	})

	t.Run("fading entry carries fade class", func(t *testing.T) {
		t.Parallel()
		html := render(t, []alertview.Item{{Key: 3, Record: alert.Record{Type: alert.TypeWarning, Message: "bye", Fade: true}}}, nil)
		assert.Contains(t, html, `class="alert alert-dismissible alert-warning fade"`)
	})
}

func TestRegion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, alertview.Region(alertview.RegionID("form1"), nil, nil).Render(context.Background(), &buf))
	assert.Equal(t, `<div id="alerts-form1"></div>`, buf.String())
}
