package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/alert"
)

func TestDemo(t *testing.T) {
	t.Parallel()

	bus := alert.NewBus()
	r := chi.NewRouter()
	mountDemo(r, bus, "/alerts")

	t.Run("page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<div id="alerts-default-alert"></div>`)
		assert.Contains(t, body, `<div id="alerts-form1"></div>`)
		assert.Equal(t, 2, strings.Count(body, "/alerts/stream?client="))
	})

	t.Run("raise alert", func(t *testing.T) {
		var got []alert.Record
		sub := bus.Subscribe("form1", func(rec alert.Record) { got = append(got, rec) })
		defer sub.Unsubscribe()

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/demo/alert?type=warning&group=form1&autoClose=true", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, got, 1)
		assert.Equal(t, alert.TypeWarning, got[0].Type)
		assert.True(t, got[0].AutoClose)
		assert.Contains(t, got[0].Message, "<strong>Warning</strong>")
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/demo/alert?type=nope", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
