package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/binder"
)

type publishRequest struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	AutoClose bool   `json:"autoClose"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
		want        publishRequest
	}{
		{
			name:        "valid",
			contentType: "application/json; charset=utf-8",
			body:        `{"id":"form1","type":"Success","message":"Saved","autoClose":true}`,
			want:        publishRequest{ID: "form1", Type: "Success", Message: "Saved", AutoClose: true},
		},
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong media type", contentType: "text/plain", body: `{}`, wantErr: binder.ErrUnsupportedMediaType},
		{name: "unknown field", contentType: "application/json", body: `{"nope":1}`, wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", contentType: "application/json", body: `{} {}`, wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed", contentType: "application/json", body: `{"id":`, wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/publish", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			var got publishRequest
			err := bind(r, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no body is not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/publish", nil)
		var got publishRequest
		assert.ErrorIs(t, bind(r, &got), binder.ErrBinderNotApplicable)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type request struct {
		Group   string `query:"group"`
		Key     uint64 `query:"key"`
		Limit   int
		Verbose bool   `query:"verbose"`
		Skipped string `query:"-"`
		hidden  string
	}

	bind := binder.Query()

	t.Run("fills tagged fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/dismiss?group=form1&key=42&limit=-3&verbose=true&Skipped=x&hidden=y", nil)
		var got request
		require.NoError(t, bind(r, &got))
		assert.Equal(t, request{Group: "form1", Key: 42, Limit: -3, Verbose: true}, got)
	})

	t.Run("missing values keep zero", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/stream", nil)
		var got request
		require.NoError(t, bind(r, &got))
		assert.Zero(t, got)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/dismiss?key=abc", nil)
		var got request
		assert.ErrorIs(t, bind(r, &got), binder.ErrFailedToParseQuery)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var s string
		assert.ErrorIs(t, bind(r, &s), binder.ErrFailedToParseQuery)
	})
}
