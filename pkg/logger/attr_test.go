package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestAlertAttrs(t *testing.T) {
	group := logger.AlertGroup("form1")
	assert.Equal(t, "alert_group", group.Key)
	assert.Equal(t, "form1", group.Value.String())

	typ := logger.AlertType("Success")
	assert.Equal(t, "Success", typ.Value.String())

	clearSignal := logger.AlertType("")
	assert.Equal(t, "clear", clearSignal.Value.String())

	key := logger.AlertKey(7)
	assert.Equal(t, "alert_key", key.Key)
	assert.Equal(t, uint64(7), key.Value.Uint64())
}

func TestOptionalAttrs(t *testing.T) {
	assert.True(t, logger.ClientID("").Equal(slog.Attr{}))
	assert.True(t, logger.Origin("").Equal(slog.Attr{}))
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))

	attr := logger.ClientID("c1")
	require.Equal(t, "client_id", attr.Key)
	assert.Equal(t, "c1", attr.Value.String())
}
