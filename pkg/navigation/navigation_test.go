package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/navigation"
)

func TestNotifier(t *testing.T) {
	t.Parallel()

	n := navigation.NewNotifier()
	defer n.Close()

	var got []string
	unlisten := n.OnNavigate(func(loc string) { got = append(got, loc) })
	require.Equal(t, 1, n.Listeners())

	n.Navigate("/orders")
	n.Navigate("/orders/1")
	unlisten()
	unlisten()
	n.Navigate("/settings")

	assert.Equal(t, []string{"/orders", "/orders/1"}, got)
	assert.Equal(t, 0, n.Listeners())
}

func TestNotifier_Close(t *testing.T) {
	t.Parallel()

	n := navigation.NewNotifier()
	calls := 0
	n.OnNavigate(func(string) { calls++ })

	require.NoError(t, n.Close())
	n.Navigate("/")
	assert.Equal(t, 0, calls)
}
