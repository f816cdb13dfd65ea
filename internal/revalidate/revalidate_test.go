package revalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierFansOutToAllListeners(t *testing.T) {
	var n Notifier

	var first, second [][]string
	n.Subscribe(func(paths []string) { first = append(first, paths) })
	n.Subscribe(func(paths []string) { second = append(second, paths) })

	n.Invalidate("/blog", "/blog/hello-world")

	assert.Equal(t, [][]string{{"/blog", "/blog/hello-world"}}, first)
	assert.Equal(t, [][]string{{"/blog", "/blog/hello-world"}}, second)
}

func TestNotifierIgnoresEmptyInvalidation(t *testing.T) {
	var n Notifier

	called := false
	n.Subscribe(func([]string) { called = true })

	n.Invalidate()

	assert.False(t, called)
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier

	n.Subscribe(func([]string) {})
	n.Invalidate("/portfolio")
}
