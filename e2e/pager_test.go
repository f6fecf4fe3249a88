//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartMockApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Best Sellers"), "Should show the home page")

	tf.OpenHelp()
	require.True(t, tf.SeePlain("shopgrip Help"), "Should show help in the pager")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("Best Sellers"), "Should return to main TUI after closing pager")
}

func TestProductDetailsPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartMockApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Trail Runner Shoe"), "Should show best sellers")

	tf.Enter()
	require.True(t, tf.SeePlain("/products/trail-runner"), "Should show product details in the pager")

	tf.Quit()
	require.True(t, tf.SeePlain("Best Sellers"), "Should return to main TUI after closing pager")
}
