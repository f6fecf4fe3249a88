//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigFileCreation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	configPath := tf.ConfigPath()
	_, err = os.Stat(configPath)
	require.True(t, os.IsNotExist(err), "Config should not exist before the first run")

	require.NoError(t, tf.StartMockApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("shopgrip"), "Should show shopgrip title")

	tf.Quit()

	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}

	configContent, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be created")

	configStr := string(configContent)
	require.Contains(t, configStr, "version = 1", "Config should contain version")
	require.Contains(t, configStr, "debounce_ms = 300", "Config should contain search defaults")
	require.NotContains(t, configStr, "127.0.0.1", "Mock store address should not be persisted")
}

func TestConfigFilePersistence(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	initialConfig := `version = 1

[search]
debounce_ms = 150
min_query_length = 3

[ui]
slides_per_view = 2
`
	require.NoError(t, os.WriteFile(tf.ConfigPath(), []byte(initialConfig), 0600))

	require.NoError(t, tf.StartMockApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Best Sellers"), "Should show the home page")

	// min_query_length is honoured: two characters are not enough
	tf.OpenSearch()
	tf.Type("sh")
	require.True(t, tf.SeePlain("Type at least 3 characters"), "Should use the configured minimum length")

	tf.SendCtrlC()
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit")
	}

	configContent, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err, "Should be able to read config file")
	require.Contains(t, string(configContent), "debounce_ms = 150", "Config should be preserved")
}
