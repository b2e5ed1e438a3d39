package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		verbosity int
		debug     bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{5, true},
	}
	for _, tc := range cases {
		logger, cleanup, err := logging.New(logging.Options{
			Verbosity:   tc.verbosity,
			OutputPaths: []string{filepath.Join(t.TempDir(), "out.log")},
		})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.InfoLevel), "verbosity %d", tc.verbosity)
		assert.Equal(t, tc.debug, logger.Core().Enabled(zap.DebugLevel), "verbosity %d", tc.verbosity)
		cleanup()
	}
}

func TestNew_BadVerbosity(t *testing.T) {
	_, _, err := logging.New(logging.Options{Verbosity: -1})
	assert.ErrorIs(t, err, logging.ErrBadVerbosity)
}

func TestNew_FileSink(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "routegraph.log")

	logger, cleanup, err := logging.New(logging.Options{
		File:        file,
		MaxSizeMB:   1,
		MaxBackups:  1,
		OutputPaths: []string{filepath.Join(dir, "console.log")},
	})
	require.NoError(t, err)
	logger.Info("table built", zap.Int("vertices", 3))
	logger.Debug("not at info level")
	cleanup()
	cleanup()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"table built"`)
	assert.Contains(t, string(data), `"vertices":3`)
	assert.NotContains(t, string(data), "not at info level")
}
