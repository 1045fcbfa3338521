package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/lfu-cache/logging"
)

func TestNewWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	log := logging.NewWriter(cfg, &buf)
	log.Debug().Msg("hidden")
	log.Info().Str("policy", "LFU").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"policy":"LFU"`)
}

func TestNewWriterConsole(t *testing.T) {
	var buf bytes.Buffer

	log := logging.NewWriter(logging.DefaultConfig(), &buf)
	log.Warn().Msg("careful")

	assert.Contains(t, buf.String(), "careful")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ctx := logging.WithContext(context.Background(), log)
	ctx = logging.WithComponent(ctx, "bench")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"bench"`)
}

func TestFromContextWithoutLogger(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", f)

	_, err = logging.ParseFormat("xml")
	assert.Error(t, err)
}
