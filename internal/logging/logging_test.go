package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-cookie-session/internal/errors"
	"github.com/jrsteele09/go-cookie-session/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	require.NoError(t, logging.Setup("PROD", "warn"))
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	err := logging.Setup("PROD", "loud")
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))

	require.Error(t, logging.Setup("PROD", ""))
}

func TestNew_JSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("PROD", &buf)
	logger.Info().Str("request_id", "abc").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["message"])
	require.Equal(t, "abc", line["request_id"])
}

func TestNew_ConsoleInDev(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("DEV", &buf)
	logger.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.False(t, json.Valid(buf.Bytes()))
}
