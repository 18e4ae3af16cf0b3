package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Format: logging.FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("seed picked", zap.Int("node", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "seed picked", entry["msg"])
	assert.EqualValues(t, 3, entry["node"])
}

func TestNew_LevelFilter(t *testing.T) {
	cases := []struct {
		level   string
		debug   bool
		info    bool
		warning bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"", false, true, true},
		{"bogus", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := logging.New(logging.Config{Level: tc.level}, &buf)
			require.NoError(t, err)

			log.Debug("d")
			assert.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("DEBUG")))
			log.Info("i")
			assert.Equal(t, tc.info, bytes.Contains(buf.Bytes(), []byte("INFO")))
			log.Warn("w")
			assert.Equal(t, tc.warning, bytes.Contains(buf.Bytes(), []byte("WARN")))
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
