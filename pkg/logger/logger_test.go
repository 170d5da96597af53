package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		err := logger.Init(config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("json file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "hospitalnav.log")
		require.NoError(t, logger.Init(config.LogConfig{Level: "info", Format: "json", Output: "file", FilePath: path}))
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

		log.Info().Str("city", "heidelberg").Msg("graph loaded")

		bb, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(bb), `"city":"heidelberg"`)
		assert.Contains(t, string(bb), `"message":"graph loaded"`)
	})

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
