package quick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/elem6-s-r-o/elem6-logger"
)

func TestConfig_Parsing(t *testing.T) {
	cfg, err := config(
		"level=debug",
		"directory=/tmp/svc-logs",
		"module_name=svc",
		"retention_days=7",
		"disable_file=true",
		"extra_fields=app:svc,region:eu",
	)
	require.NoError(t, err)

	assert.Equal(t, logger.LevelDebug, cfg.Level)
	assert.Equal(t, "/tmp/svc-logs", cfg.Directory)
	assert.Equal(t, "svc", cfg.ModuleName)
	assert.Equal(t, int64(7), cfg.RetentionDays)
	assert.True(t, cfg.DisableFile)
	assert.False(t, cfg.DisableConsole)
	assert.Equal(t, logger.Fields{
		{Key: "app", Value: "svc"},
		{Key: "region", Value: "eu"},
	}, cfg.ExtraFields)
}

func TestConfig_TrimsAndIgnoresCase(t *testing.T) {
	cfg, err := config(" Level = WARNING ", " Directory = logs ")
	require.NoError(t, err)

	assert.Equal(t, logger.LevelWarn, cfg.Level)
	assert.Equal(t, "logs", cfg.Directory)
}

func TestConfig_Empty(t *testing.T) {
	cfg, err := config()
	require.NoError(t, err)
	assert.Equal(t, &logger.Config{}, cfg)
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"missing separator", "level"},
		{"empty key", "=debug"},
		{"unknown key", "colour=red"},
		{"bad level name", "level=verbose"},
		{"bad int", "retention_days=soon"},
		{"bad bool", "disable_console=yes please"},
		{"bad extra field", "extra_fields=app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config(tt.arg)
			assert.Error(t, err)
		})
	}
}

func TestConfig_LastValueWins(t *testing.T) {
	cfg, err := config("level=debug", "level=error")
	require.NoError(t, err)
	assert.Equal(t, logger.LevelError, cfg.Level)
}

func TestParseFields_Empty(t *testing.T) {
	fields, err := parseFields("")
	require.NoError(t, err)
	assert.Nil(t, fields)
}
