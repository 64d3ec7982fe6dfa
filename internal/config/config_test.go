package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gameverse/internal/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, storage.EngineSQLite, cfg.Storage.Engine)
	assert.Equal(t, filepath.Join(cfg.DataDir, DefaultDBName), cfg.Storage.Path)
	assert.Equal(t, DefaultVoice, cfg.Voice)
	assert.Equal(t, DefaultSpeech, cfg.Speech)
	assert.Equal(t, DefaultDispatch, cfg.Dispatch)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.NotContains(t, cfg.DataDir, "~")
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
data_dir: `+dir+`
storage:
  engine: json
voice:
  cooldown: 2s
  max_consecutive_errors: 5
speech:
  rate: 1.5
dispatch:
  reply_delay: 0s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, storage.EngineJSON, cfg.Storage.Engine)
	assert.Equal(t, filepath.Join(dir, DefaultJSONName), cfg.Storage.Path)
	assert.Equal(t, 2*time.Second, cfg.Voice.Cooldown)
	assert.Equal(t, 5, cfg.Voice.MaxConsecutiveErrors)
	assert.Equal(t, DefaultVoice.BackoffBase, cfg.Voice.BackoffBase)
	assert.Equal(t, 1.5, cfg.Speech.Rate)
	assert.Equal(t, time.Duration(0), cfg.Dispatch.ReplyDelay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GAMEVERSE_STORAGE_ENGINE", "memory")
	t.Setenv("GAMEVERSE_VOICE_BACKOFF_MAX", "9s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, storage.EngineMemory, cfg.Storage.Engine)
	assert.Equal(t, 9*time.Second, cfg.Voice.BackoffMax)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
storage:
  engine: redis
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUnsupportedEngine)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "voice: [not: a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage:  Storage{Engine: storage.EngineMemory},
			Voice:    DefaultVoice,
			Speech:   DefaultSpeech,
			Dispatch: DefaultDispatch,
			Output:   DefaultOutput,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative cooldown", func(c *Config) { c.Voice.Cooldown = -time.Second }, "voice.cooldown"},
		{"zero max errors", func(c *Config) { c.Voice.MaxConsecutiveErrors = 0 }, "voice.max_consecutive_errors"},
		{"volume too loud", func(c *Config) { c.Speech.Volume = 1.5 }, "speech.volume"},
		{"zero rate", func(c *Config) { c.Speech.Rate = 0 }, "speech.rate"},
		{"negative close delay", func(c *Config) { c.Dispatch.CloseDelay = -1 }, "dispatch.close_delay"},
		{"unknown engine", func(c *Config) { c.Storage.Engine = "bolt" }, "storage.engine"},
	}

	base := valid()
	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
